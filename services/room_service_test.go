package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-manager/models"
)

func TestRoomCreateAndFetchRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	hotel := createHotel(t, db, "Grand Hotel", "Downtown")

	room := models.Room{RoomDescription: models.RoomDeluxe, PricePerNight: 150, HotelID: hotel.HotelID}
	require.NoError(t, svc.Create(ctx(), adminCaller, &room))
	require.NotZero(t, room.RoomID)

	got, err := svc.GetByID(ctx(), adminCaller, room.RoomID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomDeluxe, got.RoomDescription)
	assert.Equal(t, 150.0, got.PricePerNight)
	assert.Equal(t, hotel.HotelID, got.HotelID)
	assert.Equal(t, "Grand Hotel", got.Hotel.Name)
}

func TestRoomCreateRejectsUnknownDescription(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	hotel := createHotel(t, db, "Grand Hotel", "Downtown")

	room := models.Room{RoomDescription: "Luxury", PricePerNight: 150, HotelID: hotel.HotelID}
	err := svc.Create(ctx(), adminCaller, &room)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "RoomDescription", verr.Fields[0].Field)

	var count int64
	require.NoError(t, db.Model(&models.Room{}).Count(&count).Error)
	assert.Zero(t, count, "no row may be written on validation failure")
}

func TestRoomCreateRequiresAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	hotel := createHotel(t, db, "Grand Hotel", "Downtown")

	room := models.Room{RoomDescription: models.RoomDeluxe, PricePerNight: 150, HotelID: hotel.HotelID}
	assert.ErrorIs(t, svc.Create(ctx(), userCaller, &room), ErrForbidden)
}

func TestRoomListForHotelScenario(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	hotel := createHotel(t, db, "Grand Hotel", "Downtown")
	room := models.Room{RoomDescription: models.RoomDeluxe, PricePerNight: 150, HotelID: hotel.HotelID}
	require.NoError(t, svc.Create(ctx(), adminCaller, &room))

	rooms, err := svc.List(ctx(), adminCaller)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, models.RoomDeluxe, rooms[0].RoomDescription)
	assert.Equal(t, 150.0, rooms[0].PricePerNight)
	assert.Equal(t, hotel.HotelID, rooms[0].HotelID)
}

func TestRoomListOrderedByHotelThenDescription(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	beach := createHotel(t, db, "Beach Resort", "Coast")
	grand := createHotel(t, db, "Grand Hotel", "Downtown")
	createRoom(t, db, grand.HotelID, models.RoomPremium, 200)
	createRoom(t, db, grand.HotelID, models.RoomDeluxe, 150)
	createRoom(t, db, beach.HotelID, models.RoomPresidential, 900)

	rooms, err := svc.List(ctx(), adminCaller)
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	assert.Equal(t, models.RoomPresidential, rooms[0].RoomDescription)
	assert.Equal(t, models.RoomDeluxe, rooms[1].RoomDescription)
	assert.Equal(t, models.RoomPremium, rooms[2].RoomDescription)
}

func TestRoomUpdateIdentityMismatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	hotel := createHotel(t, db, "Grand Hotel", "Downtown")
	room := createRoom(t, db, hotel.HotelID, models.RoomDeluxe, 150)

	err := svc.Update(ctx(), adminCaller, room.RoomID+1, &room)
	assert.ErrorIs(t, err, ErrIdentityMismatch)
}

func TestRoomUpdateRejectsUnknownHotel(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	hotel := createHotel(t, db, "Grand Hotel", "Downtown")
	room := createRoom(t, db, hotel.HotelID, models.RoomDeluxe, 150)

	room.HotelID = hotel.HotelID + 99
	err := svc.Update(ctx(), adminCaller, room.RoomID, &room)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "HotelID", verr.Fields[0].Field)

	got, err := svc.GetByID(ctx(), adminCaller, room.RoomID)
	require.NoError(t, err)
	assert.Equal(t, hotel.HotelID, got.HotelID, "rejected update must not move the room")
}

func TestRoomUpdateStaleVersionConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	hotel := createHotel(t, db, "Grand Hotel", "Downtown")
	room := createRoom(t, db, hotel.HotelID, models.RoomDeluxe, 150)

	// Two callers read the same version.
	first := room
	second := room

	first.PricePerNight = 175
	require.NoError(t, svc.Update(ctx(), adminCaller, first.RoomID, &first))

	// The second write lost the race; the row still exists, so the conflict
	// is reported rather than silently overwriting.
	second.PricePerNight = 300
	err := svc.Update(ctx(), adminCaller, second.RoomID, &second)
	assert.ErrorIs(t, err, ErrStaleRecord)

	got, err := svc.GetByID(ctx(), adminCaller, room.RoomID)
	require.NoError(t, err)
	assert.Equal(t, 175.0, got.PricePerNight)
}

func TestRoomUpdateVanishedRowIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	hotel := createHotel(t, db, "Grand Hotel", "Downtown")
	room := createRoom(t, db, hotel.HotelID, models.RoomDeluxe, 150)

	stale := room
	require.NoError(t, db.Delete(&models.Room{}, "room_id = ?", room.RoomID).Error)

	stale.PricePerNight = 175
	err := svc.Update(ctx(), adminCaller, stale.RoomID, &stale)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRoomDeleteBlockedByBookings(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	hotel := createHotel(t, db, "Grand Hotel", "Downtown")
	room := createRoom(t, db, hotel.HotelID, models.RoomDeluxe, 150)
	customer := createCustomer(t, db, "Jane", "Doe", "jane@x.com")
	createBooking(t, db, customer.CustomerID, room.RoomID)

	err := svc.Delete(ctx(), adminCaller, room.RoomID)
	assert.ErrorIs(t, err, ErrHasBookings)

	var count int64
	require.NoError(t, db.Model(&models.Room{}).Where("room_id = ?", room.RoomID).Count(&count).Error)
	assert.EqualValues(t, 1, count, "blocked delete must not mutate")
}

func TestRoomDeleteIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	hotel := createHotel(t, db, "Grand Hotel", "Downtown")
	room := createRoom(t, db, hotel.HotelID, models.RoomDeluxe, 150)

	require.NoError(t, svc.Delete(ctx(), adminCaller, room.RoomID))
	// A second delete of the same id succeeds and changes nothing.
	require.NoError(t, svc.Delete(ctx(), adminCaller, room.RoomID))

	var count int64
	require.NoError(t, db.Model(&models.Room{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAvailableRoomsRequiresUserRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	_, err := svc.Available(ctx(), adminCaller)
	assert.ErrorIs(t, err, ErrForbidden)

	rooms, err := svc.Available(ctx(), userCaller)
	require.NoError(t, err)
	assert.Empty(t, rooms)
}
