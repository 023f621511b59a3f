package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-manager/models"
)

var (
	adminCaller = Caller{Role: RoleAdmin, Email: "admin@greatneshotel.com"}
	userCaller  = Caller{Role: RoleUser, Email: "jane@x.com"}
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.UserRole{},
		&models.Hotel{},
		&models.Customer{},
		&models.Room{},
		&models.Booking{},
	))
	return db
}

func createHotel(t *testing.T, db *gorm.DB, name, location string) models.Hotel {
	t.Helper()
	hotel := models.Hotel{Name: name, Location: location}
	require.NoError(t, db.Create(&hotel).Error)
	return hotel
}

func createRoom(t *testing.T, db *gorm.DB, hotelID uint, description string, price float64) models.Room {
	t.Helper()
	room := models.Room{RoomDescription: description, PricePerNight: price, HotelID: hotelID, Version: 1}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func createCustomer(t *testing.T, db *gorm.DB, first, last, email string) models.Customer {
	t.Helper()
	customer := models.Customer{
		FirstName:   first,
		LastName:    last,
		Email:       email,
		PhoneNumber: "0123456789",
	}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func createBooking(t *testing.T, db *gorm.DB, customerID, roomID uint) models.Booking {
	t.Helper()
	booking := models.Booking{
		CheckInDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate:  time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		TotalAmount:   600,
		BookingStatus: "Confirmed",
		CustomerID:    customerID,
		RoomID:        roomID,
	}
	require.NoError(t, db.Create(&booking).Error)
	return booking
}

func ctx() context.Context {
	return context.Background()
}
