package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hotel-manager/models"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// List returns every room with its hotel, ordered by hotel name then room
// description. Admin management view.
func (s *RoomService) List(ctx context.Context, caller Caller) ([]models.Room, error) {
	if err := caller.Require(RoleAdmin); err != nil {
		return nil, err
	}
	var rooms []models.Room
	err := s.DB.WithContext(ctx).
		Preload("Hotel").
		Joins("JOIN hotels ON hotels.hotel_id = rooms.hotel_id").
		Order("hotels.name, rooms.room_description").
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

// Available returns the room catalogue shown to customers.
func (s *RoomService) Available(ctx context.Context, caller Caller) ([]models.Room, error) {
	if err := caller.Require(RoleUser); err != nil {
		return nil, err
	}
	var rooms []models.Room
	err := s.DB.WithContext(ctx).Preload("Hotel").Order("price_per_night").Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(ctx context.Context, caller Caller, id uint) (*models.Room, error) {
	if err := caller.Require(RoleAdmin); err != nil {
		return nil, err
	}
	var room models.Room
	err := s.DB.WithContext(ctx).Preload("Hotel").First(&room, "room_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load room %d: %w", id, err)
	}
	return &room, nil
}

// Create validates and persists a new room. The hotel must exist.
func (s *RoomService) Create(ctx context.Context, caller Caller, room *models.Room) error {
	if err := caller.Require(RoleAdmin); err != nil {
		return err
	}
	if fields := models.Validate(room); fields != nil {
		return &ValidationError{Fields: fields}
	}

	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Hotel{}).Where("hotel_id = ?", room.HotelID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check hotel: %w", err)
	}
	if count == 0 {
		return &ValidationError{Fields: []models.FieldError{{Field: "HotelID", Message: "Hotel does not exist."}}}
	}

	if err := s.DB.WithContext(ctx).Create(room).Error; err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// Update applies an edited room. The path id must match the submitted entity.
// The write is guarded on the version the caller read; a lost guard with the
// row still present surfaces as ErrStaleRecord, a vanished row as ErrNotFound.
func (s *RoomService) Update(ctx context.Context, caller Caller, id uint, room *models.Room) error {
	if err := caller.Require(RoleAdmin); err != nil {
		return err
	}
	if id != room.RoomID {
		return ErrIdentityMismatch
	}
	if fields := models.Validate(room); fields != nil {
		return &ValidationError{Fields: fields}
	}

	var hotels int64
	if err := s.DB.WithContext(ctx).Model(&models.Hotel{}).Where("hotel_id = ?", room.HotelID).Count(&hotels).Error; err != nil {
		return fmt.Errorf("failed to check hotel: %w", err)
	}
	if hotels == 0 {
		return &ValidationError{Fields: []models.FieldError{{Field: "HotelID", Message: "Hotel does not exist."}}}
	}

	res := s.DB.WithContext(ctx).Model(&models.Room{}).
		Where("room_id = ? AND version = ?", room.RoomID, room.Version).
		Updates(map[string]any{
			"room_description": room.RoomDescription,
			"price_per_night":  room.PricePerNight,
			"hotel_id":         room.HotelID,
			"version":          room.Version + 1,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update room %d: %w", id, res.Error)
	}
	if res.RowsAffected > 0 {
		room.Version++
		return nil
	}

	// The guarded write matched nothing: either the row is gone or someone
	// else bumped the version since our read.
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Room{}).Where("room_id = ?", room.RoomID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to re-check room %d: %w", id, err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return ErrStaleRecord
}

// Delete removes a room unless bookings still reference it. Deleting an id
// that no longer exists is a successful no-op.
func (s *RoomService) Delete(ctx context.Context, caller Caller, id uint) error {
	if err := caller.Require(RoleAdmin); err != nil {
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dependents int64
		if err := tx.Model(&models.Booking{}).Where("room_id = ?", id).Count(&dependents).Error; err != nil {
			return fmt.Errorf("failed to count bookings for room %d: %w", id, err)
		}
		if dependents > 0 {
			return ErrHasBookings
		}
		// RowsAffected is deliberately ignored: a repeated delete succeeds.
		return tx.Delete(&models.Room{}, "room_id = ?", id).Error
	})
}
