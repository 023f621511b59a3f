package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"hotel-manager/models"
)

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

// List returns all hotels ordered by name, with their rooms attached.
func (s *HotelService) List(ctx context.Context, caller Caller) ([]models.Hotel, error) {
	if err := caller.Require(RoleAdmin); err != nil {
		return nil, err
	}
	var hotels []models.Hotel
	err := s.DB.WithContext(ctx).Preload("Rooms").Order("name").Find(&hotels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return hotels, nil
}

// Create validates and persists a new hotel.
func (s *HotelService) Create(ctx context.Context, caller Caller, hotel *models.Hotel) error {
	if err := caller.Require(RoleAdmin); err != nil {
		return err
	}
	if fields := models.Validate(hotel); fields != nil {
		return &ValidationError{Fields: fields}
	}
	if err := s.DB.WithContext(ctx).Create(hotel).Error; err != nil {
		return fmt.Errorf("failed to create hotel: %w", err)
	}
	return nil
}
