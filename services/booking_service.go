package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hotel-manager/models"
)

type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// MyBookings resolves the caller to a customer by email and returns their
// booking history with room and hotel attached. A caller whose email matches
// no customer gets an empty list, not an error.
func (s *BookingService) MyBookings(ctx context.Context, caller Caller) ([]models.Booking, error) {
	if err := caller.Require(RoleUser); err != nil {
		return nil, err
	}

	var customer models.Customer
	err := s.DB.WithContext(ctx).Where("email = ?", caller.Email).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.Booking{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve customer: %w", err)
	}

	var bookings []models.Booking
	err = s.DB.WithContext(ctx).
		Preload("Room.Hotel").
		Where("customer_id = ?", customer.CustomerID).
		Order("check_in_date DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}
