package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"hotel-manager/models"
)

// AdminSummary is the admin landing view: the ten most recent customers and
// rooms.
type AdminSummary struct {
	RecentCustomers []models.Customer `json:"recentCustomers"`
	RecentRooms     []models.Room     `json:"recentRooms"`
}

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

func (s *DashboardService) AdminSummary(ctx context.Context, caller Caller) (*AdminSummary, error) {
	if err := caller.Require(RoleAdmin); err != nil {
		return nil, err
	}

	summary := &AdminSummary{}
	err := s.DB.WithContext(ctx).Order("created_at DESC").Limit(10).Find(&summary.RecentCustomers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recent customers: %w", err)
	}
	err = s.DB.WithContext(ctx).Preload("Hotel").Order("created_at DESC").Limit(10).Find(&summary.RecentRooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recent rooms: %w", err)
	}
	return summary, nil
}
