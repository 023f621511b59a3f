package models

import (
	"time"

	"gorm.io/datatypes"
)

type Hotel struct {
	HotelID  uint   `gorm:"primaryKey;column:hotel_id" json:"hotelId"`
	Name     string `gorm:"size:100" json:"name" validate:"required,min=3,max=100,alphanumspace"`
	Location string `gorm:"size:150" json:"location" validate:"required,max=150"`

	// Optional amenity list kept as raw JSON so the admin UI can evolve it
	// without schema changes.
	Amenities datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Rooms []Room `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
}
