package models

import "time"

// RoomDescription is restricted to the three sellable categories.
const (
	RoomDeluxe       = "Deluxe"
	RoomPremium      = "Premium"
	RoomPresidential = "Presidential"
)

type Room struct {
	RoomID          uint    `gorm:"primaryKey;column:room_id" json:"roomId"`
	RoomDescription string  `gorm:"column:room_description;size:50" json:"roomDescription" validate:"required,oneof=Deluxe Premium Presidential"`
	PricePerNight   float64 `gorm:"column:price_per_night" json:"pricePerNight" validate:"required,gte=1,lte=100000"`
	HotelID         uint    `gorm:"column:hotel_id;index" json:"hotelId" validate:"required"`

	// Version backs optimistic update detection; bump on every write.
	Version uint `gorm:"column:version;default:1" json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Hotel    Hotel     `gorm:"foreignKey:HotelID;references:HotelID" json:"hotel,omitempty" validate:"-"`
	Bookings []Booking `gorm:"foreignKey:RoomID" json:"bookings,omitempty"`
}
