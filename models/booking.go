package models

import "time"

type Booking struct {
	BookingID     uint      `gorm:"primaryKey;column:booking_id" json:"bookingId"`
	CheckInDate   time.Time `gorm:"column:check_in_date" json:"checkInDate" validate:"required"`
	CheckOutDate  time.Time `gorm:"column:check_out_date" json:"checkOutDate" validate:"required"`
	TotalAmount   float64   `gorm:"column:total_amount" json:"totalAmount" validate:"required,gte=1,lte=1000000"`
	BookingStatus string    `gorm:"column:booking_status;size:64" json:"bookingStatus" validate:"required"`

	CustomerID uint `gorm:"column:customer_id;index" json:"customerId" validate:"required"`
	RoomID     uint `gorm:"column:room_id;index" json:"roomId" validate:"required"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Customer Customer `gorm:"foreignKey:CustomerID;references:CustomerID" json:"customer,omitempty" validate:"-"`
	Room     Room     `gorm:"foreignKey:RoomID;references:RoomID" json:"room,omitempty" validate:"-"`
}
