package models

import "time"

type Customer struct {
	CustomerID  uint   `gorm:"primaryKey;column:customer_id" json:"customerId"`
	FirstName   string `gorm:"size:50" json:"firstName" validate:"required,max=50,alpha"`
	LastName    string `gorm:"size:50" json:"lastName" validate:"required,max=50,alpha"`
	Email       string `gorm:"size:150;uniqueIndex" json:"email" validate:"required,email"`
	PhoneNumber string `gorm:"size:10" json:"phoneNumber" validate:"required,phonenumber"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Bookings []Booking `gorm:"foreignKey:CustomerID" json:"bookings,omitempty"`
}
