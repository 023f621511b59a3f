package models

import "time"

// User is an identity account. Credential and role data live here, fully
// separated from the Customer row it correlates to by email.
type User struct {
	ID            string `gorm:"primaryKey;size:36" json:"id"`
	FullName      string `gorm:"size:255" json:"full_name"`
	Email         string `gorm:"uniqueIndex;size:150" json:"email"`
	PasswordHash  string `gorm:"size:255" json:"-"`
	SecurityStamp string `gorm:"size:36" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Role struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type UserRole struct {
	UserID string `gorm:"primaryKey;size:36"`
	RoleID uint   `gorm:"primaryKey"`
}
