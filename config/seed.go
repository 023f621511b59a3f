package config

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotel-manager/models"
)

const (
	seedAdminEmail    = "admin@greatneshotel.com"
	seedAdminPassword = "Admin@123"
	seedAdminName     = "Greatness Hotel"
)

// SeedDatabase ensures the two roles and the default administrator account
// exist. Every step is a lookup-then-create so repeated runs are no-ops.
// Failures are logged and swallowed; the process keeps running and seeding is
// retried on the next start.
func SeedDatabase(db *gorm.DB) {
	log.Println("Seeding roles")
	adminRole, err := ensureRole(db, "Admin")
	if err != nil {
		log.Printf("warning: failed to seed Admin role: %v", err)
	}
	if _, err := ensureRole(db, "User"); err != nil {
		log.Printf("warning: failed to seed User role: %v", err)
	}

	log.Println("Seeding default admin user")
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", seedAdminEmail).Count(&count).Error; err != nil {
		log.Printf("warning: failed to check for default admin: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("warning: failed to hash default admin password: %v", err)
		return
	}

	admin := models.User{
		ID:            uuid.NewString(),
		FullName:      seedAdminName,
		Email:         seedAdminEmail,
		PasswordHash:  string(hash),
		SecurityStamp: uuid.NewString(),
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("warning: failed to create default admin: %v", err)
		return
	}

	if adminRole == nil {
		log.Println("warning: Admin role missing, default admin left without a role")
		return
	}
	if err := db.Create(&models.UserRole{UserID: admin.ID, RoleID: adminRole.ID}).Error; err != nil {
		log.Printf("warning: failed to assign Admin role: %v", err)
		return
	}
	log.Println("Default admin seeded")
}

func ensureRole(db *gorm.DB, name string) (*models.Role, error) {
	var role models.Role
	err := db.Where("name = ?", name).First(&role).Error
	if err == nil {
		return &role, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	role = models.Role{Name: name}
	if err := db.Create(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}
