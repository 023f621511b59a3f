package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"hotel-manager/models"
)

type CustomerService struct {
	DB       *gorm.DB
	Identity IdentityProvider
}

func NewCustomerService(db *gorm.DB, identity IdentityProvider) *CustomerService {
	return &CustomerService{DB: db, Identity: identity}
}

// List returns all customers with their bookings, sorted by last name.
// Admin management view.
func (s *CustomerService) List(ctx context.Context, caller Caller) ([]models.Customer, error) {
	if err := caller.Require(RoleAdmin); err != nil {
		return nil, err
	}
	var customers []models.Customer
	err := s.DB.WithContext(ctx).Preload("Bookings").Order("last_name").Find(&customers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// Create validates and persists a new customer. A duplicate email is reported
// as a field-level validation failure, the same as any other rejected field.
func (s *CustomerService) Create(ctx context.Context, caller Caller, customer *models.Customer) error {
	if err := caller.Require(RoleAdmin); err != nil {
		return err
	}
	if fields := models.Validate(customer); fields != nil {
		return &ValidationError{Fields: fields}
	}

	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Customer{}).Where("email = ?", customer.Email).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return duplicateEmailError()
	}

	if err := s.DB.WithContext(ctx).Create(customer).Error; err != nil {
		// The unique index backstops the pre-check under concurrent signups.
		if isDuplicateKey(err) {
			return duplicateEmailError()
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// Delete removes a customer unless bookings still reference them, then asks
// the identity provider to drop the correlated account. The identity deletion
// happens after the customer row is committed and is not rolled back on
// failure; the miss is logged and surfaced to nobody.
func (s *CustomerService) Delete(ctx context.Context, caller Caller, id uint) error {
	if err := caller.Require(RoleAdmin); err != nil {
		return err
	}

	var customer models.Customer
	err := s.DB.WithContext(ctx).First(&customer, "customer_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Already gone: repeated deletes succeed.
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load customer %d: %w", id, err)
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dependents int64
		if err := tx.Model(&models.Booking{}).Where("customer_id = ?", id).Count(&dependents).Error; err != nil {
			return fmt.Errorf("failed to count bookings for customer %d: %w", id, err)
		}
		if dependents > 0 {
			return ErrHasBookings
		}
		return tx.Delete(&models.Customer{}, "customer_id = ?", id).Error
	})
	if err != nil {
		return err
	}

	user, err := s.Identity.FindByEmail(ctx, customer.Email)
	if err != nil {
		log.Printf("warning: identity lookup after deleting customer %d failed: %v", id, err)
		return nil
	}
	if user != nil {
		if err := s.Identity.DeleteIdentity(ctx, user); err != nil {
			log.Printf("warning: failed to delete identity for %s: %v", customer.Email, err)
		}
	}
	return nil
}

func duplicateEmailError() *ValidationError {
	return &ValidationError{Fields: []models.FieldError{{Field: "Email", Message: "Email is already registered."}}}
}

func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	// SQLite (tests) reports the constraint in the message.
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "Duplicate entry")
}
