package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-manager/models"
)

// Role names mirror the seeded identity roles.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

var (
	// ErrForbidden is returned before any query when the caller's role does
	// not match the one the operation requires.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned when the targeted record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrIdentityMismatch is returned when the path id and the submitted
	// entity id disagree.
	ErrIdentityMismatch = errors.New("identity mismatch")

	// ErrHasBookings blocks deletion of a room or customer that is still
	// referenced by bookings. Nothing is mutated.
	ErrHasBookings = errors.New("existing bookings reference this record")

	// ErrStaleRecord is an optimistic concurrency conflict: the stored row
	// changed after the caller read it, and the row still exists.
	ErrStaleRecord = errors.New("record was modified by another request")
)

// ValidationError carries the per-field messages of a rejected entity so the
// caller can re-render the form.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Caller is the authenticated identity a request arrives with. Services never
// consult ambient state; every guarded operation receives its caller
// explicitly.
type Caller struct {
	Role  string
	Email string
}

// Require gates an operation on a role. Checked before any read or write.
func (c Caller) Require(role string) error {
	if c.Role != role {
		return ErrForbidden
	}
	return nil
}
