package models

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// FieldError is one rejected field with a user-facing message, suitable for
// re-display next to the submitted form value.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate *validator.Validate

var (
	alphanumSpaceRegex = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)

	// Exactly ten digits with a leading zero; no signs, no decimal point.
	phoneRegex = regexp.MustCompile(`^0[0-9]{9}$`)
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("alphanumspace", func(fl validator.FieldLevel) bool {
		return alphanumSpaceRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("phonenumber", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// Validate runs the declared constraints on an entity and returns one
// FieldError per failing field. A nil slice means the entity is clean.
func Validate(entity any) []FieldError {
	err := validate.Struct(entity)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		switch fe.Tag() {
		case "required":
			return "Hotel name is required."
		case "min", "max":
			return "Hotel name must be between 3 and 100 characters."
		default:
			return "Hotel name can only contain letters, numbers and spaces."
		}
	case "Location":
		return "Location is required and must be at most 150 characters."
	case "RoomDescription":
		if fe.Tag() == "required" {
			return "Room description is required."
		}
		return "Room must be Deluxe, Premium or Presidential."
	case "PricePerNight":
		if fe.Tag() == "required" {
			return "Price per night is required."
		}
		return "Price must be greater than 0."
	case "FirstName":
		if fe.Tag() == "required" {
			return "First name is required."
		}
		return "First name must contain letters only."
	case "LastName":
		if fe.Tag() == "required" {
			return "Last name is required."
		}
		return "Last name must contain letters only."
	case "Email":
		if fe.Tag() == "required" {
			return "Email is required."
		}
		return "Invalid email address."
	case "PhoneNumber":
		if fe.Tag() == "required" {
			return "Phone number is required."
		}
		return "Phone number must be 10 digits and start with 0."
	case "CheckInDate":
		return "Check-in date is required."
	case "CheckOutDate":
		return "Check-out date is required."
	case "TotalAmount":
		return "Total amount must be greater than 0."
	case "BookingStatus":
		return "Booking status is required."
	}
	return fmt.Sprintf("%s is invalid.", fe.Field())
}
