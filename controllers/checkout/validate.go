package checkoutControllers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/raushkum4590/foodify/models"
)

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	zipRe      = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	nonDigitRe = regexp.MustCompile(`\D`)
)

// FieldError identifies which delivery field failed validation and why.
// Validation errors never reach the network; the flow bounces back to Idle.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateDelivery checks the delivery form: all fields present, a sane
// email, a 10-digit phone after stripping formatting, and a 5-digit
// (optionally +4) ZIP. Returns nil when everything passes.
func ValidateDelivery(d models.DeliveryInfo) *FieldError {
	required := []struct {
		field, label, value string
	}{
		{"fullName", "Full Name", d.FullName},
		{"email", "Email", d.Email},
		{"phone", "Phone Number", d.Phone},
		{"address", "Delivery Address", d.Address},
		{"city", "City", d.City},
		{"zipCode", "ZIP Code", d.ZipCode},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &FieldError{Field: r.field, Message: "Please fill in the required field: " + r.label}
		}
	}

	if !emailRe.MatchString(d.Email) {
		return &FieldError{Field: "email", Message: "Please enter a valid email address"}
	}

	digits := nonDigitRe.ReplaceAllString(d.Phone, "")
	if len(digits) != 10 {
		return &FieldError{Field: "phone", Message: "Please enter a valid 10-digit phone number"}
	}

	if !zipRe.MatchString(d.ZipCode) {
		return &FieldError{Field: "zipCode", Message: "Please enter a valid ZIP code (e.g., 12345 or 12345-6789)"}
	}

	return nil
}
