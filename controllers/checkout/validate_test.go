package checkoutControllers

import (
	"testing"

	"github.com/raushkum4590/foodify/models"
)

func validDelivery() models.DeliveryInfo {
	return models.DeliveryInfo{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "(555) 123-4567",
		Address:  "1 Main St",
		City:     "Springfield",
		ZipCode:  "12345",
	}
}

func TestValidateDeliveryPasses(t *testing.T) {
	if err := ValidateDelivery(validDelivery()); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
}

func TestValidateDeliveryRequiredFields(t *testing.T) {
	cases := []struct {
		field string
		edit  func(*models.DeliveryInfo)
	}{
		{"fullName", func(d *models.DeliveryInfo) { d.FullName = "" }},
		{"email", func(d *models.DeliveryInfo) { d.Email = "  " }},
		{"phone", func(d *models.DeliveryInfo) { d.Phone = "" }},
		{"address", func(d *models.DeliveryInfo) { d.Address = "" }},
		{"city", func(d *models.DeliveryInfo) { d.City = "" }},
		{"zipCode", func(d *models.DeliveryInfo) { d.ZipCode = "" }},
	}
	for _, tc := range cases {
		d := validDelivery()
		tc.edit(&d)
		err := ValidateDelivery(d)
		if err == nil {
			t.Errorf("%s: expected error for missing field", tc.field)
			continue
		}
		if err.Field != tc.field {
			t.Errorf("expected field %q, got %q", tc.field, err.Field)
		}
	}
}

func TestValidateDeliveryEmail(t *testing.T) {
	d := validDelivery()
	d.Email = "not-an-email"
	if err := ValidateDelivery(d); err == nil || err.Field != "email" {
		t.Fatalf("expected email error, got %v", err)
	}
}

func TestValidateDeliveryPhoneStripsFormatting(t *testing.T) {
	d := validDelivery()
	d.Phone = "555-123-4567"
	if err := ValidateDelivery(d); err != nil {
		t.Fatalf("formatted 10-digit phone should pass, got %v", err)
	}

	d.Phone = "123456789" // nine digits
	if err := ValidateDelivery(d); err == nil || err.Field != "phone" {
		t.Fatalf("expected phone error, got %v", err)
	}
}

func TestValidateDeliveryZip(t *testing.T) {
	d := validDelivery()
	for _, zip := range []string{"12345", "12345-6789"} {
		d.ZipCode = zip
		if err := ValidateDelivery(d); err != nil {
			t.Errorf("zip %q should pass, got %v", zip, err)
		}
	}
	for _, zip := range []string{"1234", "123456", "abcde", "12345-67"} {
		d.ZipCode = zip
		if err := ValidateDelivery(d); err == nil || err.Field != "zipCode" {
			t.Errorf("zip %q should fail on zipCode, got %v", zip, err)
		}
	}
}
