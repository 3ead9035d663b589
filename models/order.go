package models

import "time"

const (
	PaymentMethodStripe = "stripe"
	PaymentMethodCash   = "cash"
)

// Order mirrors the content API's order record. The content API is the sole
// durable store; the service holds no independent copy after submission.
// Items and DeliveryInfo are serialized JSON, matching the upstream schema.
type Order struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Items          string    `json:"items"`
	Total          float64   `json:"total"`
	RestaurantName string    `json:"restaurantName"`
	DeliveryInfo   string    `json:"deliveryInfo"`
	PaymentMethod  string    `json:"paymentMethod"`
	CreatedAt      time.Time `json:"createdAt"`
}

// OrderInput is what the assembler submits to the content API.
type OrderInput struct {
	Email          string  `json:"email"`
	Items          string  `json:"items"`
	Total          float64 `json:"total"`
	RestaurantName string  `json:"restaurantName"`
	DeliveryInfo   string  `json:"deliveryInfo"`
	PaymentMethod  string  `json:"paymentMethod"`
}

// DeliveryInfo is the checkout delivery form.
type DeliveryInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	ZipCode  string `json:"zipCode"`
}
