package models

import "time"

// CartLineItem is one purchasable menu item and its quantity in a cart.
// ID is the source menu-item identifier; a cart holds at most one line per ID.
type CartLineItem struct {
	ID             string  `json:"id" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	Price          float64 `json:"price"`
	Quantity       int     `json:"quantity"`
	ProductImage   string  `json:"productImage,omitempty"`
	Description    string  `json:"description,omitempty"`
	RestaurantName string  `json:"restaurantName,omitempty"`
}

// CartSnapshot holds the whole cart for one subject as a single JSON blob,
// overwritten wholesale on every mutation. No schema versioning.
type CartSnapshot struct {
	UserID    string `gorm:"primaryKey"`
	Blob      []byte `gorm:"type:bytea"`
	UpdatedAt time.Time
}
