package models

import "time"

type User struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Email     string `gorm:"unique;not null" json:"email"`
	Phone     string `json:"phone,omitempty"`
	Name      string `json:"name"`
	Picture   string `json:"picture,omitempty"`
	Provider  string `json:"provider"`
	CreatedAt time.Time
}

// GuestUser backs anonymous sessions so a cart can exist before sign-in.
type GuestUser struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}
