package models

import (
	"time"
)

// User is a teacher account mirrored from the external identity provider.
// ID is the provider's user id, not a database sequence.
type User struct {
	ID        string    `json:"id" db:"id" example:"user_2abcXYZ"`
	Email     string    `json:"email" db:"email" example:"teacher@school.edu"`
	FirstName string    `json:"firstName" db:"first_name" example:"Ada"`
	LastName  string    `json:"lastName" db:"last_name" example:"Lovelace"`
	ImageURL  *string   `json:"imageUrl,omitempty" db:"image_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
