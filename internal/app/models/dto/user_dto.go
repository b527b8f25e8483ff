package dto

import (
	"time"

	"github.com/yigit/coursecraft/internal/app/models"
)

// UserResponse represents the authenticated user's profile
type UserResponse struct {
	ID        string    `json:"id" example:"user_2abcXYZ"`
	Email     string    `json:"email" example:"teacher@school.edu"`
	FirstName string    `json:"firstName" example:"Ada"`
	LastName  string    `json:"lastName" example:"Lovelace"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromUser maps a user model to its response DTO
func FromUser(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		ImageURL:  u.ImageURL,
		CreatedAt: u.CreatedAt,
	}
}
