package dto

import (
	"time"

	"pickleball-api/modules/user/entity"
)

// UpdateProfileRequest updates the editable profile fields
type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// ProfileResponse for the authenticated user's profile
type ProfileResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	BookingIDs []string  `json:"booking_ids"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToProfileResponse(u *entity.User) *ProfileResponse {
	return &ProfileResponse{
		ID:         u.ID.String(),
		Email:      u.Email,
		FullName:   u.FullName,
		Phone:      u.Phone,
		BookingIDs: u.BookingIDs,
		CreatedAt:  u.CreatedAt,
	}
}
