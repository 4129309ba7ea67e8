package dto

import (
	"time"

	"github.com/tajuwa/clickbit_backend/internal/core/domain"
)

// UserResponse is the public projection of a user record. It never carries
// the password hash, token version or provider identifiers.
type UserResponse struct {
	ID         string     `json:"id"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName,omitempty"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	IsActive   bool       `json:"is_active"`
	IsVerified bool       `json:"is_verified"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	AvatarURL  string     `json:"avatar_url,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ToUserResponse converts a domain user to its public projection.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:         user.UserID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
		Role:       string(user.Role),
		IsActive:   user.IsActive,
		IsVerified: user.IsVerified,
		LastLogin:  user.LastLogin,
		Phone:      user.Phone,
		AvatarURL:  user.AvatarURL,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}
