package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims defines the custom claims of tokens issued by the identity provider.
type AuthClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// ProfileRequest represents the body for saving the caller's profile
// @Description Personal data of the authenticated user
type ProfileRequest struct {
	FullName  string `json:"full_name" validate:"required,max=200"`
	Birthdate string `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	City      string `json:"city" validate:"max=100"`
	Country   string `json:"country" validate:"max=100"`
}

// ProfileResponse represents a user's profile
type ProfileResponse struct {
	ID        string     `json:"id"`
	FullName  string     `json:"full_name"`
	Birthdate *time.Time `json:"birthdate,omitempty"`
	City      string     `json:"city,omitempty"`
	Country   string     `json:"country,omitempty"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// HealthResponse represents the health check result
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
