package dto

import (
	"time"

	"github.com/sameoldmason/finance-web-sub000/internal/core/domain"
)

// RegisterProfileRequest defines the data needed to create a profile.
type RegisterProfileRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=4"`
}

// LoginRequest defines the profile login payload.
type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ProfileResponse defines the data returned for a profile.
type ProfileResponse struct {
	ProfileID string    `json:"profileID"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse returns the access token for an authenticated profile.
type LoginResponse struct {
	AccessToken string          `json:"accessToken"`
	ExpiresAt   time.Time       `json:"expiresAt"`
	Profile     ProfileResponse `json:"profile"`
}

// ToProfileResponse converts a domain.Profile.
func ToProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ProfileID: p.ProfileID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}
