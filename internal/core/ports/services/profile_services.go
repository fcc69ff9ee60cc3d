package services

import (
	"context"
	"time"

	"github.com/sameoldmason/finance-web-sub000/internal/core/domain"
	"github.com/sameoldmason/finance-web-sub000/internal/dto"
)

// ProfileSvcFacade manages local profile identities.
type ProfileSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterProfileRequest) (*domain.Profile, error)
	// Authenticate returns apperrors.ErrUnauthorized for a bad name/password pair.
	Authenticate(ctx context.Context, name, password string) (*domain.Profile, error)
	GetProfileByID(ctx context.Context, profileID string) (*domain.Profile, error)
	// DeleteProfile soft-deletes the profile and drops its ledger snapshot.
	DeleteProfile(ctx context.Context, profileID string) error
}

// TokenSvcFacade issues access tokens carrying the profile identity.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, profile *domain.Profile) (string, time.Time, error)
}
