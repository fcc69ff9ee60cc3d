package repositories

import (
	"context"
	"time"

	"github.com/sameoldmason/finance-web-sub000/internal/core/domain"
)

// ProfileRepository persists profile identities.
type ProfileRepository interface {
	SaveProfile(ctx context.Context, profile domain.Profile) error
	// FindProfileByID returns apperrors.ErrNotFound for unknown or deleted profiles.
	FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error)
	FindProfileByName(ctx context.Context, name string) (*domain.Profile, error)
	// MarkProfileDeleted soft-deletes the profile and removes its ledger
	// snapshot in the same database transaction.
	MarkProfileDeleted(ctx context.Context, profileID string, now time.Time) error
}
