package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sameoldmason/finance-web-sub000/internal/apperrors"
	"github.com/sameoldmason/finance-web-sub000/internal/core/domain"
	portsrepo "github.com/sameoldmason/finance-web-sub000/internal/core/ports/repositories"
)

type PgxProfileRepository struct {
	db *pgxpool.Pool
}

func newPgxProfileRepository(db *pgxpool.Pool) portsrepo.ProfileRepository {
	return &PgxProfileRepository{db: db}
}

// Ensure PgxProfileRepository implements portsrepo.ProfileRepository
var _ portsrepo.ProfileRepository = (*PgxProfileRepository)(nil)

func (r *PgxProfileRepository) SaveProfile(ctx context.Context, profile domain.Profile) error {
	query := `
        INSERT INTO profiles (profile_id, name, password_hash, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (profile_id) DO UPDATE SET
            name = EXCLUDED.name,
            password_hash = EXCLUDED.password_hash,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `
	_, err := r.db.Exec(ctx, query,
		profile.ProfileID,
		profile.Name,
		profile.PasswordHash,
		profile.CreatedAt,
		profile.CreatedBy,
		profile.LastUpdatedAt,
		profile.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func (r *PgxProfileRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	query := `
		SELECT profile_id, name, password_hash, created_at, created_by, last_updated_at, last_updated_by, deleted_at
		FROM profiles
		WHERE profile_id = $1 AND deleted_at IS NULL;
	`
	return r.scanProfile(r.db.QueryRow(ctx, query, profileID), profileID)
}

func (r *PgxProfileRepository) FindProfileByName(ctx context.Context, name string) (*domain.Profile, error) {
	query := `
		SELECT profile_id, name, password_hash, created_at, created_by, last_updated_at, last_updated_by, deleted_at
		FROM profiles
		WHERE name = $1 AND deleted_at IS NULL;
	`
	return r.scanProfile(r.db.QueryRow(ctx, query, name), name)
}

func (r *PgxProfileRepository) scanProfile(row pgx.Row, key string) (*domain.Profile, error) {
	var profile domain.Profile
	err := row.Scan(
		&profile.ProfileID,
		&profile.Name,
		&profile.PasswordHash,
		&profile.CreatedAt,
		&profile.CreatedBy,
		&profile.LastUpdatedAt,
		&profile.LastUpdatedBy,
		&profile.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile %s: %w", key, err)
	}
	return &profile, nil
}

// MarkProfileDeleted soft-deletes the profile and removes its ledger
// snapshot in the same transaction, so a half-deleted profile can never be
// observed.
func (r *PgxProfileRepository) MarkProfileDeleted(ctx context.Context, profileID string, now time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE profiles
		SET deleted_at = $2, last_updated_at = $2
		WHERE profile_id = $1 AND deleted_at IS NULL;
	`, profileID, now)
	if err != nil {
		return fmt.Errorf("failed to mark profile %s deleted: %w", profileID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM ledger_snapshots WHERE profile_id = $1;`, profileID); err != nil {
		return fmt.Errorf("failed to delete snapshot for profile %s: %w", profileID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit profile deletion: %w", err)
	}
	return nil
}
