package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sameoldmason/finance-web-sub000/internal/core/domain"
	portsrepo "github.com/sameoldmason/finance-web-sub000/internal/core/ports/repositories"
	"github.com/sameoldmason/finance-web-sub000/internal/middleware"
)

// PgxSnapshotRepository stores each profile's ledger snapshot as a single
// JSONB blob. The snapshot contents are opaque here: the ledger core owns
// the schema, this layer only round-trips it.
type PgxSnapshotRepository struct {
	db *pgxpool.Pool
}

func newPgxSnapshotRepository(db *pgxpool.Pool) portsrepo.SnapshotRepository {
	return &PgxSnapshotRepository{db: db}
}

// Ensure PgxSnapshotRepository implements portsrepo.SnapshotRepository
var _ portsrepo.SnapshotRepository = (*PgxSnapshotRepository)(nil)

func (r *PgxSnapshotRepository) LoadSnapshot(ctx context.Context, profileID string) (*domain.LedgerSnapshot, error) {
	query := `
		SELECT data
		FROM ledger_snapshots
		WHERE profile_id = $1;
	`
	var raw []byte
	err := r.db.QueryRow(ctx, query, profileID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load snapshot for profile %s: %w", profileID, err)
	}

	var snap domain.LedgerSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		// A corrupt blob is treated like a missing one: the caller starts
		// from an empty ledger rather than being locked out of the app.
		middleware.GetLoggerFromCtx(ctx).Error("Stored ledger snapshot is corrupt, starting fresh",
			slog.String("profile_id", profileID),
			slog.String("error", err.Error()))
		return nil, nil
	}
	snap.Normalize()
	return &snap, nil
}

func (r *PgxSnapshotRepository) SaveSnapshot(ctx context.Context, profileID string, snap *domain.LedgerSnapshot) error {
	if snap == nil {
		snap = domain.NewLedgerSnapshot()
	}
	snap.Normalize()

	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot for profile %s: %w", profileID, err)
	}

	query := `
		INSERT INTO ledger_snapshots (profile_id, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (profile_id) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.db.Exec(ctx, query, profileID, raw, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save snapshot for profile %s: %w", profileID, err)
	}
	return nil
}

func (r *PgxSnapshotRepository) DeleteSnapshot(ctx context.Context, profileID string) error {
	query := `DELETE FROM ledger_snapshots WHERE profile_id = $1;`
	if _, err := r.db.Exec(ctx, query, profileID); err != nil {
		return fmt.Errorf("failed to delete snapshot for profile %s: %w", profileID, err)
	}
	return nil
}
