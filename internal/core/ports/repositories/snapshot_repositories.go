package repositories

import (
	"context"

	"github.com/sameoldmason/finance-web-sub000/internal/core/domain"
)

// SnapshotRepository is the persistence collaborator for ledger snapshots:
// an opaque profile-id→blob store. The ledger core owns the snapshot
// contents; implementations only serialize and deserialize it.
type SnapshotRepository interface {
	// LoadSnapshot returns (nil, nil) when no snapshot exists for the
	// profile, and also when the stored blob is corrupt — a corrupt read is
	// logged, never surfaced as an error.
	LoadSnapshot(ctx context.Context, profileID string) (*domain.LedgerSnapshot, error)
	// SaveSnapshot persists the full snapshot, defaulting absent collections
	// to empty so a round-trip always yields well-formed collections.
	SaveSnapshot(ctx context.Context, profileID string, snap *domain.LedgerSnapshot) error
	// DeleteSnapshot removes the profile's snapshot if present.
	DeleteSnapshot(ctx context.Context, profileID string) error
}
