package domain

import "time"

// Profile represents a local profile identity. The ledger core is
// parameterized by the opaque ProfileID; switching profiles fully reloads
// ledger state.
type Profile struct {
	ProfileID    string `json:"profileID"` // Primary key (UUID)
	Name         string `json:"name"`
	PasswordHash string `json:"-"` // bcrypt hash, never serialized
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
