package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind distinguishes plain transactions from transfer legs.
type TransactionKind string

const (
	KindPlain    TransactionKind = "PLAIN"
	KindTransfer TransactionKind = "TRANSFER"
)

// Transaction represents a single signed balance change against one account.
// Positive amounts are inflows, negative amounts are outflows. Transfer legs
// come in pairs sharing a TransferGroupID: one negative leg on the source
// account and one positive leg of equal magnitude on the destination.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary key (UUID)
	AccountID       string          `json:"accountID"`     // Owning account
	Amount          decimal.Decimal `json:"amount"`        // Signed
	Date            time.Time       `json:"date"`
	Description     string          `json:"description"`
	Kind            TransactionKind `json:"kind"`
	TransferGroupID string          `json:"transferGroupID,omitempty"` // Shared by exactly two legs
	AuditFields
}

// IsTransferLeg reports whether the transaction is one half of a transfer
// pair. Engine-created transfers always carry the TRANSFER kind; legacy data
// may only be recognizable by its description.
func (t *Transaction) IsTransferLeg() bool {
	return t.Kind == KindTransfer || t.TransferGroupID != ""
}

// PendingConfirmation is returned instead of applying a mutation when the
// mutation would push a debt account's balance past zero into positive
// territory. It carries enough information for the caller to re-issue the
// same operation with the confirm flag set. No state has been mutated when a
// PendingConfirmation is returned.
type PendingConfirmation struct {
	AccountID        string          `json:"accountID"`
	AccountName      string          `json:"accountName"`
	Delta            decimal.Decimal `json:"delta"`
	ResultingBalance decimal.Decimal `json:"resultingBalance"`
}
