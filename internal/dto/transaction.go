package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sameoldmason/finance-web-sub000/internal/core/domain"
)

// CreateTransactionRequest defines the data for adding a plain transaction.
// Confirm bypasses the debt overpayment guard on a second attempt.
type CreateTransactionRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Confirm     bool            `json:"confirm"`
}

// UpdateTransactionRequest defines the editable transaction fields. Editing
// a transfer leg keeps its partner synchronized.
type UpdateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Date        *time.Time       `json:"date"`
	Description *string          `json:"description"`
	Confirm     bool             `json:"confirm"`
}

// TransferRequest defines the data for a linked two-leg transfer.
type TransferRequest struct {
	FromAccountID string          `json:"fromAccountID" binding:"required"`
	ToAccountID   string          `json:"toAccountID" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Date          time.Time       `json:"date"`
	Note          string          `json:"note"`
	Confirm       bool            `json:"confirm"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string                 `json:"transactionID"`
	AccountID       string                 `json:"accountID"`
	Amount          decimal.Decimal        `json:"amount"`
	Date            time.Time              `json:"date"`
	Description     string                 `json:"description"`
	Kind            domain.TransactionKind `json:"kind"`
	TransferGroupID string                 `json:"transferGroupID,omitempty"`
}

// PendingConfirmationResponse is returned with HTTP 409 when a mutation
// would overpay a debt account; the client repeats the request with
// confirm=true to force it through.
type PendingConfirmationResponse struct {
	RequiresConfirmation bool            `json:"requiresConfirmation"`
	AccountID            string          `json:"accountID"`
	AccountName          string          `json:"accountName"`
	Delta                decimal.Decimal `json:"delta"`
	ResultingBalance     decimal.Decimal `json:"resultingBalance"`
}

// TransferResponse returns both legs of a created transfer.
type TransferResponse struct {
	Outgoing TransactionResponse `json:"outgoing"`
	Incoming TransactionResponse `json:"incoming"`
}

// ToTransactionResponse converts a domain.Transaction.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		AccountID:       t.AccountID,
		Amount:          t.Amount,
		Date:            t.Date,
		Description:     t.Description,
		Kind:            t.Kind,
		TransferGroupID: t.TransferGroupID,
	}
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(ts []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(ts))
	for i := range ts {
		res[i] = ToTransactionResponse(&ts[i])
	}
	return res
}

// ToPendingConfirmationResponse converts a domain.PendingConfirmation.
func ToPendingConfirmationResponse(p *domain.PendingConfirmation) PendingConfirmationResponse {
	return PendingConfirmationResponse{
		RequiresConfirmation: true,
		AccountID:            p.AccountID,
		AccountName:          p.AccountName,
		Delta:                p.Delta,
		ResultingBalance:     p.ResultingBalance,
	}
}
