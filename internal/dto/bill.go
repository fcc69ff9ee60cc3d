package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sameoldmason/finance-web-sub000/internal/core/domain"
)

// CreateBillRequest defines the data for registering a bill.
type CreateBillRequest struct {
	Name      string               `json:"name" binding:"required"`
	Amount    decimal.Decimal      `json:"amount" binding:"required"`
	DueDate   time.Time            `json:"dueDate" binding:"required"`
	AccountID string               `json:"accountID" binding:"required"`
	Frequency domain.BillFrequency `json:"frequency" binding:"required,oneof=ONCE WEEKLY BIWEEKLY MONTHLY"`
}

// UpdateBillRequest defines the editable bill fields.
type UpdateBillRequest struct {
	Name      *string               `json:"name"`
	Amount    *decimal.Decimal      `json:"amount"`
	DueDate   *time.Time            `json:"dueDate"`
	AccountID *string               `json:"accountID"`
	Frequency *domain.BillFrequency `json:"frequency" binding:"omitempty,oneof=ONCE WEEKLY BIWEEKLY MONTHLY"`
}

// BillResponse defines the data returned for a bill.
type BillResponse struct {
	BillID    string               `json:"billID"`
	Name      string               `json:"name"`
	Amount    decimal.Decimal      `json:"amount"`
	DueDate   time.Time            `json:"dueDate"`
	AccountID string               `json:"accountID"`
	Frequency domain.BillFrequency `json:"frequency"`
	IsPaid    bool                 `json:"isPaid"`
}

// PayBillResponse returns the updated bill together with the payment
// transaction it emitted.
type PayBillResponse struct {
	Bill        BillResponse        `json:"bill"`
	Transaction TransactionResponse `json:"transaction"`
}

// ToBillResponse converts a domain.Bill.
func ToBillResponse(b *domain.Bill) BillResponse {
	return BillResponse{
		BillID:    b.BillID,
		Name:      b.Name,
		Amount:    b.Amount,
		DueDate:   b.DueDate,
		AccountID: b.AccountID,
		Frequency: b.Frequency,
		IsPaid:    b.IsPaid,
	}
}

// ToBillResponses converts a slice of bills.
func ToBillResponses(bills []domain.Bill) []BillResponse {
	res := make([]BillResponse, len(bills))
	for i := range bills {
		res[i] = ToBillResponse(&bills[i])
	}
	return res
}
