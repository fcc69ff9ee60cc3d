package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillFrequency describes how often a bill recurs.
type BillFrequency string

const (
	FrequencyOnce     BillFrequency = "ONCE"
	FrequencyWeekly   BillFrequency = "WEEKLY"
	FrequencyBiweekly BillFrequency = "BIWEEKLY"
	FrequencyMonthly  BillFrequency = "MONTHLY"
)

// Bill represents a one-time or recurring obligation against an account.
// Amount is a positive magnitude; paying the bill emits a negative
// transaction against AccountID.
type Bill struct {
	BillID    string          `json:"billID"` // Primary key (UUID)
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"` // Positive magnitude
	DueDate   time.Time       `json:"dueDate"`
	AccountID string          `json:"accountID"`
	Frequency BillFrequency   `json:"frequency"`
	IsPaid    bool            `json:"isPaid"`
	AuditFields
}

// NextDueDate returns the due date advanced by one frequency interval.
// For one-time bills the due date is returned unchanged.
func (b *Bill) NextDueDate() time.Time {
	switch b.Frequency {
	case FrequencyWeekly:
		return b.DueDate.AddDate(0, 0, 7)
	case FrequencyBiweekly:
		return b.DueDate.AddDate(0, 0, 14)
	case FrequencyMonthly:
		return b.DueDate.AddDate(0, 1, 0)
	default:
		return b.DueDate
	}
}
