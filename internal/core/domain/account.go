package domain

import (
	"github.com/shopspring/decimal"
)

// AccountCategory classifies an account as an asset or a debt.
type AccountCategory string

const (
	CategoryAsset AccountCategory = "ASSET"
	CategoryDebt  AccountCategory = "DEBT"
)

// Account represents a financial account within the core domain.
// Debt accounts carry a non-positive balance; paying a debt down moves the
// balance toward zero. The debt-only fields are nil for asset accounts.
type Account struct {
	AccountID string          `json:"accountID"` // Primary key (UUID)
	Name      string          `json:"name"`      // User-defined name
	Category  AccountCategory `json:"category"`  // ASSET or DEBT
	Balance   decimal.Decimal `json:"balance"`   // Materialized running total, kept in lockstep with transactions

	// Debt-only attributes.
	CreditLimit          *decimal.Decimal `json:"creditLimit,omitempty"`
	AnnualPercentageRate *decimal.Decimal `json:"annualPercentageRate,omitempty"` // Fractional, e.g. 0.1999
	MinimumPayment       *decimal.Decimal `json:"minimumPayment,omitempty"`
	StartingBalance      *decimal.Decimal `json:"startingBalance,omitempty"` // |balance| at creation, measures payoff progress

	AuditFields
}

// IsDebt reports whether the account is a debt-category account.
func (a *Account) IsDebt() bool {
	return a.Category == CategoryDebt
}

// Clone returns a copy of the account with the debt-only pointer fields
// detached from the original.
func (a Account) Clone() Account {
	a.CreditLimit = cloneDecimalPtr(a.CreditLimit)
	a.AnnualPercentageRate = cloneDecimalPtr(a.AnnualPercentageRate)
	a.MinimumPayment = cloneDecimalPtr(a.MinimumPayment)
	a.StartingBalance = cloneDecimalPtr(a.StartingBalance)
	return a
}

func cloneDecimalPtr(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
