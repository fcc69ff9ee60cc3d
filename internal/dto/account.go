package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sameoldmason/finance-web-sub000/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
// The debt-only fields are ignored for asset accounts.
type CreateAccountRequest struct {
	Name                 string                 `json:"name" binding:"required"`
	Category             domain.AccountCategory `json:"category" binding:"required,oneof=ASSET DEBT"`
	Balance              decimal.Decimal        `json:"balance"`
	CreditLimit          *decimal.Decimal       `json:"creditLimit"`
	AnnualPercentageRate *decimal.Decimal       `json:"annualPercentageRate"`
	MinimumPayment       *decimal.Decimal       `json:"minimumPayment"`
	StartingBalance      *decimal.Decimal       `json:"startingBalance"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Pointers distinguish zero-value updates from fields not provided. A
// provided Balance that differs from the current value synthesizes an
// adjustment transaction.
type UpdateAccountRequest struct {
	Name                 *string                 `json:"name"`
	Category             *domain.AccountCategory `json:"category" binding:"omitempty,oneof=ASSET DEBT"`
	Balance              *decimal.Decimal        `json:"balance"`
	CreditLimit          *decimal.Decimal        `json:"creditLimit"`
	AnnualPercentageRate *decimal.Decimal        `json:"annualPercentageRate"`
	MinimumPayment       *decimal.Decimal        `json:"minimumPayment"`
	StartingBalance      *decimal.Decimal        `json:"startingBalance"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID            string                 `json:"accountID"`
	Name                 string                 `json:"name"`
	Category             domain.AccountCategory `json:"category"`
	Balance              decimal.Decimal        `json:"balance"`
	CreditLimit          *decimal.Decimal       `json:"creditLimit,omitempty"`
	AnnualPercentageRate *decimal.Decimal       `json:"annualPercentageRate,omitempty"`
	MinimumPayment       *decimal.Decimal       `json:"minimumPayment,omitempty"`
	StartingBalance      *decimal.Decimal       `json:"startingBalance,omitempty"`
	CreatedAt            time.Time              `json:"createdAt"`
	LastUpdatedAt        time.Time              `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:            acc.AccountID,
		Name:                 acc.Name,
		Category:             acc.Category,
		Balance:              acc.Balance,
		CreditLimit:          acc.CreditLimit,
		AnnualPercentageRate: acc.AnnualPercentageRate,
		MinimumPayment:       acc.MinimumPayment,
		StartingBalance:      acc.StartingBalance,
		CreatedAt:            acc.CreatedAt,
		LastUpdatedAt:        acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of accounts.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
