package domain

import (
	"github.com/shopspring/decimal"
)

// NetWorthViewMode selects how the net-worth panel is rendered client-side.
type NetWorthViewMode string

const (
	ViewModeMinimal  NetWorthViewMode = "MINIMAL"
	ViewModeDetailed NetWorthViewMode = "DETAILED"
)

// NetWorthSummary is the aggregate of the current account list, all values
// rounded to cents.
type NetWorthSummary struct {
	NetWorth    decimal.Decimal `json:"netWorth"`
	TotalAssets decimal.Decimal `json:"totalAssets"`
	TotalDebts  decimal.Decimal `json:"totalDebts"`
}

// NetWorthSnapshot is one retained day of net-worth history. Date is the
// calendar day in YYYY-MM-DD form; a same-day recompute replaces the entry
// rather than appending a second one.
type NetWorthSnapshot struct {
	Date        string          `json:"date"`
	Value       decimal.Decimal `json:"value"`
	TotalAssets decimal.Decimal `json:"totalAssets"`
	TotalDebts  decimal.Decimal `json:"totalDebts"`
}
