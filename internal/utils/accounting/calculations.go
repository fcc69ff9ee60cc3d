package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/sameoldmason/finance-web-sub000/internal/core/domain"
)

// Aggregate computes net worth over the active account list. Non-debt
// balances count toward assets, as does a debt account the user has forced
// positive; debt balances below zero count toward debts by absolute value.
// All three outputs are rounded half-up on the cent boundary, and net worth
// is derived from the rounded totals so re-aggregating the same list is
// idempotent.
func Aggregate(accounts []domain.Account) domain.NetWorthSummary {
	totalAssets := decimal.Zero
	totalDebts := decimal.Zero

	for _, acc := range accounts {
		if acc.Category == domain.CategoryDebt && acc.Balance.IsNegative() {
			totalDebts = totalDebts.Add(acc.Balance.Abs())
			continue
		}
		totalAssets = totalAssets.Add(acc.Balance)
	}

	totalAssets = roundHalfUpCents(totalAssets)
	totalDebts = roundHalfUpCents(totalDebts)
	return domain.NetWorthSummary{
		NetWorth:    totalAssets.Sub(totalDebts),
		TotalAssets: totalAssets,
		TotalDebts:  totalDebts,
	}
}

var half = decimal.New(5, -1)

// roundHalfUpCents rounds to the cent with ties going toward positive
// infinity: -1.005 rounds to -1.00, not -1.01. decimal.Round is
// half-away-from-zero, which disagrees exactly at the half-cent boundary
// for negative totals.
func roundHalfUpCents(d decimal.Decimal) decimal.Decimal {
	return d.Shift(2).Add(half).Floor().Shift(-2)
}

// Snapshot renders the summary as one retained day of history, keyed by the
// calendar day of at.
func Snapshot(summary domain.NetWorthSummary, at string) domain.NetWorthSnapshot {
	return domain.NetWorthSnapshot{
		Date:        at,
		Value:       summary.NetWorth,
		TotalAssets: summary.TotalAssets,
		TotalDebts:  summary.TotalDebts,
	}
}
