package services

import (
	"context"
	"time"

	"github.com/sameoldmason/finance-web-sub000/internal/core/domain"
	"github.com/sameoldmason/finance-web-sub000/internal/core/payoff"
	portssvc "github.com/sameoldmason/finance-web-sub000/internal/core/ports/services"
)

// payoffServiceImpl implements the PayoffSvcFacade interface. It reads the
// profile's ledger through the ledger service and hands the debt accounts
// to the simulator; it never mutates ledger state.
type payoffServiceImpl struct {
	BaseService
	ledgerService portssvc.LedgerSvcFacade
	now           func() time.Time
}

// NewPayoffServiceImpl creates a new payoff planning service.
func NewPayoffServiceImpl(ledgerService portssvc.LedgerSvcFacade) portssvc.PayoffSvcFacade {
	return &payoffServiceImpl{
		ledgerService: ledgerService,
		now:           time.Now,
	}
}

// Ensure payoffServiceImpl implements the PayoffSvcFacade interface
var _ portssvc.PayoffSvcFacade = (*payoffServiceImpl)(nil)

func (s *payoffServiceImpl) Plan(ctx context.Context, profileID string) (*payoff.Plan, error) {
	snap, err := s.ledgerService.GetLedger(ctx, profileID)
	if err != nil {
		return nil, err
	}

	debts := debtsFromAccounts(snap.Accounts)
	plan := payoff.Simulate(debts, snap.DebtPayoffSettings, s.now())
	return &plan, nil
}

// debtsFromAccounts converts live debt accounts into the simulator's view:
// positive magnitudes, with absent debt attributes defaulting to zero rate
// and the current balance as the starting point.
func debtsFromAccounts(accounts []domain.Account) []payoff.Debt {
	debts := make([]payoff.Debt, 0, len(accounts))
	for i := range accounts {
		acc := &accounts[i]
		if !acc.IsDebt() {
			continue
		}
		d := payoff.Debt{
			ID:      acc.AccountID,
			Name:    acc.Name,
			Balance: acc.Balance.Abs().InexactFloat64(),
		}
		if acc.MinimumPayment != nil {
			d.MinimumPayment = acc.MinimumPayment.InexactFloat64()
		}
		if acc.AnnualPercentageRate != nil {
			d.AnnualRate = acc.AnnualPercentageRate.InexactFloat64()
		}
		if acc.StartingBalance != nil {
			d.StartingBalance = acc.StartingBalance.Abs().InexactFloat64()
		} else {
			d.StartingBalance = d.Balance
		}
		debts = append(debts, d)
	}
	return debts
}
