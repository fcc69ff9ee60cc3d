// Package ledger implements the account/transaction/transfer consistency
// engine. A Ledger owns one profile's LedgerSnapshot and is the sole writer
// of its account balances: every mutation either fully applies (account
// balance and transaction list move in lockstep), is returned as a pending
// confirmation, or is rejected as a no-op. The engine is synchronous and
// performs no I/O; persistence is the caller's concern.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sameoldmason/finance-web-sub000/internal/apperrors"
	"github.com/sameoldmason/finance-web-sub000/internal/core/domain"
)

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrBillNotFound        = errors.New("bill not found")
	ErrSameAccountTransfer = errors.New("transfer source and destination must differ")
	ErrNonPositiveAmount   = errors.New("amount must be positive")
)

// minimumPaymentRate is the default minimum payment for a new debt account
// when none is given: 3% of the starting balance.
var minimumPaymentRate = decimal.NewFromFloat(0.03)

// Ledger is the consistency engine over a single profile's snapshot.
type Ledger struct {
	snap *domain.LedgerSnapshot
	now  func() time.Time
}

// New wraps an existing snapshot. The snapshot is normalized so legacy blobs
// with absent collections become well-formed.
func New(snap *domain.LedgerSnapshot) *Ledger {
	if snap == nil {
		snap = domain.NewLedgerSnapshot()
	}
	snap.Normalize()
	return &Ledger{snap: snap, now: time.Now}
}

// Snapshot exposes the underlying state for rendering and persistence.
func (l *Ledger) Snapshot() *domain.LedgerSnapshot {
	return l.snap
}

// NewAccountParams carries the caller-supplied fields for AddAccount.
type NewAccountParams struct {
	Name                 string
	Category             domain.AccountCategory
	Balance              decimal.Decimal
	CreditLimit          *decimal.Decimal
	AnnualPercentageRate *decimal.Decimal
	MinimumPayment       *decimal.Decimal
	StartingBalance      *decimal.Decimal
}

// AddAccount creates an account, normalizing the category-dependent fields.
// A debt account defaults its starting balance to |balance| and its minimum
// payment to 3% of that; a debt account with a positive initial balance is
// refused outright.
func (l *Ledger) AddAccount(p NewAccountParams, actor string) (*domain.Account, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	if p.Category != domain.CategoryAsset && p.Category != domain.CategoryDebt {
		return nil, fmt.Errorf("%w: unknown account category %q", apperrors.ErrValidation, p.Category)
	}
	if p.Category == domain.CategoryDebt && p.Balance.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: a debt account cannot start with a positive balance", apperrors.ErrValidation)
	}

	now := l.now().UTC()
	acc := domain.Account{
		AccountID: uuid.NewString(),
		Name:      p.Name,
		Category:  p.Category,
		Balance:   p.Balance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}
	if p.Category == domain.CategoryDebt {
		acc.CreditLimit = p.CreditLimit
		acc.AnnualPercentageRate = p.AnnualPercentageRate
		acc.MinimumPayment = p.MinimumPayment
		acc.StartingBalance = p.StartingBalance
		if acc.StartingBalance == nil {
			sb := p.Balance.Abs()
			acc.StartingBalance = &sb
		}
		if acc.MinimumPayment == nil {
			mp := p.Balance.Abs().Mul(minimumPaymentRate).Round(2)
			acc.MinimumPayment = &mp
		}
	}

	l.snap.Accounts = append(l.snap.Accounts, acc)
	if l.snap.SelectedAccountID == "" {
		l.snap.SelectedAccountID = acc.AccountID
	}
	return &l.snap.Accounts[len(l.snap.Accounts)-1], nil
}

// AccountUpdate carries optional field updates for EditAccount. Nil fields
// are left untouched.
type AccountUpdate struct {
	Name                 *string
	Category             *domain.AccountCategory
	Balance              *decimal.Decimal
	CreditLimit          *decimal.Decimal
	AnnualPercentageRate *decimal.Decimal
	MinimumPayment       *decimal.Decimal
	StartingBalance      *decimal.Decimal
}

// EditAccount applies direct field updates. A balance change is never silent:
// it synthesizes a single adjustment transaction for the delta so the
// transaction history remains the complete explanation of every balance
// change. The adjustment transaction (nil when the balance was untouched) is
// returned alongside the account.
func (l *Ledger) EditAccount(id string, upd AccountUpdate, actor string) (*domain.Account, *domain.Transaction, error) {
	acc := l.findAccount(id)
	if acc == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}

	if upd.Name != nil {
		acc.Name = *upd.Name
	}
	if upd.Category != nil {
		acc.Category = *upd.Category
	}
	if upd.CreditLimit != nil {
		acc.CreditLimit = upd.CreditLimit
	}
	if upd.AnnualPercentageRate != nil {
		acc.AnnualPercentageRate = upd.AnnualPercentageRate
	}
	if upd.MinimumPayment != nil {
		acc.MinimumPayment = upd.MinimumPayment
	}
	if upd.StartingBalance != nil {
		acc.StartingBalance = upd.StartingBalance
	}

	var adjustment *domain.Transaction
	if upd.Balance != nil && !upd.Balance.Equal(acc.Balance) {
		delta := upd.Balance.Sub(acc.Balance)
		label := "Balance adjustment (increase)"
		if delta.IsNegative() {
			label = "Balance adjustment (decrease)"
		}
		txn := l.newTransaction(acc.AccountID, delta, l.now().UTC(), label, domain.KindPlain, "", actor)
		l.snap.Transactions = append(l.snap.Transactions, txn)
		acc.Balance = *upd.Balance
		adjustment = &l.snap.Transactions[len(l.snap.Transactions)-1]
	}

	acc.LastUpdatedAt = l.now().UTC()
	acc.LastUpdatedBy = actor
	return acc, adjustment, nil
}

// DeleteAccount soft-removes an account into the deleted set and purges its
// transactions and bills outright; the account is gone, so there is nothing
// to roll back. If the account held the active-selection cursor, the cursor
// moves to a neighboring account.
func (l *Ledger) DeleteAccount(id string) error {
	idx := -1
	for i := range l.snap.Accounts {
		if l.snap.Accounts[i].AccountID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}

	acc := l.snap.Accounts[idx]
	l.snap.Accounts = append(l.snap.Accounts[:idx], l.snap.Accounts[idx+1:]...)

	// Deduplicate by id in the deleted set.
	found := false
	for i := range l.snap.DeletedAccounts {
		if l.snap.DeletedAccounts[i].AccountID == id {
			l.snap.DeletedAccounts[i] = acc
			found = true
			break
		}
	}
	if !found {
		l.snap.DeletedAccounts = append(l.snap.DeletedAccounts, acc)
	}

	kept := l.snap.Transactions[:0]
	for _, t := range l.snap.Transactions {
		if t.AccountID != id {
			kept = append(kept, t)
		}
	}
	l.snap.Transactions = kept

	keptBills := l.snap.Bills[:0]
	for _, b := range l.snap.Bills {
		if b.AccountID != id {
			keptBills = append(keptBills, b)
		}
	}
	l.snap.Bills = keptBills

	if l.snap.SelectedAccountID == id {
		l.snap.SelectedAccountID = ""
		if len(l.snap.Accounts) > 0 {
			n := idx - 1
			if n < 0 {
				n = 0
			}
			if n >= len(l.snap.Accounts) {
				n = len(l.snap.Accounts) - 1
			}
			l.snap.SelectedAccountID = l.snap.Accounts[n].AccountID
		}
	}
	return nil
}

// RestoreAccount moves an account back from the deleted set into the active
// set. Restoring an account that is already active is a no-op (idempotent).
func (l *Ledger) RestoreAccount(id string) error {
	idx := -1
	for i := range l.snap.DeletedAccounts {
		if l.snap.DeletedAccounts[i].AccountID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}

	acc := l.snap.DeletedAccounts[idx]
	l.snap.DeletedAccounts = append(l.snap.DeletedAccounts[:idx], l.snap.DeletedAccounts[idx+1:]...)

	if l.findAccount(id) == nil {
		l.snap.Accounts = append(l.snap.Accounts, acc)
	}
	return nil
}

// Reset clears ledger collections per scope. For every scope except the full
// wipe, removed transactions have their deltas rolled back onto the affected
// accounts, so each account ends at the balance it would have had without
// the removed transactions.
func (l *Ledger) Reset(scope domain.ResetScope) error {
	switch scope {
	case domain.ResetTransactions:
		l.removeTransactions(func(t *domain.Transaction) bool { return !l.isTransferLeg(t) })
	case domain.ResetTransfers:
		l.removeTransactions(func(t *domain.Transaction) bool { return l.isTransferLeg(t) })
	case domain.ResetTransactionsAndTransfers:
		l.removeTransactions(func(t *domain.Transaction) bool { return true })
	case domain.ResetFull:
		l.snap.Accounts = []domain.Account{}
		l.snap.DeletedAccounts = []domain.Account{}
		l.snap.Transactions = []domain.Transaction{}
		l.snap.Bills = []domain.Bill{}
		l.snap.NetWorthHistory = []domain.NetWorthSnapshot{}
		l.snap.SelectedAccountID = ""
	default:
		return fmt.Errorf("%w: unknown reset scope %q", apperrors.ErrValidation, scope)
	}
	return nil
}

// removeTransactions drops every transaction matching the predicate and
// reverses its delta on the owning account.
func (l *Ledger) removeTransactions(match func(*domain.Transaction) bool) {
	kept := make([]domain.Transaction, 0, len(l.snap.Transactions))
	for i := range l.snap.Transactions {
		t := &l.snap.Transactions[i]
		if !match(t) {
			kept = append(kept, *t)
			continue
		}
		if acc := l.findAccount(t.AccountID); acc != nil {
			acc.Balance = acc.Balance.Sub(t.Amount)
		}
	}
	l.snap.Transactions = kept
}

// findAccount returns the active account with the given id, or nil.
func (l *Ledger) findAccount(id string) *domain.Account {
	for i := range l.snap.Accounts {
		if l.snap.Accounts[i].AccountID == id {
			return &l.snap.Accounts[i]
		}
	}
	return nil
}

// overpayGuard returns a pending confirmation when applying delta would move
// a debt account's balance past zero into positive territory. Balances the
// user has already forced positive stay out of the guard's reach.
func (l *Ledger) overpayGuard(acc *domain.Account, delta decimal.Decimal) *domain.PendingConfirmation {
	if !acc.IsDebt() {
		return nil
	}
	resulting := acc.Balance.Add(delta)
	if acc.Balance.LessThanOrEqual(decimal.Zero) && resulting.GreaterThan(decimal.Zero) {
		return &domain.PendingConfirmation{
			AccountID:        acc.AccountID,
			AccountName:      acc.Name,
			Delta:            delta,
			ResultingBalance: resulting,
		}
	}
	return nil
}
