package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sameoldmason/finance-web-sub000/internal/apperrors"
	"github.com/sameoldmason/finance-web-sub000/internal/core/domain"
)

// NewBillParams carries the caller-supplied fields for AddBill.
type NewBillParams struct {
	Name      string
	Amount    decimal.Decimal
	DueDate   time.Time
	AccountID string
	Frequency domain.BillFrequency
}

// AddBill registers a bill against an existing account.
func (l *Ledger) AddBill(p NewBillParams, actor string) (*domain.Bill, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("%w: bill name is required", apperrors.ErrValidation)
	}
	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: bill amount must be positive", apperrors.ErrValidation)
	}
	switch p.Frequency {
	case domain.FrequencyOnce, domain.FrequencyWeekly, domain.FrequencyBiweekly, domain.FrequencyMonthly:
	default:
		return nil, fmt.Errorf("%w: unknown bill frequency %q", apperrors.ErrValidation, p.Frequency)
	}
	if l.findAccount(p.AccountID) == nil {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, p.AccountID)
	}

	now := l.now().UTC()
	bill := domain.Bill{
		BillID:    uuid.NewString(),
		Name:      p.Name,
		Amount:    p.Amount,
		DueDate:   p.DueDate,
		AccountID: p.AccountID,
		Frequency: p.Frequency,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}
	l.snap.Bills = append(l.snap.Bills, bill)
	return &l.snap.Bills[len(l.snap.Bills)-1], nil
}

// BillUpdate carries optional field updates for UpdateBill.
type BillUpdate struct {
	Name      *string
	Amount    *decimal.Decimal
	DueDate   *time.Time
	AccountID *string
	Frequency *domain.BillFrequency
}

// UpdateBill edits bill fields in place. Bills only touch account balances
// when they are paid, so no rollback is involved here.
func (l *Ledger) UpdateBill(id string, upd BillUpdate, actor string) (*domain.Bill, error) {
	bill := l.findBill(id)
	if bill == nil {
		return nil, fmt.Errorf("%w: %s", ErrBillNotFound, id)
	}
	if upd.Amount != nil && upd.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: bill amount must be positive", apperrors.ErrValidation)
	}
	if upd.AccountID != nil && l.findAccount(*upd.AccountID) == nil {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, *upd.AccountID)
	}

	if upd.Name != nil {
		bill.Name = *upd.Name
	}
	if upd.Amount != nil {
		bill.Amount = *upd.Amount
	}
	if upd.DueDate != nil {
		bill.DueDate = *upd.DueDate
	}
	if upd.AccountID != nil {
		bill.AccountID = *upd.AccountID
	}
	if upd.Frequency != nil {
		bill.Frequency = *upd.Frequency
	}
	bill.LastUpdatedAt = l.now().UTC()
	bill.LastUpdatedBy = actor
	return bill, nil
}

// DeleteBill removes a bill. Transactions already emitted by past payments
// are untouched.
func (l *Ledger) DeleteBill(id string) error {
	for i := range l.snap.Bills {
		if l.snap.Bills[i].BillID == id {
			l.snap.Bills = append(l.snap.Bills[:i], l.snap.Bills[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrBillNotFound, id)
}

// MarkBillPaid emits a negative transaction for the bill amount against the
// bill's account, then either flags a one-time bill paid or advances a
// recurring bill's due date by its frequency interval and leaves it unpaid
// for the next cycle.
func (l *Ledger) MarkBillPaid(id string, actor string) (*domain.Bill, *domain.Transaction, error) {
	bill := l.findBill(id)
	if bill == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrBillNotFound, id)
	}
	acc := l.findAccount(bill.AccountID)
	if acc == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrAccountNotFound, bill.AccountID)
	}

	now := l.now().UTC()
	txn := l.newTransaction(bill.AccountID, bill.Amount.Neg(), now, fmt.Sprintf("Bill payment: %s", bill.Name), domain.KindPlain, "", actor)
	acc.Balance = acc.Balance.Sub(bill.Amount)
	l.snap.Transactions = append(l.snap.Transactions, txn)

	if bill.Frequency == domain.FrequencyOnce {
		bill.IsPaid = true
	} else {
		bill.DueDate = bill.NextDueDate()
		bill.IsPaid = false
	}
	bill.LastUpdatedAt = now
	bill.LastUpdatedBy = actor
	return bill, &l.snap.Transactions[len(l.snap.Transactions)-1], nil
}

func (l *Ledger) findBill(id string) *domain.Bill {
	for i := range l.snap.Bills {
		if l.snap.Bills[i].BillID == id {
			return &l.snap.Bills[i]
		}
	}
	return nil
}
