package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sameoldmason/finance-web-sub000/internal/apperrors"
	"github.com/sameoldmason/finance-web-sub000/internal/core/domain"
)

// AddTransaction applies a signed amount against an account and appends the
// transaction, keeping balance and history in lockstep. If the target is a
// debt account and the amount would push its balance past zero, nothing is
// applied and a PendingConfirmation is returned; the caller re-invokes with
// confirm=true to force the operation through.
func (l *Ledger) AddTransaction(accountID string, amount decimal.Decimal, date time.Time, description string, confirm bool, actor string) (*domain.Transaction, *domain.PendingConfirmation, error) {
	acc := l.findAccount(accountID)
	if acc == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
	}
	if amount.IsZero() {
		return nil, nil, fmt.Errorf("%w: transaction amount cannot be zero", apperrors.ErrValidation)
	}
	if !confirm {
		if pending := l.overpayGuard(acc, amount); pending != nil {
			return nil, pending, nil
		}
	}

	txn := l.newTransaction(accountID, amount, date, description, domain.KindPlain, "", actor)
	acc.Balance = acc.Balance.Add(amount)
	l.snap.Transactions = append(l.snap.Transactions, txn)
	return &l.snap.Transactions[len(l.snap.Transactions)-1], nil, nil
}

// TransactionUpdate carries optional field updates for UpdateTransaction.
type TransactionUpdate struct {
	Amount      *decimal.Decimal
	Date        *time.Time
	Description *string
}

// UpdateTransaction edits a transaction's amount/date/description and
// reapplies the balance delta. Editing one leg of a transfer pair forces the
// partner leg's amount to the exact negation and keeps its date and
// description synchronized. The overpayment guard is evaluated independently
// for both affected accounts before anything is mutated.
func (l *Ledger) UpdateTransaction(id string, upd TransactionUpdate, confirm bool, actor string) (*domain.Transaction, *domain.PendingConfirmation, error) {
	txn := l.findTransaction(id)
	if txn == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrTransactionNotFound, id)
	}
	acc := l.findAccount(txn.AccountID)
	if acc == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrAccountNotFound, txn.AccountID)
	}

	newAmount := txn.Amount
	if upd.Amount != nil {
		newAmount = *upd.Amount
	}
	if newAmount.IsZero() {
		return nil, nil, fmt.Errorf("%w: transaction amount cannot be zero", apperrors.ErrValidation)
	}
	delta := newAmount.Sub(txn.Amount)

	var partner *domain.Transaction
	var partnerAcc *domain.Account
	var partnerDelta decimal.Decimal
	if l.isTransferLeg(txn) {
		partner = l.transferPartner(txn)
		if partner != nil {
			partnerAcc = l.findAccount(partner.AccountID)
			// Transfers stay magnitude-equal and sign-opposite.
			partnerDelta = newAmount.Neg().Sub(partner.Amount)
		}
	}

	if !confirm {
		if pending := l.overpayGuard(acc, delta); pending != nil {
			return nil, pending, nil
		}
		if partnerAcc != nil {
			if pending := l.overpayGuard(partnerAcc, partnerDelta); pending != nil {
				return nil, pending, nil
			}
		}
	}

	now := l.now().UTC()
	acc.Balance = acc.Balance.Add(delta)
	txn.Amount = newAmount
	if upd.Date != nil {
		txn.Date = *upd.Date
	}
	if upd.Description != nil {
		txn.Description = *upd.Description
	}
	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = actor

	if partner != nil {
		if partnerAcc != nil {
			partnerAcc.Balance = partnerAcc.Balance.Add(partnerDelta)
		}
		partner.Amount = newAmount.Neg()
		partner.Date = txn.Date
		partner.Description = txn.Description
		partner.LastUpdatedAt = now
		partner.LastUpdatedBy = actor
	}
	return txn, nil, nil
}

// DeleteTransaction removes a transaction and reverses its delta. A transfer
// leg takes its partner with it: both legs are removed and both balance
// deltas reversed, atomically.
func (l *Ledger) DeleteTransaction(id string) error {
	txn := l.findTransaction(id)
	if txn == nil {
		return fmt.Errorf("%w: %s", ErrTransactionNotFound, id)
	}

	doomed := map[string]bool{id: true}
	if l.isTransferLeg(txn) {
		if partner := l.transferPartner(txn); partner != nil {
			doomed[partner.TransactionID] = true
		}
	}

	kept := make([]domain.Transaction, 0, len(l.snap.Transactions))
	for i := range l.snap.Transactions {
		t := &l.snap.Transactions[i]
		if !doomed[t.TransactionID] {
			kept = append(kept, *t)
			continue
		}
		if acc := l.findAccount(t.AccountID); acc != nil {
			acc.Balance = acc.Balance.Sub(t.Amount)
		}
	}
	l.snap.Transactions = kept
	return nil
}

// TransferPair is the result of a successful transfer: the outgoing leg on
// the source account and the incoming leg on the destination.
type TransferPair struct {
	Outgoing domain.Transaction
	Incoming domain.Transaction
}

// Transfer moves amount between two accounts as a linked pair of
// transactions under one transfer group. Same-account transfers and
// non-positive amounts are refused. The overpayment guard applies to the
// destination leg only: a transfer can overpay a destination debt account,
// but only ever reduces an asset or deepens a debt on the source side.
func (l *Ledger) Transfer(fromID, toID string, amount decimal.Decimal, date time.Time, note string, confirm bool, actor string) (*TransferPair, *domain.PendingConfirmation, error) {
	if fromID == toID {
		return nil, nil, fmt.Errorf("%w", ErrSameAccountTransfer)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, fmt.Errorf("%w", ErrNonPositiveAmount)
	}
	from := l.findAccount(fromID)
	if from == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrAccountNotFound, fromID)
	}
	to := l.findAccount(toID)
	if to == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrAccountNotFound, toID)
	}

	if !confirm {
		if pending := l.overpayGuard(to, amount); pending != nil {
			return nil, pending, nil
		}
	}

	outDesc := note
	inDesc := note
	if note == "" {
		outDesc = fmt.Sprintf("Transfer to %s", to.Name)
		inDesc = fmt.Sprintf("Transfer from %s", from.Name)
	}

	groupID := uuid.NewString()
	outgoing := l.newTransaction(fromID, amount.Neg(), date, outDesc, domain.KindTransfer, groupID, actor)
	incoming := l.newTransaction(toID, amount, date, inDesc, domain.KindTransfer, groupID, actor)

	from.Balance = from.Balance.Sub(amount)
	to.Balance = to.Balance.Add(amount)
	l.snap.Transactions = append(l.snap.Transactions, outgoing, incoming)

	return &TransferPair{Outgoing: outgoing, Incoming: incoming}, nil, nil
}

func (l *Ledger) newTransaction(accountID string, amount decimal.Decimal, date time.Time, description string, kind domain.TransactionKind, groupID string, actor string) domain.Transaction {
	now := l.now().UTC()
	return domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       accountID,
		Amount:          amount,
		Date:            date,
		Description:     description,
		Kind:            kind,
		TransferGroupID: groupID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}
}

func (l *Ledger) findTransaction(id string) *domain.Transaction {
	for i := range l.snap.Transactions {
		if l.snap.Transactions[i].TransactionID == id {
			return &l.snap.Transactions[i]
		}
	}
	return nil
}

// isTransferLeg classifies a transaction as half of a transfer pair. Engine
// tagging wins; for legacy data the description is the only signal left.
func (l *Ledger) isTransferLeg(t *domain.Transaction) bool {
	if t.Kind == domain.KindTransfer || t.TransferGroupID != "" {
		return true
	}
	return looksLikeTransfer(t.Description)
}

func looksLikeTransfer(description string) bool {
	d := strings.ToLower(description)
	return strings.HasPrefix(d, "transfer to ") || strings.HasPrefix(d, "transfer from ")
}

// transferPartner locates the other leg of a transfer pair. The shared
// transfer group id is authoritative; for untagged legacy legs it falls back
// to matching same calendar day, equal absolute amount with opposite sign,
// and a different account. When several candidates match, the first in
// insertion order wins.
func (l *Ledger) transferPartner(t *domain.Transaction) *domain.Transaction {
	if t.TransferGroupID != "" {
		for i := range l.snap.Transactions {
			c := &l.snap.Transactions[i]
			if c.TransactionID != t.TransactionID && c.TransferGroupID == t.TransferGroupID {
				return c
			}
		}
		return nil
	}
	for i := range l.snap.Transactions {
		c := &l.snap.Transactions[i]
		if c.TransactionID == t.TransactionID || c.AccountID == t.AccountID {
			continue
		}
		if sameDay(c.Date, t.Date) && c.Amount.Equal(t.Amount.Neg()) {
			return c
		}
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
