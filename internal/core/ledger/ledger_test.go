package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sameoldmason/finance-web-sub000/internal/apperrors"
	"github.com/sameoldmason/finance-web-sub000/internal/core/domain"
	"github.com/sameoldmason/finance-web-sub000/internal/core/ledger"
)

const actor = "tester"

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func newAsset(t *testing.T, l *ledger.Ledger, name, balance string) *domain.Account {
	t.Helper()
	acc, err := l.AddAccount(ledger.NewAccountParams{
		Name:     name,
		Category: domain.CategoryAsset,
		Balance:  dec(balance),
	}, actor)
	require.NoError(t, err)
	return acc
}

func newDebt(t *testing.T, l *ledger.Ledger, name, balance string) *domain.Account {
	t.Helper()
	acc, err := l.AddAccount(ledger.NewAccountParams{
		Name:     name,
		Category: domain.CategoryDebt,
		Balance:  dec(balance),
	}, actor)
	require.NoError(t, err)
	return acc
}

func TestAddAccount_DebtDefaults(t *testing.T) {
	l := ledger.New(nil)

	acc, err := l.AddAccount(ledger.NewAccountParams{
		Name:     "Credit Card",
		Category: domain.CategoryDebt,
		Balance:  dec("-1500"),
	}, actor)
	require.NoError(t, err)

	require.NotNil(t, acc.StartingBalance)
	assert.True(t, acc.StartingBalance.Equal(dec("1500")), "starting balance defaults to |balance|")
	require.NotNil(t, acc.MinimumPayment)
	assert.True(t, acc.MinimumPayment.Equal(dec("45")), "minimum payment defaults to 3%% of starting balance, got %s", acc.MinimumPayment)
}

func TestAddAccount_RejectsPositiveDebtBalance(t *testing.T) {
	l := ledger.New(nil)

	_, err := l.AddAccount(ledger.NewAccountParams{
		Name:     "Bad Debt",
		Category: domain.CategoryDebt,
		Balance:  dec("100"),
	}, actor)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAddAccount_FirstAccountTakesSelection(t *testing.T) {
	l := ledger.New(nil)

	first := newAsset(t, l, "Checking", "100")
	newAsset(t, l, "Savings", "200")

	assert.Equal(t, first.AccountID, l.Snapshot().SelectedAccountID)
}

func TestAddTransaction_BalanceAndHistoryMoveTogether(t *testing.T) {
	l := ledger.New(nil)
	acc := newAsset(t, l, "Checking", "100")

	txn, pending, err := l.AddTransaction(acc.AccountID, dec("-30"), time.Now(), "groceries", false, actor)
	require.NoError(t, err)
	require.Nil(t, pending)

	assert.True(t, acc.Balance.Equal(dec("70")))
	assert.Len(t, l.Snapshot().Transactions, 1)
	assert.Equal(t, "groceries", txn.Description)
}

func TestAddTransaction_ZeroAmountRejected(t *testing.T) {
	l := ledger.New(nil)
	acc := newAsset(t, l, "Checking", "100")

	_, _, err := l.AddTransaction(acc.AccountID, decimal.Zero, time.Now(), "noop", false, actor)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Empty(t, l.Snapshot().Transactions)
}

func TestOverpayGuard_TwoStepConfirm(t *testing.T) {
	l := ledger.New(nil)
	debt := newDebt(t, l, "Card", "-100")

	// First attempt: guard holds the mutation, nothing is applied.
	txn, pending, err := l.AddTransaction(debt.AccountID, dec("150"), time.Now(), "payment", false, actor)
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Nil(t, txn)
	assert.True(t, debt.Balance.Equal(dec("-100")), "guarded mutation must not change the balance")
	assert.Empty(t, l.Snapshot().Transactions)
	assert.True(t, pending.ResultingBalance.Equal(dec("50")))
	assert.Equal(t, debt.AccountID, pending.AccountID)

	// Second attempt with confirm applies in full.
	txn, pending, err = l.AddTransaction(debt.AccountID, dec("150"), time.Now(), "payment", true, actor)
	require.NoError(t, err)
	require.Nil(t, pending)
	require.NotNil(t, txn)
	assert.True(t, debt.Balance.Equal(dec("50")))
}

func TestOverpayGuard_OnlyTriggersCrossingZero(t *testing.T) {
	l := ledger.New(nil)
	debt := newDebt(t, l, "Card", "-100")

	// Payment that lands exactly on zero is not an overpayment.
	_, pending, err := l.AddTransaction(debt.AccountID, dec("100"), time.Now(), "payoff", false, actor)
	require.NoError(t, err)
	assert.Nil(t, pending)
	assert.True(t, debt.Balance.IsZero())

	// From zero, a further payment crosses into positive and is guarded.
	_, pending, err = l.AddTransaction(debt.AccountID, dec("1"), time.Now(), "extra", false, actor)
	require.NoError(t, err)
	require.NotNil(t, pending)

	// Once forced positive, subsequent deposits are out of the guard's reach.
	_, _, err = l.AddTransaction(debt.AccountID, dec("1"), time.Now(), "extra", true, actor)
	require.NoError(t, err)
	_, pending, err = l.AddTransaction(debt.AccountID, dec("5"), time.Now(), "more", false, actor)
	require.NoError(t, err)
	assert.Nil(t, pending)
}

func TestTransfer_LegsAreSymmetric(t *testing.T) {
	l := ledger.New(nil)
	from := newAsset(t, l, "Checking", "500")
	to := newAsset(t, l, "Savings", "0")

	pair, pending, err := l.Transfer(from.AccountID, to.AccountID, dec("200"), time.Now(), "", false, actor)
	require.NoError(t, err)
	require.Nil(t, pending)

	assert.True(t, pair.Outgoing.Amount.Equal(dec("-200")))
	assert.True(t, pair.Incoming.Amount.Equal(dec("200")))
	assert.True(t, pair.Outgoing.Amount.Add(pair.Incoming.Amount).IsZero(), "legs must sum to zero")
	assert.Equal(t, pair.Outgoing.TransferGroupID, pair.Incoming.TransferGroupID)
	assert.NotEmpty(t, pair.Outgoing.TransferGroupID)
	assert.Equal(t, "Transfer to Savings", pair.Outgoing.Description)
	assert.Equal(t, "Transfer from Checking", pair.Incoming.Description)

	assert.True(t, from.Balance.Equal(dec("300")))
	assert.True(t, to.Balance.Equal(dec("200")))
}

func TestTransfer_Rejections(t *testing.T) {
	l := ledger.New(nil)
	a := newAsset(t, l, "A", "100")
	b := newAsset(t, l, "B", "100")

	_, _, err := l.Transfer(a.AccountID, a.AccountID, dec("10"), time.Now(), "", false, actor)
	assert.ErrorIs(t, err, ledger.ErrSameAccountTransfer)

	_, _, err = l.Transfer(a.AccountID, b.AccountID, dec("-10"), time.Now(), "", false, actor)
	assert.ErrorIs(t, err, ledger.ErrNonPositiveAmount)

	_, _, err = l.Transfer(a.AccountID, b.AccountID, decimal.Zero, time.Now(), "", false, actor)
	assert.ErrorIs(t, err, ledger.ErrNonPositiveAmount)
}

func TestTransfer_GuardsDestinationDebt(t *testing.T) {
	l := ledger.New(nil)
	from := newAsset(t, l, "Checking", "500")
	card := newDebt(t, l, "Card", "-100")

	_, pending, err := l.Transfer(from.AccountID, card.AccountID, dec("150"), time.Now(), "", false, actor)
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.True(t, from.Balance.Equal(dec("500")), "source untouched while pending")
	assert.True(t, card.Balance.Equal(dec("-100")))

	pair, pending, err := l.Transfer(from.AccountID, card.AccountID, dec("150"), time.Now(), "", true, actor)
	require.NoError(t, err)
	require.Nil(t, pending)
	require.NotNil(t, pair)
	assert.True(t, card.Balance.Equal(dec("50")))
}

func TestUpdateTransaction_TransferLegKeepsPartnerInSync(t *testing.T) {
	l := ledger.New(nil)
	from := newAsset(t, l, "Checking", "500")
	to := newAsset(t, l, "Savings", "0")

	pair, _, err := l.Transfer(from.AccountID, to.AccountID, dec("200"), time.Now(), "move", false, actor)
	require.NoError(t, err)

	// Edit the incoming leg down to 150.
	newAmount := dec("150")
	updated, pending, err := l.UpdateTransaction(pair.Incoming.TransactionID, ledger.TransactionUpdate{
		Amount: &newAmount,
	}, false, actor)
	require.NoError(t, err)
	require.Nil(t, pending)

	assert.True(t, updated.Amount.Equal(dec("150")))
	assert.True(t, from.Balance.Equal(dec("350")), "outgoing leg reapplied at the new amount")
	assert.True(t, to.Balance.Equal(dec("150")))

	// The partner leg mirrors the new amount exactly.
	for _, txn := range l.Snapshot().Transactions {
		if txn.TransactionID == pair.Outgoing.TransactionID {
			assert.True(t, txn.Amount.Equal(dec("-150")))
		}
	}
}

func TestUpdateTransaction_GuardsEditedAccount(t *testing.T) {
	l := ledger.New(nil)
	debt := newDebt(t, l, "Card", "-50")

	txn, pending, err := l.AddTransaction(debt.AccountID, dec("20"), time.Now(), "payment", false, actor)
	require.NoError(t, err)
	require.Nil(t, pending)
	require.True(t, debt.Balance.Equal(dec("-30")))

	// Raising the payment to 100 would push the balance to +50.
	newAmount := dec("100")
	updated, pending, err := l.UpdateTransaction(txn.TransactionID, ledger.TransactionUpdate{
		Amount: &newAmount,
	}, false, actor)
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Nil(t, updated)
	assert.Equal(t, debt.AccountID, pending.AccountID)
	assert.True(t, pending.Delta.Equal(dec("80")))
	assert.True(t, pending.ResultingBalance.Equal(dec("50")))
	assert.True(t, debt.Balance.Equal(dec("-30")), "guarded edit must not change the balance")
	assert.True(t, txn.Amount.Equal(dec("20")), "guarded edit must not change the transaction")

	updated, pending, err = l.UpdateTransaction(txn.TransactionID, ledger.TransactionUpdate{
		Amount: &newAmount,
	}, true, actor)
	require.NoError(t, err)
	require.Nil(t, pending)
	assert.True(t, updated.Amount.Equal(dec("100")))
	assert.True(t, debt.Balance.Equal(dec("50")))
}

func TestUpdateTransaction_GuardsTransferPartnerAccount(t *testing.T) {
	l := ledger.New(nil)
	from := newAsset(t, l, "Checking", "500")
	card := newDebt(t, l, "Card", "-30")

	pair, pending, err := l.Transfer(from.AccountID, card.AccountID, dec("20"), time.Now(), "", false, actor)
	require.NoError(t, err)
	require.Nil(t, pending)
	require.True(t, card.Balance.Equal(dec("-10")))

	// Editing the outgoing leg to -60 would force the incoming leg to +60
	// and push the debt from -10 to +30: the guard fires for the partner's
	// account, not the edited one.
	newAmount := dec("-60")
	updated, pending, err := l.UpdateTransaction(pair.Outgoing.TransactionID, ledger.TransactionUpdate{
		Amount: &newAmount,
	}, false, actor)
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Nil(t, updated)
	assert.Equal(t, card.AccountID, pending.AccountID)
	assert.Equal(t, "Card", pending.AccountName)
	assert.True(t, pending.Delta.Equal(dec("40")))
	assert.True(t, pending.ResultingBalance.Equal(dec("30")))

	// Nothing mutated while pending.
	assert.True(t, from.Balance.Equal(dec("480")))
	assert.True(t, card.Balance.Equal(dec("-10")))
	for _, txn := range l.Snapshot().Transactions {
		switch txn.TransactionID {
		case pair.Outgoing.TransactionID:
			assert.True(t, txn.Amount.Equal(dec("-20")))
		case pair.Incoming.TransactionID:
			assert.True(t, txn.Amount.Equal(dec("20")))
		}
	}

	// Confirming applies the edit to both legs and both balances.
	updated, pending, err = l.UpdateTransaction(pair.Outgoing.TransactionID, ledger.TransactionUpdate{
		Amount: &newAmount,
	}, true, actor)
	require.NoError(t, err)
	require.Nil(t, pending)
	assert.True(t, updated.Amount.Equal(dec("-60")))
	assert.True(t, from.Balance.Equal(dec("440")))
	assert.True(t, card.Balance.Equal(dec("30")))
	for _, txn := range l.Snapshot().Transactions {
		switch txn.TransactionID {
		case pair.Outgoing.TransactionID:
			assert.True(t, txn.Amount.Equal(dec("-60")))
		case pair.Incoming.TransactionID:
			assert.True(t, txn.Amount.Equal(dec("60")))
		}
	}
}

func TestDeleteTransaction_TransferLegTakesPartner(t *testing.T) {
	l := ledger.New(nil)
	from := newAsset(t, l, "Checking", "500")
	to := newAsset(t, l, "Savings", "0")

	pair, _, err := l.Transfer(from.AccountID, to.AccountID, dec("200"), time.Now(), "", false, actor)
	require.NoError(t, err)

	require.NoError(t, l.DeleteTransaction(pair.Outgoing.TransactionID))

	assert.Empty(t, l.Snapshot().Transactions, "both legs removed")
	assert.True(t, from.Balance.Equal(dec("500")))
	assert.True(t, to.Balance.Equal(dec("0")))
}

func TestTransferPartner_LegacyHeuristicPairing(t *testing.T) {
	// Legacy transfer legs carry no group id; pairing falls back to the
	// same-day, negated-amount, different-account heuristic.
	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	snap := domain.NewLedgerSnapshot()
	snap.Accounts = []domain.Account{
		{AccountID: "a", Name: "A", Category: domain.CategoryAsset, Balance: dec("100")},
		{AccountID: "b", Name: "B", Category: domain.CategoryAsset, Balance: dec("100")},
	}
	snap.Transactions = []domain.Transaction{
		{TransactionID: "t1", AccountID: "a", Amount: dec("-50"), Date: day, Description: "Transfer to B"},
		{TransactionID: "t2", AccountID: "b", Amount: dec("50"), Date: day, Description: "Transfer from A"},
	}
	l := ledger.New(snap)

	require.NoError(t, l.DeleteTransaction("t1"))
	assert.Empty(t, l.Snapshot().Transactions, "heuristically paired partner removed too")
}

func TestEditAccount_BalanceChangeSynthesizesAdjustment(t *testing.T) {
	l := ledger.New(nil)
	acc := newAsset(t, l, "Checking", "100")

	newBalance := dec("250")
	updated, adjustment, err := l.EditAccount(acc.AccountID, ledger.AccountUpdate{Balance: &newBalance}, actor)
	require.NoError(t, err)
	require.NotNil(t, adjustment)

	assert.True(t, updated.Balance.Equal(dec("250")))
	assert.True(t, adjustment.Amount.Equal(dec("150")))
	assert.Equal(t, "Balance adjustment (increase)", adjustment.Description)

	// The history still fully explains the balance.
	sum := dec("100")
	for _, txn := range l.Snapshot().Transactions {
		sum = sum.Add(txn.Amount)
	}
	assert.True(t, sum.Equal(updated.Balance))
}

func TestEditAccount_SameBalanceNoAdjustment(t *testing.T) {
	l := ledger.New(nil)
	acc := newAsset(t, l, "Checking", "100")

	same := dec("100")
	_, adjustment, err := l.EditAccount(acc.AccountID, ledger.AccountUpdate{Balance: &same}, actor)
	require.NoError(t, err)
	assert.Nil(t, adjustment)
	assert.Empty(t, l.Snapshot().Transactions)
}

func TestDeleteAccount_PurgesAndMovesCursor(t *testing.T) {
	l := ledger.New(nil)
	a := newAsset(t, l, "A", "100")
	b := newAsset(t, l, "B", "100")
	c := newAsset(t, l, "C", "100")

	_, _, err := l.AddTransaction(b.AccountID, dec("-10"), time.Now(), "spend", false, actor)
	require.NoError(t, err)
	_, err = l.AddBill(ledger.NewBillParams{
		Name: "Rent", Amount: dec("50"), DueDate: time.Now(), AccountID: b.AccountID, Frequency: domain.FrequencyMonthly,
	}, actor)
	require.NoError(t, err)

	// Move the cursor to B, then delete it.
	l.Snapshot().SelectedAccountID = b.AccountID
	require.NoError(t, l.DeleteAccount(b.AccountID))

	snap := l.Snapshot()
	assert.Len(t, snap.Accounts, 2)
	assert.Len(t, snap.DeletedAccounts, 1)
	assert.Empty(t, snap.Transactions, "deleted account's transactions purged")
	assert.Empty(t, snap.Bills, "deleted account's bills purged")
	assert.Equal(t, a.AccountID, snap.SelectedAccountID, "cursor moves to the left neighbor")
	_ = c
}

func TestDeleteAccount_RepeatDeleteDoesNotDuplicate(t *testing.T) {
	l := ledger.New(nil)
	a := newAsset(t, l, "A", "100")

	require.NoError(t, l.DeleteAccount(a.AccountID))
	require.NoError(t, l.RestoreAccount(a.AccountID))
	require.NoError(t, l.DeleteAccount(a.AccountID))

	assert.Len(t, l.Snapshot().DeletedAccounts, 1)
}

func TestRestoreAccount(t *testing.T) {
	l := ledger.New(nil)
	a := newAsset(t, l, "A", "100")

	require.NoError(t, l.DeleteAccount(a.AccountID))
	require.NoError(t, l.RestoreAccount(a.AccountID))

	snap := l.Snapshot()
	assert.Len(t, snap.Accounts, 1)
	assert.Empty(t, snap.DeletedAccounts)
	assert.True(t, snap.Accounts[0].Balance.Equal(dec("100")))

	err := l.RestoreAccount(a.AccountID)
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound, "already-restored account is no longer in the deleted set")
}

func TestReset_TransactionsRollsBackPlainOnly(t *testing.T) {
	l := ledger.New(nil)
	a := newAsset(t, l, "A", "100")
	b := newAsset(t, l, "B", "100")

	_, _, err := l.AddTransaction(a.AccountID, dec("-40"), time.Now(), "spend", false, actor)
	require.NoError(t, err)
	_, _, err = l.Transfer(a.AccountID, b.AccountID, dec("25"), time.Now(), "", false, actor)
	require.NoError(t, err)

	require.NoError(t, l.Reset(domain.ResetTransactions))

	snap := l.Snapshot()
	assert.Len(t, snap.Transactions, 2, "transfer legs survive")
	assert.True(t, a.Balance.Equal(dec("75")), "plain spend rolled back, transfer kept")
	assert.True(t, b.Balance.Equal(dec("125")))
}

func TestReset_TransfersRollsBackBothLegs(t *testing.T) {
	l := ledger.New(nil)
	a := newAsset(t, l, "A", "100")
	b := newAsset(t, l, "B", "100")

	_, _, err := l.AddTransaction(a.AccountID, dec("-40"), time.Now(), "spend", false, actor)
	require.NoError(t, err)
	_, _, err = l.Transfer(a.AccountID, b.AccountID, dec("25"), time.Now(), "", false, actor)
	require.NoError(t, err)

	require.NoError(t, l.Reset(domain.ResetTransfers))

	snap := l.Snapshot()
	assert.Len(t, snap.Transactions, 1)
	assert.True(t, a.Balance.Equal(dec("60")), "only the plain spend remains applied")
	assert.True(t, b.Balance.Equal(dec("100")))
}

func TestReset_FullKeepsPreferencesAndSettings(t *testing.T) {
	l := ledger.New(nil)
	newAsset(t, l, "A", "100")
	snap := l.Snapshot()
	snap.HideMoney = true
	snap.DebtPayoffSettings.Mode = domain.ModeAvalanche
	snap.DebtPayoffSettings.MonthlyAllocation = dec("300")

	require.NoError(t, l.Reset(domain.ResetFull))

	assert.Empty(t, snap.Accounts)
	assert.Empty(t, snap.DeletedAccounts)
	assert.Empty(t, snap.Transactions)
	assert.Empty(t, snap.Bills)
	assert.Empty(t, snap.NetWorthHistory)
	assert.Empty(t, snap.SelectedAccountID)
	assert.True(t, snap.HideMoney, "view preferences survive a full reset")
	assert.Equal(t, domain.ModeAvalanche, snap.DebtPayoffSettings.Mode)
	assert.True(t, snap.DebtPayoffSettings.MonthlyAllocation.Equal(dec("300")))
}

func TestReset_UnknownScope(t *testing.T) {
	l := ledger.New(nil)
	assert.ErrorIs(t, l.Reset(domain.ResetScope("EVERYTHING")), apperrors.ErrValidation)
}

func TestBills_PayOnceAndRecurring(t *testing.T) {
	l := ledger.New(nil)
	acc := newAsset(t, l, "Checking", "500")
	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	once, err := l.AddBill(ledger.NewBillParams{
		Name: "Deposit", Amount: dec("100"), DueDate: due, AccountID: acc.AccountID, Frequency: domain.FrequencyOnce,
	}, actor)
	require.NoError(t, err)
	monthly, err := l.AddBill(ledger.NewBillParams{
		Name: "Rent", Amount: dec("200"), DueDate: due, AccountID: acc.AccountID, Frequency: domain.FrequencyMonthly,
	}, actor)
	require.NoError(t, err)

	paidOnce, txn, err := l.MarkBillPaid(once.BillID, actor)
	require.NoError(t, err)
	assert.True(t, paidOnce.IsPaid)
	assert.True(t, txn.Amount.Equal(dec("-100")))
	assert.Equal(t, "Bill payment: Deposit", txn.Description)

	paidMonthly, _, err := l.MarkBillPaid(monthly.BillID, actor)
	require.NoError(t, err)
	assert.False(t, paidMonthly.IsPaid, "recurring bill rearms for the next cycle")
	assert.Equal(t, due.AddDate(0, 1, 0), paidMonthly.DueDate)

	assert.True(t, acc.Balance.Equal(dec("200")))
}

func TestBills_Validation(t *testing.T) {
	l := ledger.New(nil)
	acc := newAsset(t, l, "Checking", "500")

	_, err := l.AddBill(ledger.NewBillParams{
		Name: "Negative", Amount: dec("-5"), DueDate: time.Now(), AccountID: acc.AccountID, Frequency: domain.FrequencyOnce,
	}, actor)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = l.AddBill(ledger.NewBillParams{
		Name: "Orphan", Amount: dec("5"), DueDate: time.Now(), AccountID: "missing", Frequency: domain.FrequencyOnce,
	}, actor)
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestNormalize_LegacySnapshotGetsWellFormedCollections(t *testing.T) {
	l := ledger.New(&domain.LedgerSnapshot{})
	snap := l.Snapshot()

	assert.NotNil(t, snap.Accounts)
	assert.NotNil(t, snap.Transactions)
	assert.NotNil(t, snap.Bills)
	assert.NotNil(t, snap.NetWorthHistory)
	assert.Equal(t, domain.ModeSnowball, snap.DebtPayoffSettings.Mode)
}

func TestEditAccount_DebtAttributes(t *testing.T) {
	l := ledger.New(nil)
	debt := newDebt(t, l, "Card", "-1000")

	updated, _, err := l.EditAccount(debt.AccountID, ledger.AccountUpdate{
		AnnualPercentageRate: decPtr("0.1999"),
		MinimumPayment:       decPtr("35"),
		CreditLimit:          decPtr("5000"),
	}, actor)
	require.NoError(t, err)

	assert.True(t, updated.AnnualPercentageRate.Equal(dec("0.1999")))
	assert.True(t, updated.MinimumPayment.Equal(dec("35")))
	assert.True(t, updated.CreditLimit.Equal(dec("5000")))
}
