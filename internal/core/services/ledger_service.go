package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"log/slog"

	"github.com/sameoldmason/finance-web-sub000/internal/apperrors"
	"github.com/sameoldmason/finance-web-sub000/internal/core/domain"
	"github.com/sameoldmason/finance-web-sub000/internal/core/ledger"
	portsrepo "github.com/sameoldmason/finance-web-sub000/internal/core/ports/repositories"
	portssvc "github.com/sameoldmason/finance-web-sub000/internal/core/ports/services"
	"github.com/sameoldmason/finance-web-sub000/internal/dto"
	"github.com/sameoldmason/finance-web-sub000/internal/utils/accounting"
)

// localActor is the audit actor recorded for the anonymous (unpersisted)
// profile.
const localActor = "local"

// ledgerServiceImpl implements the LedgerSvcFacade interface. It keeps one
// in-memory snapshot per profile and writes the full snapshot through to the
// repository after every successful mutation. The in-memory copy stays
// authoritative when a save fails; the failure is logged and the next
// mutation retries the write.
//
// All snapshot access happens under s.mu, and everything handed back to
// callers is a detached copy, so results can be read after the lock is
// released without aliasing the cached state.
type ledgerServiceImpl struct {
	BaseService
	snapshotRepo portsrepo.SnapshotRepository

	mu    sync.Mutex
	cache map[string]*domain.LedgerSnapshot
	now   func() time.Time
}

// NewLedgerServiceImpl creates a new ledger service backed by the given
// snapshot repository.
func NewLedgerServiceImpl(snapshotRepo portsrepo.SnapshotRepository) portssvc.LedgerSvcFacade {
	return &ledgerServiceImpl{
		snapshotRepo: snapshotRepo,
		cache:        make(map[string]*domain.LedgerSnapshot),
		now:          time.Now,
	}
}

// Ensure ledgerServiceImpl implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerServiceImpl)(nil)

// snapshotFor returns the profile's snapshot, loading it from the repository
// on first access. Callers must hold s.mu. An empty profileID is the
// anonymous session: it lives in the cache only and is never persisted.
func (s *ledgerServiceImpl) snapshotFor(ctx context.Context, profileID string) (*domain.LedgerSnapshot, error) {
	if snap, ok := s.cache[profileID]; ok {
		return snap, nil
	}
	snap := domain.NewLedgerSnapshot()
	if profileID != "" {
		loaded, err := s.snapshotRepo.LoadSnapshot(ctx, profileID)
		if err != nil {
			return nil, fmt.Errorf("failed to load ledger snapshot: %w", err)
		}
		if loaded != nil {
			loaded.Normalize()
			snap = loaded
		}
	}
	s.cache[profileID] = snap
	return snap, nil
}

// persist writes the snapshot through to the repository. A failed save is
// logged, not surfaced: the in-memory snapshot remains authoritative and the
// next successful mutation carries the missed state with it.
func (s *ledgerServiceImpl) persist(ctx context.Context, profileID string, snap *domain.LedgerSnapshot) {
	if profileID == "" {
		return
	}
	if err := s.snapshotRepo.SaveSnapshot(ctx, profileID, snap); err != nil {
		s.LogError(ctx, err, "Failed to persist ledger snapshot, in-memory state remains authoritative",
			slog.String("profile_id", profileID))
	}
}

// withLedger runs fn against the profile's ledger under the service mutex.
// When fn reports a state change, the net-worth history is refreshed and the
// snapshot is written through.
func (s *ledgerServiceImpl) withLedger(ctx context.Context, profileID string, fn func(l *ledger.Ledger) (changed bool, err error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.snapshotFor(ctx, profileID)
	if err != nil {
		return err
	}
	changed, err := fn(ledger.New(snap))
	if err != nil {
		return translateLedgerErr(err)
	}
	if changed {
		s.refreshNetWorth(snap)
		s.persist(ctx, profileID, snap)
	}
	return nil
}

// refreshNetWorth recomputes the aggregate from the live accounts and
// upserts today's history entry, evicting the oldest entries beyond the
// retention cap. Returns true when the history actually changed.
func (s *ledgerServiceImpl) refreshNetWorth(snap *domain.LedgerSnapshot) bool {
	summary := accounting.Aggregate(snap.Accounts)
	today := s.now().UTC().Format("2006-01-02")
	entry := accounting.Snapshot(summary, today)

	for i := range snap.NetWorthHistory {
		if snap.NetWorthHistory[i].Date == today {
			if snap.NetWorthHistory[i] == entry {
				return false
			}
			snap.NetWorthHistory[i] = entry
			return true
		}
	}
	snap.NetWorthHistory = append(snap.NetWorthHistory, entry)
	if excess := len(snap.NetWorthHistory) - domain.MaxNetWorthHistory; excess > 0 {
		snap.NetWorthHistory = snap.NetWorthHistory[excess:]
	}
	return true
}

// translateLedgerErr maps engine sentinels onto the service error
// vocabulary so handlers only deal with apperrors.
func translateLedgerErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ledger.ErrAccountNotFound),
		errors.Is(err, ledger.ErrTransactionNotFound),
		errors.Is(err, ledger.ErrBillNotFound):
		return fmt.Errorf("%w: %v", apperrors.ErrNotFound, err)
	case errors.Is(err, ledger.ErrSameAccountTransfer),
		errors.Is(err, ledger.ErrNonPositiveAmount):
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	default:
		return err
	}
}

func actorFor(profileID string) string {
	if profileID == "" {
		return localActor
	}
	return profileID
}

func (s *ledgerServiceImpl) GetLedger(ctx context.Context, profileID string) (*domain.LedgerSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.snapshotFor(ctx, profileID)
	if err != nil {
		return nil, err
	}
	// Rendering the ledger stamps today's net-worth entry so the history
	// stays continuous even on read-only days.
	if s.refreshNetWorth(snap) {
		s.persist(ctx, profileID, snap)
	}
	// Clone under the lock: callers read the result after s.mu is released,
	// while concurrent requests for the same profile mutate the cached state.
	return snap.Clone(), nil
}

func (s *ledgerServiceImpl) CreateAccount(ctx context.Context, profileID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	var created *domain.Account
	err := s.withLedger(ctx, profileID, func(l *ledger.Ledger) (bool, error) {
		acc, err := l.AddAccount(ledger.NewAccountParams{
			Name:                 req.Name,
			Category:             req.Category,
			Balance:              req.Balance,
			CreditLimit:          req.CreditLimit,
			AnnualPercentageRate: req.AnnualPercentageRate,
			MinimumPayment:       req.MinimumPayment,
			StartingBalance:      req.StartingBalance,
		}, actorFor(profileID))
		if err != nil {
			return false, err
		}
		cp := acc.Clone()
		created = &cp
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Account created",
		slog.String("account_id", created.AccountID),
		slog.String("category", string(created.Category)))
	return created, nil
}

func (s *ledgerServiceImpl) UpdateAccount(ctx context.Context, profileID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	var updated *domain.Account
	err := s.withLedger(ctx, profileID, func(l *ledger.Ledger) (bool, error) {
		acc, adjustment, err := l.EditAccount(accountID, ledger.AccountUpdate{
			Name:                 req.Name,
			Category:             req.Category,
			Balance:              req.Balance,
			CreditLimit:          req.CreditLimit,
			AnnualPercentageRate: req.AnnualPercentageRate,
			MinimumPayment:       req.MinimumPayment,
			StartingBalance:      req.StartingBalance,
		}, actorFor(profileID))
		if err != nil {
			return false, err
		}
		if adjustment != nil {
			s.LogInfo(ctx, "Balance adjustment transaction synthesized",
				slog.String("account_id", accountID),
				slog.String("transaction_id", adjustment.TransactionID))
		}
		cp := acc.Clone()
		updated = &cp
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ledgerServiceImpl) DeleteAccount(ctx context.Context, profileID, accountID string) error {
	return s.withLedger(ctx, profileID, func(l *ledger.Ledger) (bool, error) {
		if err := l.DeleteAccount(accountID); err != nil {
			return false, err
		}
		return true, nil
	})
}

func (s *ledgerServiceImpl) RestoreAccount(ctx context.Context, profileID, accountID string) error {
	return s.withLedger(ctx, profileID, func(l *ledger.Ledger) (bool, error) {
		if err := l.RestoreAccount(accountID); err != nil {
			return false, err
		}
		return true, nil
	})
}

func (s *ledgerServiceImpl) CreateTransaction(ctx context.Context, profileID string, req dto.CreateTransactionRequest) (*domain.Transaction, *domain.PendingConfirmation, error) {
	var (
		created *domain.Transaction
		pending *domain.PendingConfirmation
	)
	date := req.Date
	if date.IsZero() {
		date = s.now().UTC()
	}
	err := s.withLedger(ctx, profileID, func(l *ledger.Ledger) (bool, error) {
		txn, p, err := l.AddTransaction(req.AccountID, req.Amount, date, req.Description, req.Confirm, actorFor(profileID))
		if err != nil {
			return false, err
		}
		if p != nil {
			pending = p
			return false, nil
		}
		cp := *txn
		created = &cp
		return true, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return created, pending, nil
}

func (s *ledgerServiceImpl) UpdateTransaction(ctx context.Context, profileID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, *domain.PendingConfirmation, error) {
	var (
		updated *domain.Transaction
		pending *domain.PendingConfirmation
	)
	err := s.withLedger(ctx, profileID, func(l *ledger.Ledger) (bool, error) {
		txn, p, err := l.UpdateTransaction(transactionID, ledger.TransactionUpdate{
			Amount:      req.Amount,
			Date:        req.Date,
			Description: req.Description,
		}, req.Confirm, actorFor(profileID))
		if err != nil {
			return false, err
		}
		if p != nil {
			pending = p
			return false, nil
		}
		cp := *txn
		updated = &cp
		return true, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return updated, pending, nil
}

func (s *ledgerServiceImpl) DeleteTransaction(ctx context.Context, profileID, transactionID string) error {
	return s.withLedger(ctx, profileID, func(l *ledger.Ledger) (bool, error) {
		if err := l.DeleteTransaction(transactionID); err != nil {
			return false, err
		}
		return true, nil
	})
}

func (s *ledgerServiceImpl) CreateTransfer(ctx context.Context, profileID string, req dto.TransferRequest) (*ledger.TransferPair, *domain.PendingConfirmation, error) {
	var (
		pair    *ledger.TransferPair
		pending *domain.PendingConfirmation
	)
	date := req.Date
	if date.IsZero() {
		date = s.now().UTC()
	}
	err := s.withLedger(ctx, profileID, func(l *ledger.Ledger) (bool, error) {
		p, pc, err := l.Transfer(req.FromAccountID, req.ToAccountID, req.Amount, date, req.Note, req.Confirm, actorFor(profileID))
		if err != nil {
			return false, err
		}
		if pc != nil {
			pending = pc
			return false, nil
		}
		pair = p
		return true, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return pair, pending, nil
}

func (s *ledgerServiceImpl) CreateBill(ctx context.Context, profileID string, req dto.CreateBillRequest) (*domain.Bill, error) {
	var created *domain.Bill
	err := s.withLedger(ctx, profileID, func(l *ledger.Ledger) (bool, error) {
		bill, err := l.AddBill(ledger.NewBillParams{
			Name:      req.Name,
			Amount:    req.Amount,
			DueDate:   req.DueDate,
			AccountID: req.AccountID,
			Frequency: req.Frequency,
		}, actorFor(profileID))
		if err != nil {
			return false, err
		}
		cp := *bill
		created = &cp
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *ledgerServiceImpl) UpdateBill(ctx context.Context, profileID, billID string, req dto.UpdateBillRequest) (*domain.Bill, error) {
	var updated *domain.Bill
	err := s.withLedger(ctx, profileID, func(l *ledger.Ledger) (bool, error) {
		bill, err := l.UpdateBill(billID, ledger.BillUpdate{
			Name:      req.Name,
			Amount:    req.Amount,
			DueDate:   req.DueDate,
			AccountID: req.AccountID,
			Frequency: req.Frequency,
		}, actorFor(profileID))
		if err != nil {
			return false, err
		}
		cp := *bill
		updated = &cp
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ledgerServiceImpl) DeleteBill(ctx context.Context, profileID, billID string) error {
	return s.withLedger(ctx, profileID, func(l *ledger.Ledger) (bool, error) {
		if err := l.DeleteBill(billID); err != nil {
			return false, err
		}
		return true, nil
	})
}

func (s *ledgerServiceImpl) PayBill(ctx context.Context, profileID, billID string) (*domain.Bill, *domain.Transaction, error) {
	var (
		bill *domain.Bill
		txn  *domain.Transaction
	)
	err := s.withLedger(ctx, profileID, func(l *ledger.Ledger) (bool, error) {
		b, t, err := l.MarkBillPaid(billID, actorFor(profileID))
		if err != nil {
			return false, err
		}
		bcp, tcp := *b, *t
		bill, txn = &bcp, &tcp
		return true, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return bill, txn, nil
}

func (s *ledgerServiceImpl) UpdatePreferences(ctx context.Context, profileID string, req dto.UpdatePreferencesRequest) (*domain.LedgerSnapshot, error) {
	var snap *domain.LedgerSnapshot
	err := s.withLedger(ctx, profileID, func(l *ledger.Ledger) (bool, error) {
		state := l.Snapshot()
		if req.NetWorthViewMode != nil {
			state.NetWorthViewMode = *req.NetWorthViewMode
		}
		if req.HideMoney != nil {
			state.HideMoney = *req.HideMoney
		}
		if req.SelectedAccountID != nil {
			// An empty selection clears the cursor; anything else must
			// name a live account.
			if *req.SelectedAccountID != "" {
				found := false
				for i := range state.Accounts {
					if state.Accounts[i].AccountID == *req.SelectedAccountID {
						found = true
						break
					}
				}
				if !found {
					return false, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, *req.SelectedAccountID)
				}
			}
			state.SelectedAccountID = *req.SelectedAccountID
		}
		snap = state.Clone()
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *ledgerServiceImpl) UpdatePayoffSettings(ctx context.Context, profileID string, req dto.UpdatePayoffSettingsRequest) (*domain.DebtPayoffSettings, error) {
	var settings *domain.DebtPayoffSettings
	err := s.withLedger(ctx, profileID, func(l *ledger.Ledger) (bool, error) {
		state := l.Snapshot()
		if req.Mode != nil {
			state.DebtPayoffSettings.Mode = *req.Mode
		}
		if req.MonthlyAllocation != nil {
			if req.MonthlyAllocation.IsNegative() {
				return false, fmt.Errorf("%w: monthly allocation cannot be negative", apperrors.ErrValidation)
			}
			state.DebtPayoffSettings.MonthlyAllocation = *req.MonthlyAllocation
		}
		if req.ShowInterest != nil {
			state.DebtPayoffSettings.ShowInterest = *req.ShowInterest
		}
		cp := state.DebtPayoffSettings
		settings = &cp
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *ledgerServiceImpl) Reset(ctx context.Context, profileID string, scope domain.ResetScope) error {
	err := s.withLedger(ctx, profileID, func(l *ledger.Ledger) (bool, error) {
		if err := l.Reset(scope); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return err
	}
	s.LogInfo(ctx, "Ledger reset", slog.String("scope", string(scope)))
	return nil
}

func (s *ledgerServiceImpl) NetWorth(ctx context.Context, profileID string) (*domain.NetWorthSummary, []domain.NetWorthSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.snapshotFor(ctx, profileID)
	if err != nil {
		return nil, nil, err
	}
	summary := accounting.Aggregate(snap.Accounts)
	if s.refreshNetWorth(snap) {
		s.persist(ctx, profileID, snap)
	}
	history := make([]domain.NetWorthSnapshot, len(snap.NetWorthHistory))
	copy(history, snap.NetWorthHistory)
	return &summary, history, nil
}
