package services

import (
	"context"

	"github.com/sameoldmason/finance-web-sub000/internal/core/domain"
	"github.com/sameoldmason/finance-web-sub000/internal/core/ledger"
	"github.com/sameoldmason/finance-web-sub000/internal/dto"
)

// LedgerSvcFacade is the service boundary over the ledger engine. Every
// mutation is write-through: the updated snapshot is persisted after each
// successful operation, and a persistence failure keeps the in-memory state
// authoritative for the rest of the session.
//
// Operations guarded against debt overpayment return a non-nil
// *domain.PendingConfirmation instead of applying; repeating the request
// with the confirm flag forces them through.
type LedgerSvcFacade interface {
	GetLedger(ctx context.Context, profileID string) (*domain.LedgerSnapshot, error)

	CreateAccount(ctx context.Context, profileID string, req dto.CreateAccountRequest) (*domain.Account, error)
	UpdateAccount(ctx context.Context, profileID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, profileID, accountID string) error
	RestoreAccount(ctx context.Context, profileID, accountID string) error

	CreateTransaction(ctx context.Context, profileID string, req dto.CreateTransactionRequest) (*domain.Transaction, *domain.PendingConfirmation, error)
	UpdateTransaction(ctx context.Context, profileID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, *domain.PendingConfirmation, error)
	DeleteTransaction(ctx context.Context, profileID, transactionID string) error
	CreateTransfer(ctx context.Context, profileID string, req dto.TransferRequest) (*ledger.TransferPair, *domain.PendingConfirmation, error)

	CreateBill(ctx context.Context, profileID string, req dto.CreateBillRequest) (*domain.Bill, error)
	UpdateBill(ctx context.Context, profileID, billID string, req dto.UpdateBillRequest) (*domain.Bill, error)
	DeleteBill(ctx context.Context, profileID, billID string) error
	PayBill(ctx context.Context, profileID, billID string) (*domain.Bill, *domain.Transaction, error)

	UpdatePreferences(ctx context.Context, profileID string, req dto.UpdatePreferencesRequest) (*domain.LedgerSnapshot, error)
	UpdatePayoffSettings(ctx context.Context, profileID string, req dto.UpdatePayoffSettingsRequest) (*domain.DebtPayoffSettings, error)
	Reset(ctx context.Context, profileID string, scope domain.ResetScope) error

	NetWorth(ctx context.Context, profileID string) (*domain.NetWorthSummary, []domain.NetWorthSnapshot, error)
}
