package dto

import (
	"github.com/sameoldmason/finance-web-sub000/internal/core/domain"
)

// LedgerResponse is the full snapshot rendered for the client.
type LedgerResponse struct {
	Accounts           []AccountResponse         `json:"accounts"`
	DeletedAccounts    []AccountResponse         `json:"deletedAccounts"`
	Transactions       []TransactionResponse     `json:"transactions"`
	Bills              []BillResponse            `json:"bills"`
	NetWorthHistory    []domain.NetWorthSnapshot `json:"netWorthHistory"`
	NetWorthViewMode   domain.NetWorthViewMode   `json:"netWorthViewMode,omitempty"`
	HideMoney          bool                      `json:"hideMoney"`
	SelectedAccountID  string                    `json:"selectedAccountID,omitempty"`
	DebtPayoffSettings domain.DebtPayoffSettings `json:"debtPayoffSettings"`
}

// UpdatePreferencesRequest carries the client view preferences persisted
// with the snapshot.
type UpdatePreferencesRequest struct {
	NetWorthViewMode  *domain.NetWorthViewMode `json:"netWorthViewMode" binding:"omitempty,oneof=MINIMAL DETAILED"`
	HideMoney         *bool                    `json:"hideMoney"`
	SelectedAccountID *string                  `json:"selectedAccountID"`
}

// ResetRequest selects the reset scope.
type ResetRequest struct {
	Scope domain.ResetScope `json:"scope" binding:"required,oneof=TRANSACTIONS TRANSFERS TRANSACTIONS_AND_TRANSFERS FULL"`
}

// ToLedgerResponse converts a snapshot.
func ToLedgerResponse(s *domain.LedgerSnapshot) LedgerResponse {
	return LedgerResponse{
		Accounts:           ToListAccountResponse(s.Accounts),
		DeletedAccounts:    ToListAccountResponse(s.DeletedAccounts),
		Transactions:       ToTransactionResponses(s.Transactions),
		Bills:              ToBillResponses(s.Bills),
		NetWorthHistory:    s.NetWorthHistory,
		NetWorthViewMode:   s.NetWorthViewMode,
		HideMoney:          s.HideMoney,
		SelectedAccountID:  s.SelectedAccountID,
		DebtPayoffSettings: s.DebtPayoffSettings,
	}
}
