package domain

// ResetScope selects which collections a ledger reset clears.
type ResetScope string

const (
	// ResetTransactions removes plain transactions and rolls their deltas
	// back onto the affected accounts.
	ResetTransactions ResetScope = "TRANSACTIONS"
	// ResetTransfers removes transfer pairs and rolls both legs back.
	ResetTransfers ResetScope = "TRANSFERS"
	// ResetTransactionsAndTransfers removes the full transaction list with
	// rollback; accounts survive with corrected balances.
	ResetTransactionsAndTransfers ResetScope = "TRANSACTIONS_AND_TRANSFERS"
	// ResetFull wipes accounts, transactions, bills and history outright.
	// There is nothing left to roll back onto.
	ResetFull ResetScope = "FULL"
)

// MaxNetWorthHistory caps the retained net-worth history; the oldest entries
// are evicted first.
const MaxNetWorthHistory = 365

// LedgerSnapshot is the persisted unit: the complete ledger state for one
// profile. It is owned exclusively by the ledger engine; the persistence
// layer serializes it opaquely.
type LedgerSnapshot struct {
	Accounts          []Account          `json:"accounts"`
	DeletedAccounts   []Account          `json:"deletedAccounts"`
	Transactions      []Transaction      `json:"transactions"`
	Bills             []Bill             `json:"bills"`
	NetWorthHistory   []NetWorthSnapshot `json:"netWorthHistory"`
	NetWorthViewMode  NetWorthViewMode   `json:"netWorthViewMode,omitempty"`
	HideMoney         bool               `json:"hideMoney"`
	SelectedAccountID string             `json:"selectedAccountID,omitempty"`
	DebtPayoffSettings DebtPayoffSettings `json:"debtPayoffSettings"`
}

// Normalize defaults absent collections to empty slices so a round-tripped
// snapshot always yields well-formed collections.
func (s *LedgerSnapshot) Normalize() {
	if s.Accounts == nil {
		s.Accounts = []Account{}
	}
	if s.DeletedAccounts == nil {
		s.DeletedAccounts = []Account{}
	}
	if s.Transactions == nil {
		s.Transactions = []Transaction{}
	}
	if s.Bills == nil {
		s.Bills = []Bill{}
	}
	if s.NetWorthHistory == nil {
		s.NetWorthHistory = []NetWorthSnapshot{}
	}
	if s.DebtPayoffSettings.Mode == "" {
		s.DebtPayoffSettings.Mode = ModeSnowball
	}
}

// NewLedgerSnapshot returns an empty, normalized snapshot.
func NewLedgerSnapshot() *LedgerSnapshot {
	s := &LedgerSnapshot{}
	s.Normalize()
	return s
}

// Clone returns a deep copy that shares no mutable state with the original.
// The service layer hands clones across its lock boundary so readers never
// alias the cached snapshot.
func (s *LedgerSnapshot) Clone() *LedgerSnapshot {
	cp := *s
	cp.Accounts = cloneAccounts(s.Accounts)
	cp.DeletedAccounts = cloneAccounts(s.DeletedAccounts)
	cp.Transactions = make([]Transaction, len(s.Transactions))
	copy(cp.Transactions, s.Transactions)
	cp.Bills = make([]Bill, len(s.Bills))
	copy(cp.Bills, s.Bills)
	cp.NetWorthHistory = make([]NetWorthSnapshot, len(s.NetWorthHistory))
	copy(cp.NetWorthHistory, s.NetWorthHistory)
	return &cp
}

func cloneAccounts(accounts []Account) []Account {
	cp := make([]Account, len(accounts))
	for i := range accounts {
		cp[i] = accounts[i].Clone()
	}
	return cp
}
