package services_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sameoldmason/finance-web-sub000/internal/apperrors"
	"github.com/sameoldmason/finance-web-sub000/internal/core/domain"
	portssvc "github.com/sameoldmason/finance-web-sub000/internal/core/ports/services"
	"github.com/sameoldmason/finance-web-sub000/internal/core/services"
	"github.com/sameoldmason/finance-web-sub000/internal/dto"
)

// MockSnapshotRepository is a mock type for the SnapshotRepository interface
type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) LoadSnapshot(ctx context.Context, profileID string) (*domain.LedgerSnapshot, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerSnapshot), args.Error(1)
}

func (m *MockSnapshotRepository) SaveSnapshot(ctx context.Context, profileID string, snap *domain.LedgerSnapshot) error {
	args := m.Called(ctx, profileID, snap)
	return args.Error(0)
}

func (m *MockSnapshotRepository) DeleteSnapshot(ctx context.Context, profileID string) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSnapshotRepository
	service  portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSnapshotRepository)
	suite.service = services.NewLedgerServiceImpl(suite.mockRepo)
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

const profileID = "profile-1"

func (suite *LedgerServiceTestSuite) assetRequest(name, balance string) dto.CreateAccountRequest {
	return dto.CreateAccountRequest{
		Name:     name,
		Category: domain.CategoryAsset,
		Balance:  d(balance),
	}
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestCreateAccount_LoadsOnceAndWritesThrough() {
	ctx := context.Background()
	suite.mockRepo.On("LoadSnapshot", ctx, profileID).Return(nil, nil).Once()
	suite.mockRepo.On("SaveSnapshot", ctx, profileID, mock.AnythingOfType("*domain.LedgerSnapshot")).Return(nil).Twice()

	first, err := suite.service.CreateAccount(ctx, profileID, suite.assetRequest("Checking", "100"))
	suite.Require().NoError(err)
	suite.NotEmpty(first.AccountID)

	// Second mutation reuses the cached snapshot: no second load.
	_, err = suite.service.CreateAccount(ctx, profileID, suite.assetRequest("Savings", "50"))
	suite.Require().NoError(err)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateAccount_AnonymousProfileIsEphemeral() {
	ctx := context.Background()

	acc, err := suite.service.CreateAccount(ctx, "", suite.assetRequest("Scratch", "10"))
	suite.Require().NoError(err)
	suite.NotNil(acc)

	// No load, no save for the anonymous session.
	suite.mockRepo.AssertNotCalled(suite.T(), "LoadSnapshot", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSnapshot", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateAccount_SaveFailureKeptInMemory() {
	ctx := context.Background()
	suite.mockRepo.On("LoadSnapshot", ctx, profileID).Return(nil, nil).Once()
	suite.mockRepo.On("SaveSnapshot", ctx, profileID, mock.Anything).Return(fmt.Errorf("connection refused"))

	acc, err := suite.service.CreateAccount(ctx, profileID, suite.assetRequest("Checking", "100"))
	suite.Require().NoError(err, "a failed save must not fail the mutation")
	suite.NotNil(acc)

	// The in-memory state remains authoritative and serves reads.
	snap, err := suite.service.GetLedger(ctx, profileID)
	suite.Require().NoError(err)
	suite.Len(snap.Accounts, 1)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_PendingConfirmationSkipsPersistence() {
	ctx := context.Background()
	suite.mockRepo.On("LoadSnapshot", ctx, profileID).Return(nil, nil).Once()
	// Exactly one save: the account creation. The guarded transaction must
	// not write anything.
	suite.mockRepo.On("SaveSnapshot", ctx, profileID, mock.Anything).Return(nil).Once()

	debt, err := suite.service.CreateAccount(ctx, profileID, dto.CreateAccountRequest{
		Name:     "Card",
		Category: domain.CategoryDebt,
		Balance:  d("-100"),
	})
	suite.Require().NoError(err)

	txn, pending, err := suite.service.CreateTransaction(ctx, profileID, dto.CreateTransactionRequest{
		AccountID: debt.AccountID,
		Amount:    d("150"),
	})
	suite.Require().NoError(err)
	suite.Nil(txn)
	suite.Require().NotNil(pending)
	suite.True(pending.ResultingBalance.Equal(d("50")))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_ConfirmedOverpaymentPersists() {
	ctx := context.Background()
	suite.mockRepo.On("LoadSnapshot", ctx, profileID).Return(nil, nil).Once()
	suite.mockRepo.On("SaveSnapshot", ctx, profileID, mock.Anything).Return(nil).Twice()

	debt, err := suite.service.CreateAccount(ctx, profileID, dto.CreateAccountRequest{
		Name:     "Card",
		Category: domain.CategoryDebt,
		Balance:  d("-100"),
	})
	suite.Require().NoError(err)

	txn, pending, err := suite.service.CreateTransaction(ctx, profileID, dto.CreateTransactionRequest{
		AccountID: debt.AccountID,
		Amount:    d("150"),
		Confirm:   true,
	})
	suite.Require().NoError(err)
	suite.Nil(pending)
	suite.Require().NotNil(txn)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetLedger_LoadsPersistedSnapshot() {
	ctx := context.Background()
	stored := domain.NewLedgerSnapshot()
	stored.Accounts = []domain.Account{
		{AccountID: "a1", Name: "Checking", Category: domain.CategoryAsset, Balance: d("250")},
	}
	suite.mockRepo.On("LoadSnapshot", ctx, profileID).Return(stored, nil).Once()
	suite.mockRepo.On("SaveSnapshot", ctx, profileID, mock.Anything).Return(nil)

	snap, err := suite.service.GetLedger(ctx, profileID)
	suite.Require().NoError(err)
	suite.Len(snap.Accounts, 1)
	suite.Equal("a1", snap.Accounts[0].AccountID)

	// Rendering stamped today's net-worth entry.
	suite.Require().Len(snap.NetWorthHistory, 1)
	suite.Equal(time.Now().UTC().Format("2006-01-02"), snap.NetWorthHistory[0].Date)
	suite.True(snap.NetWorthHistory[0].Value.Equal(d("250")))
}

func (suite *LedgerServiceTestSuite) TestGetLedger_SameDayRenderDoesNotRewrite() {
	ctx := context.Background()
	suite.mockRepo.On("LoadSnapshot", ctx, profileID).Return(nil, nil).Once()
	// One save for the mutation; the two subsequent renders find today's
	// entry unchanged and skip the write.
	suite.mockRepo.On("SaveSnapshot", ctx, profileID, mock.Anything).Return(nil).Once()

	_, err := suite.service.CreateAccount(ctx, profileID, suite.assetRequest("Checking", "100"))
	suite.Require().NoError(err)

	_, err = suite.service.GetLedger(ctx, profileID)
	suite.Require().NoError(err)
	_, err = suite.service.GetLedger(ctx, profileID)
	suite.Require().NoError(err)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestNetWorth_SummaryAndDayKeyedHistory() {
	ctx := context.Background()
	suite.mockRepo.On("LoadSnapshot", ctx, profileID).Return(nil, nil).Once()
	suite.mockRepo.On("SaveSnapshot", ctx, profileID, mock.Anything).Return(nil)

	_, err := suite.service.CreateAccount(ctx, profileID, suite.assetRequest("Checking", "100"))
	suite.Require().NoError(err)
	_, err = suite.service.CreateAccount(ctx, profileID, dto.CreateAccountRequest{
		Name:     "Card",
		Category: domain.CategoryDebt,
		Balance:  d("-40"),
	})
	suite.Require().NoError(err)

	summary, history, err := suite.service.NetWorth(ctx, profileID)
	suite.Require().NoError(err)
	suite.True(summary.TotalAssets.Equal(d("100")))
	suite.True(summary.TotalDebts.Equal(d("40")))
	suite.True(summary.NetWorth.Equal(d("60")))

	// Both mutations and the read landed on the same calendar day: one entry.
	suite.Require().Len(history, 1)
	suite.True(history[0].Value.Equal(d("60")))
}

func (suite *LedgerServiceTestSuite) TestUpdatePayoffSettings() {
	ctx := context.Background()
	suite.mockRepo.On("LoadSnapshot", ctx, profileID).Return(nil, nil).Once()
	suite.mockRepo.On("SaveSnapshot", ctx, profileID, mock.Anything).Return(nil)

	mode := domain.ModeAvalanche
	allocation := d("250")
	settings, err := suite.service.UpdatePayoffSettings(ctx, profileID, dto.UpdatePayoffSettingsRequest{
		Mode:              &mode,
		MonthlyAllocation: &allocation,
	})
	suite.Require().NoError(err)
	suite.Equal(domain.ModeAvalanche, settings.Mode)
	suite.True(settings.MonthlyAllocation.Equal(d("250")))

	negative := d("-1")
	_, err = suite.service.UpdatePayoffSettings(ctx, profileID, dto.UpdatePayoffSettingsRequest{
		MonthlyAllocation: &negative,
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestUpdatePreferences_UnknownSelectedAccount() {
	ctx := context.Background()
	suite.mockRepo.On("LoadSnapshot", ctx, profileID).Return(nil, nil).Once()

	selected := "nope"
	_, err := suite.service.UpdatePreferences(ctx, profileID, dto.UpdatePreferencesRequest{
		SelectedAccountID: &selected,
	})
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSnapshot", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_NotFoundTranslated() {
	ctx := context.Background()
	suite.mockRepo.On("LoadSnapshot", ctx, profileID).Return(nil, nil).Once()

	err := suite.service.DeleteTransaction(ctx, profileID, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestGetLedger_ReturnsDetachedSnapshot() {
	ctx := context.Background()
	suite.mockRepo.On("LoadSnapshot", ctx, profileID).Return(nil, nil).Once()
	suite.mockRepo.On("SaveSnapshot", ctx, profileID, mock.Anything).Return(nil)

	created, err := suite.service.CreateAccount(ctx, profileID, suite.assetRequest("Checking", "100"))
	suite.Require().NoError(err)

	snap, err := suite.service.GetLedger(ctx, profileID)
	suite.Require().NoError(err)
	suite.Require().Len(snap.Accounts, 1)

	// Writing into the returned snapshot and the returned account must not
	// leak back into the cached state.
	snap.Accounts[0].Balance = d("999")
	snap.Accounts = append(snap.Accounts, domain.Account{AccountID: "ghost"})
	snap.SelectedAccountID = "ghost"
	created.Balance = d("-1")

	fresh, err := suite.service.GetLedger(ctx, profileID)
	suite.Require().NoError(err)
	suite.Require().Len(fresh.Accounts, 1)
	suite.True(fresh.Accounts[0].Balance.Equal(d("100")))
	suite.Equal(created.AccountID, fresh.SelectedAccountID)
}

func (suite *LedgerServiceTestSuite) TestConcurrentMutationsAndReads() {
	ctx := context.Background()
	suite.mockRepo.On("LoadSnapshot", ctx, profileID).Return(nil, nil).Once()
	suite.mockRepo.On("SaveSnapshot", ctx, profileID, mock.Anything).Return(nil)

	const writes = 25
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < writes; i++ {
			_, err := suite.service.CreateAccount(ctx, profileID, suite.assetRequest(fmt.Sprintf("Account %d", i), "10"))
			suite.NoError(err)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < writes; i++ {
			snap, err := suite.service.GetLedger(ctx, profileID)
			suite.NoError(err)
			// Serializing the returned snapshot walks every field, the same
			// way the HTTP layer renders it after the service lock is gone.
			_, err = json.Marshal(snap)
			suite.NoError(err)
		}
	}()
	wg.Wait()

	snap, err := suite.service.GetLedger(ctx, profileID)
	suite.Require().NoError(err)
	suite.Len(snap.Accounts, writes)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
