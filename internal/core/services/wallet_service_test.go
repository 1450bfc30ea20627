package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/walletforge/wallet_tracker_backend/internal/apperrors"
	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
	portssvc "github.com/walletforge/wallet_tracker_backend/internal/core/ports/services"
	"github.com/walletforge/wallet_tracker_backend/internal/core/services"
	"github.com/walletforge/wallet_tracker_backend/internal/dto"
)

type WalletServiceTestSuite struct {
	suite.Suite
	mockWalletRepo *MockWalletRepository
	mockTxnRepo    *MockTransactionRepository
	service        portssvc.WalletSvcFacade
	ctx            context.Context
}

func (s *WalletServiceTestSuite) SetupTest() {
	s.mockWalletRepo = new(MockWalletRepository)
	s.mockTxnRepo = new(MockTransactionRepository)
	s.service = services.NewWalletService(
		s.mockWalletRepo,
		services.WithTransactionReader(s.mockTxnRepo),
	)
	s.ctx = context.Background()
}

func (s *WalletServiceTestSuite) TestCreateWallet_Success() {
	req := dto.CreateWalletRequest{
		Name:           "Checking",
		WalletType:     "PHYSICAL",
		CurrencyCode:   "USD",
		InitialBalance: decimal.NewFromInt(100),
	}

	s.mockWalletRepo.On("SaveWallet", s.ctx, mock.AnythingOfType("domain.Wallet")).Return(nil).Once()

	wallet, err := s.service.CreateWallet(s.ctx, "user-1", req)

	s.Require().NoError(err)
	s.Equal("user-1", wallet.UserID)
	s.Equal(domain.Physical, wallet.WalletType)
	s.True(wallet.Balance.Equal(decimal.NewFromInt(100)))
	s.True(wallet.InitialBalance.Equal(decimal.NewFromInt(100)))
	s.NotEmpty(wallet.WalletID)
	s.mockWalletRepo.AssertExpectations(s.T())
}

func (s *WalletServiceTestSuite) TestCreateWallet_UnknownCurrency() {
	req := dto.CreateWalletRequest{
		Name:         "Checking",
		WalletType:   "PHYSICAL",
		CurrencyCode: "ZZZ",
	}

	_, err := s.service.CreateWallet(s.ctx, "user-1", req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockWalletRepo.AssertNotCalled(s.T(), "SaveWallet", mock.Anything, mock.Anything)
}

func (s *WalletServiceTestSuite) TestGetWalletByID_ForbiddenForOtherUser() {
	stored := &domain.Wallet{WalletID: "w-1", UserID: "owner"}
	s.mockWalletRepo.On("FindWalletByID", s.ctx, "w-1").Return(stored, nil).Once()

	_, err := s.service.GetWalletByID(s.ctx, "intruder", "w-1")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *WalletServiceTestSuite) TestUpdateWallet_RenamesOnly() {
	stored := &domain.Wallet{
		WalletID:     "w-1",
		UserID:       "user-1",
		Name:         "Old name",
		CurrencyCode: "USD",
	}
	s.mockWalletRepo.On("FindWalletByID", s.ctx, "w-1").Return(stored, nil).Once()
	s.mockWalletRepo.On("UpdateWallet", s.ctx, mock.MatchedBy(func(w domain.Wallet) bool {
		return w.Name == "New name" && w.CurrencyCode == "USD"
	})).Return(nil).Once()

	wallet, err := s.service.UpdateWallet(s.ctx, "user-1", "w-1", dto.UpdateWalletRequest{Name: "New name"})

	s.Require().NoError(err)
	s.Equal("New name", wallet.Name)
	s.mockWalletRepo.AssertExpectations(s.T())
}

func (s *WalletServiceTestSuite) TestCalculateWalletBalance_UsesFullHistory() {
	stored := &domain.Wallet{WalletID: "w-1", UserID: "user-1", CurrencyCode: "USD"}
	txns := []domain.Transaction{
		{TransactionID: "t1", Type: domain.Income, Amount: decimal.NewFromInt(1000), AffectedWalletIDs: []string{"w-1", "w-goal"}},
		{TransactionID: "t2", Type: domain.Expense, Amount: decimal.NewFromInt(300), WalletID: "w-1"},
		{TransactionID: "t3", Type: domain.Transfer, Amount: decimal.NewFromInt(200), SourceWalletID: "w-1", DestinationWalletID: "w-2"},
	}

	s.mockWalletRepo.On("FindWalletByID", s.ctx, "w-1").Return(stored, nil).Once()
	s.mockTxnRepo.On("ListAllTransactionsByUser", s.ctx, "user-1").Return(txns, nil).Once()

	balance, err := s.service.CalculateWalletBalance(s.ctx, "user-1", "w-1")

	s.Require().NoError(err)
	s.True(balance.Income.Equal(decimal.NewFromInt(1000)))
	s.True(balance.Expense.Equal(decimal.NewFromInt(500)))
	s.True(balance.Net.Equal(decimal.NewFromInt(500)))
}

func (s *WalletServiceTestSuite) TestDeleteWallet_NotFound() {
	s.mockWalletRepo.On("FindWalletByID", s.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	err := s.service.DeleteWallet(s.ctx, "user-1", "missing")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockWalletRepo.AssertNotCalled(s.T(), "DeleteWallet", mock.Anything, mock.Anything)
}

func TestWalletServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}
