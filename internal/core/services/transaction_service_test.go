package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/walletforge/wallet_tracker_backend/internal/apperrors"
	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
	portsrepo "github.com/walletforge/wallet_tracker_backend/internal/core/ports/repositories"
	portssvc "github.com/walletforge/wallet_tracker_backend/internal/core/ports/services"
	"github.com/walletforge/wallet_tracker_backend/internal/core/services"
	"github.com/walletforge/wallet_tracker_backend/internal/dto"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo    *MockTransactionRepository
	mockWalletRepo *MockWalletRepository
	service        portssvc.TransactionSvcFacade
	ctx            context.Context
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.mockTxnRepo = new(MockTransactionRepository)
	s.mockWalletRepo = new(MockWalletRepository)
	s.service = services.NewTransactionService(s.mockTxnRepo, s.mockWalletRepo)
	s.ctx = context.Background()
}

func (s *TransactionServiceTestSuite) physicalWallet(id string) *domain.Wallet {
	return &domain.Wallet{WalletID: id, UserID: "user-1", WalletType: domain.Physical}
}

func (s *TransactionServiceTestSuite) logicalWallet(id string) *domain.Wallet {
	return &domain.Wallet{WalletID: id, UserID: "user-1", WalletType: domain.Logical}
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_IncomeWithAffectedPair() {
	s.mockWalletRepo.On("FindWalletByID", s.ctx, "w-phys").Return(s.physicalWallet("w-phys"), nil).Once()
	s.mockWalletRepo.On("FindWalletByID", s.ctx, "w-log").Return(s.logicalWallet("w-log"), nil).Once()

	var captured portsrepo.BalanceChanges
	s.mockTxnRepo.On("SaveTransaction", s.ctx, mock.AnythingOfType("domain.Transaction"), mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(portsrepo.BalanceChanges)
		}).Return(nil).Once()

	req := dto.CreateTransactionRequest{
		Type:              "INCOME",
		Amount:            decimal.NewFromInt(1000),
		AffectedWalletIDs: []string{"w-phys", "w-log"},
		TransactionDate:   time.Now(),
	}
	txn, err := s.service.CreateTransaction(s.ctx, "user-1", req)

	s.Require().NoError(err)
	s.Equal(domain.Income, txn.Type)
	// Both views receive the full amount.
	s.Require().Len(captured, 2)
	s.True(captured["w-phys"].Equal(decimal.NewFromInt(1000)))
	s.True(captured["w-log"].Equal(decimal.NewFromInt(1000)))
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_RejectsPairOfSameType() {
	s.mockWalletRepo.On("FindWalletByID", s.ctx, "w-a").Return(s.physicalWallet("w-a"), nil).Once()
	s.mockWalletRepo.On("FindWalletByID", s.ctx, "w-b").Return(s.physicalWallet("w-b"), nil).Once()

	req := dto.CreateTransactionRequest{
		Type:              "EXPENSE",
		Amount:            decimal.NewFromInt(50),
		AffectedWalletIDs: []string{"w-a", "w-b"},
		TransactionDate:   time.Now(),
	}
	_, err := s.service.CreateTransaction(s.ctx, "user-1", req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.ErrorIs(err, services.ErrAffectedPairRequired)
	s.mockTxnRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_LegacyWalletReference() {
	s.mockWalletRepo.On("FindWalletByID", s.ctx, "w-1").Return(s.physicalWallet("w-1"), nil).Once()

	var captured portsrepo.BalanceChanges
	s.mockTxnRepo.On("SaveTransaction", s.ctx, mock.AnythingOfType("domain.Transaction"), mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(portsrepo.BalanceChanges)
		}).Return(nil).Once()

	req := dto.CreateTransactionRequest{
		Type:            "EXPENSE",
		Amount:          decimal.NewFromInt(200),
		WalletID:        "w-1",
		TransactionDate: time.Now(),
	}
	_, err := s.service.CreateTransaction(s.ctx, "user-1", req)

	s.Require().NoError(err)
	s.Require().Len(captured, 1)
	s.True(captured["w-1"].Equal(decimal.NewFromInt(-200)))
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_TransferBalanceChanges() {
	s.mockWalletRepo.On("FindWalletByID", s.ctx, "w-src").Return(s.physicalWallet("w-src"), nil).Once()
	s.mockWalletRepo.On("FindWalletByID", s.ctx, "w-dst").Return(s.physicalWallet("w-dst"), nil).Once()

	var captured portsrepo.BalanceChanges
	s.mockTxnRepo.On("SaveTransaction", s.ctx, mock.AnythingOfType("domain.Transaction"), mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(portsrepo.BalanceChanges)
		}).Return(nil).Once()

	req := dto.CreateTransactionRequest{
		Type:                "TRANSFER",
		Amount:              decimal.NewFromInt(750),
		SourceWalletID:      "w-src",
		DestinationWalletID: "w-dst",
		TransactionDate:     time.Now(),
	}
	_, err := s.service.CreateTransaction(s.ctx, "user-1", req)

	s.Require().NoError(err)
	s.True(captured["w-src"].Equal(decimal.NewFromInt(-750)))
	s.True(captured["w-dst"].Equal(decimal.NewFromInt(750)))
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_TransferToItself() {
	req := dto.CreateTransactionRequest{
		Type:                "TRANSFER",
		Amount:              decimal.NewFromInt(10),
		SourceWalletID:      "w-1",
		DestinationWalletID: "w-1",
		TransactionDate:     time.Now(),
	}
	_, err := s.service.CreateTransaction(s.ctx, "user-1", req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.ErrorIs(err, services.ErrTransferSameWallet)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_NegativeAmount() {
	req := dto.CreateTransactionRequest{
		Type:            "INCOME",
		Amount:          decimal.NewFromInt(-5),
		WalletID:        "w-1",
		TransactionDate: time.Now(),
	}
	_, err := s.service.CreateTransaction(s.ctx, "user-1", req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.ErrorIs(err, services.ErrAmountNegative)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_NoWalletReference() {
	req := dto.CreateTransactionRequest{
		Type:            "INCOME",
		Amount:          decimal.NewFromInt(5),
		TransactionDate: time.Now(),
	}
	_, err := s.service.CreateTransaction(s.ctx, "user-1", req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.ErrorIs(err, services.ErrNoWalletReference)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_WalletOwnedByOtherUser() {
	other := &domain.Wallet{WalletID: "w-1", UserID: "someone-else", WalletType: domain.Physical}
	s.mockWalletRepo.On("FindWalletByID", s.ctx, "w-1").Return(other, nil).Once()

	req := dto.CreateTransactionRequest{
		Type:            "EXPENSE",
		Amount:          decimal.NewFromInt(10),
		WalletID:        "w-1",
		TransactionDate: time.Now(),
	}
	_, err := s.service.CreateTransaction(s.ctx, "user-1", req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction_ReversesOldAndAppliesNew() {
	existing := &domain.Transaction{
		TransactionID: "t-1",
		UserID:        "user-1",
		Type:          domain.Income,
		Amount:        decimal.NewFromInt(100),
		WalletID:      "w-1",
	}
	s.mockTxnRepo.On("FindTransactionByID", s.ctx, "t-1").Return(existing, nil).Once()
	s.mockWalletRepo.On("FindWalletByID", s.ctx, "w-1").Return(s.physicalWallet("w-1"), nil).Once()

	var captured portsrepo.BalanceChanges
	s.mockTxnRepo.On("UpdateTransaction", s.ctx, mock.AnythingOfType("domain.Transaction"), mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(portsrepo.BalanceChanges)
		}).Return(nil).Once()

	req := dto.UpdateTransactionRequest{
		Type:            "INCOME",
		Amount:          decimal.NewFromInt(250),
		WalletID:        "w-1",
		TransactionDate: time.Now(),
	}
	txn, err := s.service.UpdateTransaction(s.ctx, "user-1", "t-1", req)

	s.Require().NoError(err)
	s.True(txn.Amount.Equal(decimal.NewFromInt(250)))
	// -100 (reverse) + 250 (apply) = +150 net delta.
	s.Require().Len(captured, 1)
	s.True(captured["w-1"].Equal(decimal.NewFromInt(150)), "got %s", captured["w-1"])
}

func (s *TransactionServiceTestSuite) TestDeleteTransaction_ReversesBalanceEffect() {
	existing := &domain.Transaction{
		TransactionID: "t-1",
		UserID:        "user-1",
		Type:          domain.Expense,
		Amount:        decimal.NewFromInt(80),
		WalletID:      "w-1",
	}
	s.mockTxnRepo.On("FindTransactionByID", s.ctx, "t-1").Return(existing, nil).Once()

	var captured portsrepo.BalanceChanges
	s.mockTxnRepo.On("DeleteTransaction", s.ctx, "t-1", mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(portsrepo.BalanceChanges)
		}).Return(nil).Once()

	err := s.service.DeleteTransaction(s.ctx, "user-1", "t-1")

	s.Require().NoError(err)
	// Reversing an expense credits the wallet back.
	s.True(captured["w-1"].Equal(decimal.NewFromInt(80)))
}

func (s *TransactionServiceTestSuite) TestListTransactions_WalletFilterAndLimitClamp() {
	page := []domain.Transaction{{TransactionID: "t-1", UserID: "user-1"}}
	s.mockTxnRepo.On("ListTransactionsByUser", s.ctx, "user-1", "w-1", 50, "").
		Return(page, "token-2", nil).Once()

	// An out-of-range limit falls back to the default page size.
	txns, token, err := s.service.ListTransactions(s.ctx, "user-1", "w-1", 500, "")

	s.Require().NoError(err)
	s.Len(txns, 1)
	s.Equal("token-2", token)
	s.mockTxnRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestGetTransactionByID_ForbiddenForOtherUser() {
	existing := &domain.Transaction{TransactionID: "t-1", UserID: "owner"}
	s.mockTxnRepo.On("FindTransactionByID", s.ctx, "t-1").Return(existing, nil).Once()

	_, err := s.service.GetTransactionByID(s.ctx, "intruder", "t-1")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
