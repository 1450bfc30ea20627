package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
	portsrepo "github.com/walletforge/wallet_tracker_backend/internal/core/ports/repositories"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock WalletRepository ---
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) ListWalletsByUser(ctx context.Context, userID string) ([]domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) UpdateWallet(ctx context.Context, wallet domain.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) DeleteWallet(ctx context.Context, walletID string) error {
	args := m.Called(ctx, walletID)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByUser(ctx context.Context, userID, walletID string, limit int, nextToken string) ([]domain.Transaction, string, error) {
	args := m.Called(ctx, userID, walletID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.String(1), args.Error(2)
}

func (m *MockTransactionRepository) ListAllTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, changes portsrepo.BalanceChanges) error {
	args := m.Called(ctx, txn, changes)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, changes portsrepo.BalanceChanges) error {
	args := m.Called(ctx, txn, changes)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, changes portsrepo.BalanceChanges) error {
	args := m.Called(ctx, transactionID, changes)
	return args.Error(0)
}

// --- Mock CurrencyRateRepository ---
type MockCurrencyRateRepository struct {
	mock.Mock
}

func (m *MockCurrencyRateRepository) ListRatesByUser(ctx context.Context, userID string) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRateRepository) FindRate(ctx context.Context, userID, fromCode, toCode string, period domain.Period) (*domain.CurrencyRate, error) {
	args := m.Called(ctx, userID, fromCode, toCode, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRateRepository) UpsertRate(ctx context.Context, rate domain.CurrencyRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockCurrencyRateRepository) DeleteRate(ctx context.Context, userID, rateID string) error {
	args := m.Called(ctx, userID, rateID)
	return args.Error(0)
}
