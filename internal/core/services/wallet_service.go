package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/walletforge/wallet_tracker_backend/internal/apperrors"
	"github.com/walletforge/wallet_tracker_backend/internal/core/accounting"
	"github.com/walletforge/wallet_tracker_backend/internal/core/currency"
	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
	portsrepo "github.com/walletforge/wallet_tracker_backend/internal/core/ports/repositories"
	portssvc "github.com/walletforge/wallet_tracker_backend/internal/core/ports/services"
	"github.com/walletforge/wallet_tracker_backend/internal/dto"
)

// walletService provides business logic for wallets.
type walletService struct {
	BaseService
	walletRepo      portsrepo.WalletRepositoryFacade
	transactionRepo portsrepo.TransactionReader
}

// WalletServiceOption is a functional option for configuring the wallet service
type WalletServiceOption func(*walletService)

// WithTransactionReader sets the transaction reader used for balance calculation.
func WithTransactionReader(repo portsrepo.TransactionReader) WalletServiceOption {
	return func(s *walletService) {
		s.transactionRepo = repo
	}
}

// NewWalletService creates a new wallet service with the provided options.
func NewWalletService(walletRepo portsrepo.WalletRepositoryFacade, options ...WalletServiceOption) portssvc.WalletSvcFacade {
	svc := &walletService{walletRepo: walletRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.WalletSvcFacade = (*walletService)(nil)

// CreateWallet persists a new wallet for the user.
func (s *walletService) CreateWallet(ctx context.Context, userID string, req dto.CreateWalletRequest) (*domain.Wallet, error) {
	if _, err := currency.Lookup(req.CurrencyCode); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	now := time.Now()
	wallet := domain.Wallet{
		WalletID:       uuid.NewString(),
		UserID:         userID,
		Name:           req.Name,
		WalletType:     domain.WalletType(req.WalletType),
		CurrencyCode:   req.CurrencyCode,
		Balance:        req.InitialBalance,
		InitialBalance: req.InitialBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.walletRepo.SaveWallet(ctx, wallet); err != nil {
		s.LogError(ctx, err, "Failed to save wallet", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	s.LogInfo(ctx, "Wallet created",
		slog.String("wallet_id", wallet.WalletID),
		slog.String("currency", wallet.CurrencyCode))
	return &wallet, nil
}

// GetWalletByID retrieves one of the user's wallets.
func (s *walletService) GetWalletByID(ctx context.Context, userID, walletID string) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.FindWalletByID(ctx, walletID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	if wallet.UserID != userID {
		return nil, fmt.Errorf("%w: wallet %s", apperrors.ErrForbidden, walletID)
	}
	return wallet, nil
}

// ListWallets retrieves all wallets owned by the user.
func (s *walletService) ListWallets(ctx context.Context, userID string) ([]domain.Wallet, error) {
	wallets, err := s.walletRepo.ListWalletsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	if wallets == nil {
		return []domain.Wallet{}, nil
	}
	return wallets, nil
}

// UpdateWallet renames a wallet. Currency is immutable after creation.
func (s *walletService) UpdateWallet(ctx context.Context, userID, walletID string, req dto.UpdateWalletRequest) (*domain.Wallet, error) {
	wallet, err := s.GetWalletByID(ctx, userID, walletID)
	if err != nil {
		return nil, err
	}

	wallet.Name = req.Name
	wallet.LastUpdatedAt = time.Now()
	wallet.LastUpdatedBy = userID

	if err := s.walletRepo.UpdateWallet(ctx, *wallet); err != nil {
		s.LogError(ctx, err, "Failed to update wallet", slog.String("wallet_id", walletID))
		return nil, fmt.Errorf("failed to update wallet: %w", err)
	}
	return wallet, nil
}

// DeleteWallet removes one of the user's wallets.
func (s *walletService) DeleteWallet(ctx context.Context, userID, walletID string) error {
	if _, err := s.GetWalletByID(ctx, userID, walletID); err != nil {
		return err
	}

	if err := s.walletRepo.DeleteWallet(ctx, walletID); err != nil {
		s.LogError(ctx, err, "Failed to delete wallet", slog.String("wallet_id", walletID))
		return fmt.Errorf("failed to delete wallet: %w", err)
	}

	s.LogInfo(ctx, "Wallet deleted", slog.String("wallet_id", walletID))
	return nil
}

// CalculateWalletBalance recomputes a wallet's income, expense and net
// balance from the user's full transaction history. The stored balance field
// is never consulted.
func (s *walletService) CalculateWalletBalance(ctx context.Context, userID, walletID string) (*domain.WalletBalance, error) {
	if _, err := s.GetWalletByID(ctx, userID, walletID); err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.ListAllTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for balance calculation: %w", err)
	}

	balance, err := accounting.BalanceOf(transactions, walletID)
	if err != nil {
		s.LogError(ctx, err, "Balance calculation failed on invalid transaction data",
			slog.String("wallet_id", walletID))
		return nil, err
	}

	return &balance, nil
}
