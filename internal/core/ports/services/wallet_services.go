package services

import (
	"context"

	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
	"github.com/walletforge/wallet_tracker_backend/internal/dto"
)

// WalletReaderSvc defines read operations for wallet data
type WalletReaderSvc interface {
	// GetWalletByID retrieves one of the user's wallets.
	GetWalletByID(ctx context.Context, userID, walletID string) (*domain.Wallet, error)

	// ListWallets retrieves all wallets owned by the user.
	ListWallets(ctx context.Context, userID string) ([]domain.Wallet, error)

	// CalculateWalletBalance recomputes a wallet's income, expense and net
	// balance from the user's full transaction history.
	CalculateWalletBalance(ctx context.Context, userID, walletID string) (*domain.WalletBalance, error)
}

// WalletWriterSvc defines write operations for wallet data
type WalletWriterSvc interface {
	// CreateWallet persists a new wallet for the user.
	CreateWallet(ctx context.Context, userID string, req dto.CreateWalletRequest) (*domain.Wallet, error)

	// UpdateWallet renames a wallet. Currency is immutable after creation.
	UpdateWallet(ctx context.Context, userID, walletID string, req dto.UpdateWalletRequest) (*domain.Wallet, error)

	// DeleteWallet removes one of the user's wallets.
	DeleteWallet(ctx context.Context, userID, walletID string) error
}

// WalletSvcFacade combines all wallet-related service interfaces
type WalletSvcFacade interface {
	WalletReaderSvc
	WalletWriterSvc
}
