package repositories

import (
	"context"

	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
)

// WalletReader defines read operations for wallet data
type WalletReader interface {
	// FindWalletByID retrieves a wallet by its ID.
	FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error)

	// ListWalletsByUser retrieves all wallets owned by a user.
	ListWalletsByUser(ctx context.Context, userID string) ([]domain.Wallet, error)
}

// WalletWriter defines write operations for wallet data
type WalletWriter interface {
	// SaveWallet persists a new wallet.
	SaveWallet(ctx context.Context, wallet domain.Wallet) error

	// UpdateWallet persists changes to an existing wallet. The wallet's
	// currency is immutable; implementations never write the currency column
	// after creation.
	UpdateWallet(ctx context.Context, wallet domain.Wallet) error

	// DeleteWallet removes a wallet.
	DeleteWallet(ctx context.Context, walletID string) error
}

// WalletRepositoryFacade combines all wallet-related repository interfaces
type WalletRepositoryFacade interface {
	WalletReader
	WalletWriter
}
