package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
)

// BalanceChanges maps wallet IDs to signed stored-balance deltas that a
// transaction write applies atomically alongside the record itself. The
// calculation core never trusts stored balances; this keeps them usable as a
// denormalized display value.
type BalanceChanges map[string]decimal.Decimal

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its ID.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByUser retrieves a page of a user's transactions ordered
	// by transaction date descending, optionally restricted to those touching
	// walletID. It returns the page and a token for the next page, or "" when
	// exhausted.
	ListTransactionsByUser(ctx context.Context, userID, walletID string, limit int, nextToken string) ([]domain.Transaction, string, error)

	// ListAllTransactionsByUser retrieves the full transaction history of a
	// user as one snapshot for balance calculation.
	ListAllTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction and applies the given wallet
	// balance deltas in the same database transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction, changes BalanceChanges) error

	// UpdateTransaction persists changes to an existing transaction and
	// applies the given wallet balance deltas in the same database
	// transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction, changes BalanceChanges) error

	// DeleteTransaction removes a transaction and applies the given wallet
	// balance deltas in the same database transaction.
	DeleteTransaction(ctx context.Context, transactionID string, changes BalanceChanges) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
