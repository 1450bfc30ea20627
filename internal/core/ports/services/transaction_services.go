package services

import (
	"context"

	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
	"github.com/walletforge/wallet_tracker_backend/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves one of the user's transactions.
	GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of the user's transactions ordered by
	// transaction date descending, with an opaque continuation token. A
	// non-empty walletID restricts the page to transactions touching that
	// wallet.
	ListTransactions(ctx context.Context, userID, walletID string, limit int, nextToken string) ([]domain.Transaction, string, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// CreateTransaction validates and persists a new transaction, adjusting
	// the stored balances of the wallets it touches.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction replaces a transaction's content, reversing its old
	// effect on stored balances and applying the new one.
	UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction and reverses its effect on
	// stored balances.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
