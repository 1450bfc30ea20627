package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
)

// CreateTransactionRequest defines the structure for recording a financial event.
//
// Which wallet fields are required depends on type: INCOME/EXPENSE take
// affectedWalletIDs (or the legacy walletID), TRANSFER takes sourceWalletID
// and destinationWalletID. Cross-field rules are enforced by the service.
type CreateTransactionRequest struct {
	Type                string          `json:"type" binding:"required,oneof=INCOME EXPENSE TRANSFER"`
	Amount              decimal.Decimal `json:"amount" binding:"required"`
	WalletID            string          `json:"walletID,omitempty"`
	AffectedWalletIDs   []string        `json:"affectedWalletIDs,omitempty" binding:"omitempty,max=2"`
	SourceWalletID      string          `json:"sourceWalletID,omitempty"`
	DestinationWalletID string          `json:"destinationWalletID,omitempty"`
	Tags                []string        `json:"tags,omitempty"`
	TransactionDate     time.Time       `json:"transactionDate" binding:"required"`
}

// UpdateTransactionRequest replaces a transaction's content wholesale.
type UpdateTransactionRequest struct {
	Type                string          `json:"type" binding:"required,oneof=INCOME EXPENSE TRANSFER"`
	Amount              decimal.Decimal `json:"amount" binding:"required"`
	WalletID            string          `json:"walletID,omitempty"`
	AffectedWalletIDs   []string        `json:"affectedWalletIDs,omitempty" binding:"omitempty,max=2"`
	SourceWalletID      string          `json:"sourceWalletID,omitempty"`
	DestinationWalletID string          `json:"destinationWalletID,omitempty"`
	Tags                []string        `json:"tags,omitempty"`
	TransactionDate     time.Time       `json:"transactionDate" binding:"required"`
}

// TransactionResponse defines the structure for API responses containing transaction details.
type TransactionResponse struct {
	TransactionID       string          `json:"transactionID"`
	Type                string          `json:"type"`
	Amount              decimal.Decimal `json:"amount"`
	WalletID            string          `json:"walletID,omitempty"`
	AffectedWalletIDs   []string        `json:"affectedWalletIDs,omitempty"`
	SourceWalletID      string          `json:"sourceWalletID,omitempty"`
	DestinationWalletID string          `json:"destinationWalletID,omitempty"`
	Tags                []string        `json:"tags,omitempty"`
	TransactionDate     time.Time       `json:"transactionDate"`
	CreatedAt           time.Time       `json:"createdAt"`
}

// ListTransactionsResponse is a page of transactions with a continuation token.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to a TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:       txn.TransactionID,
		Type:                string(txn.Type),
		Amount:              txn.Amount,
		WalletID:            txn.WalletID,
		AffectedWalletIDs:   txn.AffectedWalletIDs,
		SourceWalletID:      txn.SourceWalletID,
		DestinationWalletID: txn.DestinationWalletID,
		Tags:                txn.Tags,
		TransactionDate:     txn.TransactionDate,
		CreatedAt:           txn.CreatedAt,
	}
}

// ToListTransactionsResponse converts a page of domain transactions to a DTO.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken string) ListTransactionsResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: responses, NextToken: nextToken}
}
