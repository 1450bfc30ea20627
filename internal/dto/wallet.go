package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
)

// CreateWalletRequest defines the structure for creating a new wallet.
type CreateWalletRequest struct {
	Name           string          `json:"name" binding:"required,max=100"`
	WalletType     string          `json:"walletType" binding:"required,oneof=PHYSICAL LOGICAL"`
	CurrencyCode   string          `json:"currencyCode" binding:"required,knowncurrency"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

// UpdateWalletRequest defines the mutable wallet fields. Currency is
// deliberately absent: it is immutable after creation.
type UpdateWalletRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// WalletResponse defines the structure for API responses containing wallet details.
type WalletResponse struct {
	WalletID           string          `json:"walletID"`
	Name               string          `json:"name"`
	WalletType         string          `json:"walletType"`
	CurrencyCode       string          `json:"currencyCode"`
	Balance            decimal.Decimal `json:"balance"`
	InitialBalance     decimal.Decimal `json:"initialBalance"`
	TransactionBalance decimal.Decimal `json:"transactionBalance"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// WalletBalanceResponse carries a wallet balance recomputed from the
// transaction history, in the wallet's native currency.
type WalletBalanceResponse struct {
	WalletID     string          `json:"walletID"`
	CurrencyCode string          `json:"currencyCode"`
	Income       decimal.Decimal `json:"income"`
	Expense      decimal.Decimal `json:"expense"`
	Net          decimal.Decimal `json:"net"`
	NetFormatted string          `json:"netFormatted"`
}

// ToWalletBalanceResponse converts a recomputed wallet balance to a DTO,
// formatting the net amount with the wallet currency's display precision.
func ToWalletBalanceResponse(wallet *domain.Wallet, balance *domain.WalletBalance) WalletBalanceResponse {
	return WalletBalanceResponse{
		WalletID:     wallet.WalletID,
		CurrencyCode: wallet.CurrencyCode,
		Income:       balance.Income,
		Expense:      balance.Expense,
		Net:          balance.Net,
		NetFormatted: formatAmount(balance.Net, wallet.CurrencyCode),
	}
}

// ToWalletResponse converts a domain.Wallet to a WalletResponse DTO.
func ToWalletResponse(wallet *domain.Wallet) WalletResponse {
	return WalletResponse{
		WalletID:           wallet.WalletID,
		Name:               wallet.Name,
		WalletType:         string(wallet.WalletType),
		CurrencyCode:       wallet.CurrencyCode,
		Balance:            wallet.Balance,
		InitialBalance:     wallet.InitialBalance,
		TransactionBalance: wallet.TransactionBalance(),
		CreatedAt:          wallet.CreatedAt,
	}
}

// ToListWalletResponse converts a slice of domain wallets to DTOs.
func ToListWalletResponse(wallets []domain.Wallet) []WalletResponse {
	responses := make([]WalletResponse, len(wallets))
	for i := range wallets {
		responses[i] = ToWalletResponse(&wallets[i])
	}
	return responses
}
