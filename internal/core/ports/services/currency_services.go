package services

import (
	"context"

	"github.com/walletforge/wallet_tracker_backend/internal/core/currency"
)

// CurrencySvcFacade exposes the static currency metadata table.
type CurrencySvcFacade interface {
	// GetCurrencyByCode retrieves metadata for a currency code.
	GetCurrencyByCode(ctx context.Context, code string) (currency.Currency, error)

	// ListCurrencies retrieves all known currencies.
	ListCurrencies(ctx context.Context) []currency.Currency
}
