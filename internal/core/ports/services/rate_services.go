package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
	"github.com/walletforge/wallet_tracker_backend/internal/dto"
)

// CurrencyRateReaderSvc defines read operations for currency rate data
type CurrencyRateReaderSvc interface {
	// ListRates retrieves all conversion rates maintained by the user.
	ListRates(ctx context.Context, userID string) ([]domain.CurrencyRate, error)

	// ResolveConversionFactor resolves the effective factor for a currency
	// pair from the user's stored rates, honoring the monthly-over-default
	// priority and the single-row inverse fallback.
	ResolveConversionFactor(ctx context.Context, userID, fromCode, toCode string, period domain.Period) (decimal.Decimal, error)
}

// CurrencyRateWriterSvc defines write operations for currency rate data
type CurrencyRateWriterSvc interface {
	// UpsertRate creates or replaces the rate in its (from, to, period) slot.
	UpsertRate(ctx context.Context, userID string, req dto.UpsertCurrencyRateRequest) (*domain.CurrencyRate, error)

	// DeleteRate removes one of the user's rates.
	DeleteRate(ctx context.Context, userID, rateID string) error
}

// CurrencyRateSvcFacade combines all currency rate service interfaces
type CurrencyRateSvcFacade interface {
	CurrencyRateReaderSvc
	CurrencyRateWriterSvc
}
