package repositories

import (
	"context"

	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
)

// CurrencyRateReader defines read operations for currency rate data
type CurrencyRateReader interface {
	// ListRatesByUser retrieves all conversion rates maintained by a user.
	ListRatesByUser(ctx context.Context, userID string) ([]domain.CurrencyRate, error)

	// FindRate retrieves the rate occupying one (from, to, period) slot.
	FindRate(ctx context.Context, userID, fromCode, toCode string, period domain.Period) (*domain.CurrencyRate, error)
}

// CurrencyRateWriter defines write operations for currency rate data
type CurrencyRateWriter interface {
	// UpsertRate persists a rate into its (user, from, to, period) slot,
	// replacing any rate already occupying it. At most one rate per slot.
	UpsertRate(ctx context.Context, rate domain.CurrencyRate) error

	// DeleteRate removes one of the user's rates by ID.
	DeleteRate(ctx context.Context, userID, rateID string) error
}

// CurrencyRateRepositoryFacade combines all currency rate repository interfaces
type CurrencyRateRepositoryFacade interface {
	CurrencyRateReader
	CurrencyRateWriter
}
