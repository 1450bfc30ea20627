package services

import (
	"context"

	"github.com/walletforge/wallet_tracker_backend/internal/core/currency"
	portssvc "github.com/walletforge/wallet_tracker_backend/internal/core/ports/services"
)

// currencyService exposes the static currency metadata table behind the
// service facade so handlers depend on interfaces uniformly.
type currencyService struct{}

// NewCurrencyService creates a new currency metadata service.
func NewCurrencyService() portssvc.CurrencySvcFacade {
	return &currencyService{}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) GetCurrencyByCode(_ context.Context, code string) (currency.Currency, error) {
	return currency.Lookup(code)
}

func (s *currencyService) ListCurrencies(_ context.Context) []currency.Currency {
	return currency.List()
}
