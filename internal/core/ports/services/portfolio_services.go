package services

import (
	"context"

	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
)

// PortfolioSvcFacade aggregates per-wallet balances into a single total in
// the user's default currency.
type PortfolioSvcFacade interface {
	// GetPortfolioSummary recomputes every wallet's native balance, converts
	// it into the user's default currency (using rates for the given period)
	// and reports wallets excluded because no rate resolved.
	GetPortfolioSummary(ctx context.Context, userID string, period domain.Period) (*domain.PortfolioSummary, error)
}
