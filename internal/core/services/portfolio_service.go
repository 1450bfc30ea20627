package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/walletforge/wallet_tracker_backend/internal/core/accounting"
	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
	portsrepo "github.com/walletforge/wallet_tracker_backend/internal/core/ports/repositories"
	portssvc "github.com/walletforge/wallet_tracker_backend/internal/core/ports/services"
)

// portfolioService combines per-wallet balances into a portfolio-wide view in
// the user's default currency. It fetches one consistent snapshot per call
// and delegates all arithmetic to the calculation core.
type portfolioService struct {
	BaseService
	userRepo        portsrepo.UserReader
	walletRepo      portsrepo.WalletReader
	transactionRepo portsrepo.TransactionReader
	rateRepo        portsrepo.CurrencyRateReader
}

// NewPortfolioService creates a new portfolio service.
func NewPortfolioService(
	userRepo portsrepo.UserReader,
	walletRepo portsrepo.WalletReader,
	transactionRepo portsrepo.TransactionReader,
	rateRepo portsrepo.CurrencyRateReader,
) portssvc.PortfolioSvcFacade {
	return &portfolioService{
		userRepo:        userRepo,
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		rateRepo:        rateRepo,
	}
}

var _ portssvc.PortfolioSvcFacade = (*portfolioService)(nil)

// GetPortfolioSummary recomputes every wallet's native balance, converts it
// into the user's default currency and reports wallets excluded because no
// rate resolved.
func (s *portfolioService) GetPortfolioSummary(ctx context.Context, userID string, period domain.Period) (*domain.PortfolioSummary, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user for portfolio: %w", err)
	}

	wallets, err := s.walletRepo.ListWalletsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallets for portfolio: %w", err)
	}

	transactions, err := s.transactionRepo.ListAllTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for portfolio: %w", err)
	}

	rates, err := s.rateRepo.ListRatesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rates for portfolio: %w", err)
	}

	summary, err := accounting.AggregatePortfolio(user.DefaultCurrencyCode, wallets, transactions, rates, period)
	if err != nil {
		s.LogError(ctx, err, "Portfolio aggregation failed", slog.String("user_id", userID))
		return nil, err
	}

	if len(summary.UnresolvedWalletIDs) > 0 {
		s.LogInfo(ctx, "Portfolio aggregated with unresolved wallets",
			slog.String("user_id", userID),
			slog.Int("unresolved_count", len(summary.UnresolvedWalletIDs)))
	}

	return &summary, nil
}
