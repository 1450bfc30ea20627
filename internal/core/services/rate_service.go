package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletforge/wallet_tracker_backend/internal/apperrors"
	"github.com/walletforge/wallet_tracker_backend/internal/core/accounting"
	"github.com/walletforge/wallet_tracker_backend/internal/core/currency"
	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
	portsrepo "github.com/walletforge/wallet_tracker_backend/internal/core/ports/repositories"
	portssvc "github.com/walletforge/wallet_tracker_backend/internal/core/ports/services"
	"github.com/walletforge/wallet_tracker_backend/internal/dto"
)

// rateService provides business logic for user-maintained conversion rates.
type rateService struct {
	BaseService
	rateRepo portsrepo.CurrencyRateRepositoryFacade
}

// NewRateService creates a new currency rate service.
func NewRateService(rateRepo portsrepo.CurrencyRateRepositoryFacade) portssvc.CurrencyRateSvcFacade {
	return &rateService{rateRepo: rateRepo}
}

var _ portssvc.CurrencyRateSvcFacade = (*rateService)(nil)

// UpsertRate creates or replaces the rate in its (from, to, period) slot.
// The write path guarantees the resolver's preconditions: known currencies,
// a strictly positive rate, distinct codes, and at most one rate per slot.
func (s *rateService) UpsertRate(ctx context.Context, userID string, req dto.UpsertCurrencyRateRequest) (*domain.CurrencyRate, error) {
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: rate must be positive", apperrors.ErrValidation)
	}
	if req.FromCurrencyCode == req.ToCurrencyCode {
		return nil, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}
	if _, err := currency.Lookup(req.FromCurrencyCode); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if _, err := currency.Lookup(req.ToCurrencyCode); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	period := domain.DefaultPeriod()
	if req.Month != "" {
		var err error
		period, err = domain.MonthPeriod(req.Month)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
	}

	now := time.Now()
	rate := domain.CurrencyRate{
		RateID:           uuid.NewString(),
		UserID:           userID,
		FromCurrencyCode: req.FromCurrencyCode,
		ToCurrencyCode:   req.ToCurrencyCode,
		Rate:             req.Rate,
		Period:           period,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.rateRepo.UpsertRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to upsert currency rate",
			slog.String("from", rate.FromCurrencyCode),
			slog.String("to", rate.ToCurrencyCode))
		return nil, fmt.Errorf("failed to upsert currency rate: %w", err)
	}

	s.LogInfo(ctx, "Currency rate upserted",
		slog.String("from", rate.FromCurrencyCode),
		slog.String("to", rate.ToCurrencyCode),
		slog.String("period", rate.Period.String()))
	return &rate, nil
}

// ListRates retrieves all conversion rates maintained by the user.
func (s *rateService) ListRates(ctx context.Context, userID string) ([]domain.CurrencyRate, error) {
	rates, err := s.rateRepo.ListRatesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list currency rates: %w", err)
	}
	if rates == nil {
		return []domain.CurrencyRate{}, nil
	}
	return rates, nil
}

// DeleteRate removes one of the user's rates.
func (s *rateService) DeleteRate(ctx context.Context, userID, rateID string) error {
	if err := s.rateRepo.DeleteRate(ctx, userID, rateID); err != nil {
		s.LogError(ctx, err, "Failed to delete currency rate", slog.String("rate_id", rateID))
		return fmt.Errorf("failed to delete currency rate: %w", err)
	}
	s.LogInfo(ctx, "Currency rate deleted", slog.String("rate_id", rateID), slog.String("user_id", userID))
	return nil
}

// ResolveConversionFactor resolves the effective factor for a currency pair
// from the user's stored rates snapshot.
func (s *rateService) ResolveConversionFactor(ctx context.Context, userID, fromCode, toCode string, period domain.Period) (decimal.Decimal, error) {
	if _, err := currency.Lookup(fromCode); err != nil {
		return decimal.Zero, err
	}
	if _, err := currency.Lookup(toCode); err != nil {
		return decimal.Zero, err
	}

	rates, err := s.rateRepo.ListRatesByUser(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load rates for resolution: %w", err)
	}

	return accounting.ResolveConversionFactor(rates, fromCode, toCode, period)
}
