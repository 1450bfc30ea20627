package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/walletforge/wallet_tracker_backend/internal/apperrors"
	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
	portsrepo "github.com/walletforge/wallet_tracker_backend/internal/core/ports/repositories"
)

type CurrencyRateRepository struct {
	db *pgxpool.Pool
}

func NewCurrencyRateRepository(db *pgxpool.Pool) *CurrencyRateRepository {
	return &CurrencyRateRepository{db: db}
}

// Ensure CurrencyRateRepository implements the repository facade
var _ portsrepo.CurrencyRateRepositoryFacade = (*CurrencyRateRepository)(nil)

// The month column stores '' for the default (permanent) rate so the
// (user, from, to, month) slot can carry a plain unique constraint.

func (r *CurrencyRateRepository) UpsertRate(ctx context.Context, rate domain.CurrencyRate) error {
	query := `
        INSERT INTO currency_rates (rate_id, user_id, from_currency_code, to_currency_code, rate, month, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        ON CONFLICT (user_id, from_currency_code, to_currency_code, month) DO UPDATE SET
            rate = EXCLUDED.rate,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `
	_, err := r.db.Exec(ctx, query,
		rate.RateID,
		rate.UserID,
		rate.FromCurrencyCode,
		rate.ToCurrencyCode,
		rate.Rate,
		rate.Period.Month(),
		rate.CreatedAt,
		rate.CreatedBy,
		rate.LastUpdatedAt,
		rate.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert rate: %w", err)
	}
	return nil
}

func (r *CurrencyRateRepository) FindRate(ctx context.Context, userID, fromCode, toCode string, period domain.Period) (*domain.CurrencyRate, error) {
	query := `
        SELECT rate_id, user_id, from_currency_code, to_currency_code, rate, month, created_at, created_by, last_updated_at, last_updated_by
        FROM currency_rates
        WHERE user_id = $1 AND from_currency_code = $2 AND to_currency_code = $3 AND month = $4;
    `
	rate, err := scanRate(r.db.QueryRow(ctx, query, userID, fromCode, toCode, period.Month()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rate: %w", err)
	}
	return rate, nil
}

func (r *CurrencyRateRepository) ListRatesByUser(ctx context.Context, userID string) ([]domain.CurrencyRate, error) {
	query := `
        SELECT rate_id, user_id, from_currency_code, to_currency_code, rate, month, created_at, created_by, last_updated_at, last_updated_by
        FROM currency_rates
        WHERE user_id = $1
        ORDER BY from_currency_code, to_currency_code, month;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rates: %w", err)
	}
	defer rows.Close()

	rates := []domain.CurrencyRate{}
	for rows.Next() {
		rate, err := scanRate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rate row: %w", err)
		}
		rates = append(rates, *rate)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating rate rows: %w", rows.Err())
	}

	return rates, nil
}

func (r *CurrencyRateRepository) DeleteRate(ctx context.Context, userID, rateID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM currency_rates WHERE rate_id = $1 AND user_id = $2;`, rateID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete rate: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: rate %s", apperrors.ErrNotFound, rateID)
	}
	return nil
}

func scanRate(row pgx.Row) (*domain.CurrencyRate, error) {
	var rate domain.CurrencyRate
	var month string
	err := row.Scan(
		&rate.RateID,
		&rate.UserID,
		&rate.FromCurrencyCode,
		&rate.ToCurrencyCode,
		&rate.Rate,
		&month,
		&rate.CreatedAt,
		&rate.CreatedBy,
		&rate.LastUpdatedAt,
		&rate.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}

	if month == "" {
		rate.Period = domain.DefaultPeriod()
	} else {
		period, err := domain.MonthPeriod(month)
		if err != nil {
			return nil, fmt.Errorf("invalid month %q in stored rate %s: %w", month, rate.RateID, err)
		}
		rate.Period = period
	}
	return &rate, nil
}
