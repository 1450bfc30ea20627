// Package accounting is the pure calculation core: wallet balance
// aggregation, conversion-rate resolution and portfolio totals. Every
// function operates on caller-supplied immutable snapshots, performs no I/O,
// retains no state between calls and is safe for concurrent use.
package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
)

var one = decimal.NewFromInt(1)

// ResolveConversionFactor resolves the factor that converts one unit of the
// from currency into the to currency, using the stored rates.
//
// Priority order, first match wins:
//  1. identical currencies resolve to 1 without any lookup
//  2. a rate matching (from, to) for the requested month
//  3. the default (month-less) rate for (from, to)
//  4. steps 2-3 with the pair swapped, returning the multiplicative inverse
//     of the single matching row
//  5. *RateUnavailableError
//
// Inverse factors are only ever derived from one matching row; conversion is
// never chained through an intermediate currency. Rows with a non-positive
// rate are treated as absent.
func ResolveConversionFactor(rates []domain.CurrencyRate, from, to string, period domain.Period) (decimal.Decimal, error) {
	if from == to {
		return one, nil
	}

	if !period.IsDefault() {
		if rate, ok := findRate(rates, from, to, period); ok {
			return rate, nil
		}
	}
	if rate, ok := findRate(rates, from, to, domain.DefaultPeriod()); ok {
		return rate, nil
	}

	if !period.IsDefault() {
		if rate, ok := findRate(rates, to, from, period); ok {
			return one.Div(rate), nil
		}
	}
	if rate, ok := findRate(rates, to, from, domain.DefaultPeriod()); ok {
		return one.Div(rate), nil
	}

	return decimal.Zero, &RateUnavailableError{
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Period:           period,
	}
}

func findRate(rates []domain.CurrencyRate, from, to string, period domain.Period) (decimal.Decimal, bool) {
	for i := range rates {
		r := &rates[i]
		// Non-positive rates are invalid rows; skip them instead of
		// propagating a division by zero or an inverted sign.
		if r.Rate.LessThanOrEqual(decimal.Zero) {
			continue
		}
		if r.FromCurrencyCode == from && r.ToCurrencyCode == to && r.Period == period {
			return r.Rate, true
		}
	}
	return decimal.Decimal{}, false
}
