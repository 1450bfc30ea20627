package utils

import (
	"github.com/shopspring/decimal"

	"github.com/walletforge/wallet_tracker_backend/internal/core/currency"
)

// FormatWithCurrencyPrecision formats an amount with the display precision of
// the given currency.
// Example: amount 12.3456 with USD (precision 2) returns "12.35"
// Example: amount 12.3456 with JPY (precision 0) returns "12"
// Example: amount 0.12345678901 with BTC (precision 8) returns "0.12345679"
func FormatWithCurrencyPrecision(amount decimal.Decimal, cur currency.Currency) string {
	return amount.Round(int32(cur.Precision)).StringFixed(int32(cur.Precision))
}

// FormatWithPrecision formats an amount with the given precision.
// This is a convenience function when you only have the precision value.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).StringFixed(int32(precision))
}
