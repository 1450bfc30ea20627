package accounting

import (
	"fmt"

	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
)

// RateUnavailableError reports that no direct, default, or invertible rate
// exists for a currency pair. It is a reportable condition, not a silent
// zero: callers either surface it or accumulate the affected wallet and
// carry on (portfolio aggregation).
type RateUnavailableError struct {
	FromCurrencyCode string
	ToCurrencyCode   string
	Period           domain.Period
}

func (e *RateUnavailableError) Error() string {
	return fmt.Sprintf("no conversion rate available from %s to %s (period %s)",
		e.FromCurrencyCode, e.ToCurrencyCode, e.Period)
}

// InvalidTransactionError reports a transaction that violates the attribution
// invariants (negative amount, unknown type, malformed transfer). Such records
// indicate an upstream data-integrity bug, so the calculation call that
// encounters one fails rather than silently computing a balance.
type InvalidTransactionError struct {
	TransactionID string
	Reason        string
}

func (e *InvalidTransactionError) Error() string {
	return fmt.Sprintf("invalid transaction %s: %s", e.TransactionID, e.Reason)
}
