package domain

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Period identifies the scope of a currency rate: either a specific YYYY-MM
// month or the default slot that applies when no monthly rate exists. The
// zero value is the default period.
type Period struct {
	month string
}

// DefaultPeriod returns the period of a permanent rate.
func DefaultPeriod() Period {
	return Period{}
}

// MonthPeriod parses a YYYY-MM month string into a Period.
func MonthPeriod(month string) (Period, error) {
	if !monthPattern.MatchString(month) {
		return Period{}, fmt.Errorf("invalid period %q: expected YYYY-MM", month)
	}
	return Period{month: month}, nil
}

// IsDefault reports whether the period is the default (month-less) slot.
func (p Period) IsDefault() bool {
	return p.month == ""
}

// Month returns the YYYY-MM string, or "" for the default period.
func (p Period) Month() string {
	return p.month
}

func (p Period) String() string {
	if p.month == "" {
		return "default"
	}
	return p.month
}

// MarshalJSON encodes the period as its String form: "default" or "YYYY-MM".
func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON accepts "default", "" or a YYYY-MM month.
func (p *Period) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" || raw == "default" {
		*p = DefaultPeriod()
		return nil
	}
	parsed, err := MonthPeriod(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// CurrencyRate is a user-maintained conversion factor: one unit of
// FromCurrencyCode equals Rate units of ToCurrencyCode, scoped to Period.
// At most one rate exists per (user, from, to, period) slot, including the
// default slot.
type CurrencyRate struct {
	RateID           string          `json:"rateID"` // Primary Key (e.g., UUID)
	UserID           string          `json:"userID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"` // Positive; non-positive rows are ignored by the resolver
	Period           Period          `json:"period"`
	AuditFields
}
