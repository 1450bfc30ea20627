package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
)

// UpsertCurrencyRateRequest creates or replaces a conversion rate. An empty
// month targets the default (permanent) slot for the pair.
type UpsertCurrencyRateRequest struct {
	FromCurrencyCode string          `json:"fromCurrencyCode" binding:"required,knowncurrency"`
	ToCurrencyCode   string          `json:"toCurrencyCode" binding:"required,knowncurrency"`
	Rate             decimal.Decimal `json:"rate" binding:"required"`
	Month            string          `json:"month,omitempty" binding:"omitempty,yyyymm"`
}

// CurrencyRateResponse defines the structure for API responses containing rate details.
type CurrencyRateResponse struct {
	RateID           string          `json:"rateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	Month            string          `json:"month,omitempty"` // Empty for the default rate
	CreatedAt        time.Time       `json:"createdAt"`
	LastUpdatedAt    time.Time       `json:"lastUpdatedAt"`
}

// ResolveRateResponse is the result of resolving an effective conversion factor.
type ResolveRateResponse struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Period           string          `json:"period"`
	Factor           decimal.Decimal `json:"factor"`
}

// ToCurrencyRateResponse converts a domain.CurrencyRate to a CurrencyRateResponse DTO.
func ToCurrencyRateResponse(rate *domain.CurrencyRate) CurrencyRateResponse {
	return CurrencyRateResponse{
		RateID:           rate.RateID,
		FromCurrencyCode: rate.FromCurrencyCode,
		ToCurrencyCode:   rate.ToCurrencyCode,
		Rate:             rate.Rate,
		Month:            rate.Period.Month(),
		CreatedAt:        rate.CreatedAt,
		LastUpdatedAt:    rate.LastUpdatedAt,
	}
}

// ToListCurrencyRateResponse converts a slice of domain rates to DTOs.
func ToListCurrencyRateResponse(rates []domain.CurrencyRate) []CurrencyRateResponse {
	responses := make([]CurrencyRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToCurrencyRateResponse(&rates[i])
	}
	return responses
}
