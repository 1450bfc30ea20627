package dto

import "github.com/walletforge/wallet_tracker_backend/internal/core/currency"

// CurrencyResponse defines the structure for API responses containing currency metadata.
type CurrencyResponse struct {
	Code      string `json:"code"`
	Symbol    string `json:"symbol"`
	Name      string `json:"name"`
	Precision int    `json:"precision"`
	Category  string `json:"category"`
}

// ToCurrencyResponse converts currency metadata to a CurrencyResponse DTO.
func ToCurrencyResponse(c currency.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:      c.Code,
		Symbol:    c.Symbol,
		Name:      c.Name,
		Precision: c.Precision,
		Category:  string(c.Category),
	}
}

// ToListCurrencyResponse converts a slice of currency metadata to DTOs.
func ToListCurrencyResponse(currencies []currency.Currency) []CurrencyResponse {
	responses := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		responses[i] = ToCurrencyResponse(c)
	}
	return responses
}
