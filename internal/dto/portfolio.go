package dto

import (
	"github.com/shopspring/decimal"

	"github.com/walletforge/wallet_tracker_backend/internal/core/currency"
	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
	"github.com/walletforge/wallet_tracker_backend/internal/utils"
)

// WalletPositionResponse is one wallet's entry in the portfolio summary.
type WalletPositionResponse struct {
	WalletID         string           `json:"walletID"`
	Name             string           `json:"name"`
	CurrencyCode     string           `json:"currencyCode"`
	Income           decimal.Decimal  `json:"income"`
	Expense          decimal.Decimal  `json:"expense"`
	Net              decimal.Decimal  `json:"net"`
	NetFormatted     string           `json:"netFormatted"`
	ConvertedIncome  *decimal.Decimal `json:"convertedIncome,omitempty"`
	ConvertedExpense *decimal.Decimal `json:"convertedExpense,omitempty"`
	ConvertedNet     *decimal.Decimal `json:"convertedNet,omitempty"`
	RateUnavailable  bool             `json:"rateUnavailable,omitempty"`
}

// PortfolioSummaryResponse is the portfolio-wide view in the user's default
// currency. Wallets listed in UnresolvedWalletIDs had no usable conversion
// rate and are excluded from the totals.
type PortfolioSummaryResponse struct {
	CurrencyCode        string                   `json:"currencyCode"`
	Total               decimal.Decimal          `json:"total"`
	TotalFormatted      string                   `json:"totalFormatted"`
	TotalIncome         decimal.Decimal          `json:"totalIncome"`
	TotalExpense        decimal.Decimal          `json:"totalExpense"`
	Positions           []WalletPositionResponse `json:"positions"`
	UnresolvedWalletIDs []string                 `json:"unresolvedWalletIDs,omitempty"`
}

// ToPortfolioSummaryResponse converts a domain portfolio summary to a DTO,
// formatting amounts with the display precision of their currency.
func ToPortfolioSummaryResponse(summary *domain.PortfolioSummary) PortfolioSummaryResponse {
	response := PortfolioSummaryResponse{
		CurrencyCode:        summary.CurrencyCode,
		Total:               summary.Total,
		TotalFormatted:      formatAmount(summary.Total, summary.CurrencyCode),
		TotalIncome:         summary.TotalIncome,
		TotalExpense:        summary.TotalExpense,
		Positions:           make([]WalletPositionResponse, len(summary.Positions)),
		UnresolvedWalletIDs: summary.UnresolvedWalletIDs,
	}

	for i := range summary.Positions {
		pos := &summary.Positions[i]
		entry := WalletPositionResponse{
			WalletID:     pos.WalletID,
			Name:         pos.Name,
			CurrencyCode: pos.CurrencyCode,
			Income:       pos.Native.Income,
			Expense:      pos.Native.Expense,
			Net:          pos.Native.Net,
			NetFormatted: formatAmount(pos.Native.Net, pos.CurrencyCode),
		}
		if pos.Converted != nil {
			entry.ConvertedIncome = &pos.Converted.Income
			entry.ConvertedExpense = &pos.Converted.Expense
			entry.ConvertedNet = &pos.Converted.Net
		} else {
			entry.RateUnavailable = true
		}
		response.Positions[i] = entry
	}

	return response
}

func formatAmount(amount decimal.Decimal, code string) string {
	cur, err := currency.Lookup(code)
	if err != nil {
		// Codes are validated on every write path; fall back to the raw
		// string rather than dropping the amount.
		return amount.String()
	}
	return utils.FormatWithCurrencyPrecision(amount, cur)
}
