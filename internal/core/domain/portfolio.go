package domain

import "github.com/shopspring/decimal"

// WalletBalance holds the recomputed income, expense and net totals for a
// single wallet in its native currency.
type WalletBalance struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"` // Income minus Expense, exactly
}

// WalletPosition is one wallet's contribution to a portfolio summary:
// the native balance plus, when a conversion rate resolved, the same balance
// converted into the portfolio currency.
type WalletPosition struct {
	WalletID     string        `json:"walletID"`
	Name         string        `json:"name"`
	CurrencyCode string        `json:"currencyCode"`
	Native       WalletBalance `json:"native"`
	// Converted is nil when no rate to the portfolio currency resolved; such
	// wallets are excluded from the totals and listed in UnresolvedWalletIDs.
	Converted *WalletBalance `json:"converted,omitempty"`
}

// PortfolioSummary combines per-wallet balances across all of a user's
// wallets into totals in a single currency.
type PortfolioSummary struct {
	CurrencyCode        string           `json:"currencyCode"`
	Total               decimal.Decimal  `json:"total"`
	TotalIncome         decimal.Decimal  `json:"totalIncome"`
	TotalExpense        decimal.Decimal  `json:"totalExpense"`
	Positions           []WalletPosition `json:"positions"`
	UnresolvedWalletIDs []string         `json:"unresolvedWalletIDs,omitempty"`
}
