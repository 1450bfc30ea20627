package accounting

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
)

// AggregatePortfolio combines the native balances of all supplied wallets
// into totals in the given currency, converting each wallet via
// ResolveConversionFactor with the given period.
//
// Wallets whose currency has no resolvable rate are excluded from the totals
// and reported in UnresolvedWalletIDs, never substituted with zero, so the
// caller can render a "rate missing" warning. Per-wallet income and expense
// totals are converted with the same factor as the net balance, giving a
// portfolio-wide income/expense breakdown alongside the total.
//
// A transaction that violates the attribution invariants aborts the whole
// aggregation: that is a data-integrity bug, not a missing-rate situation.
func AggregatePortfolio(defaultCurrency string, wallets []domain.Wallet, transactions []domain.Transaction, rates []domain.CurrencyRate, period domain.Period) (domain.PortfolioSummary, error) {
	summary := domain.PortfolioSummary{
		CurrencyCode: defaultCurrency,
		Total:        decimal.Zero,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Positions:    make([]domain.WalletPosition, 0, len(wallets)),
	}

	for i := range wallets {
		w := &wallets[i]

		native, err := BalanceOf(transactions, w.WalletID)
		if err != nil {
			return domain.PortfolioSummary{}, err
		}

		position := domain.WalletPosition{
			WalletID:     w.WalletID,
			Name:         w.Name,
			CurrencyCode: w.CurrencyCode,
			Native:       native,
		}

		factor, err := ResolveConversionFactor(rates, w.CurrencyCode, defaultCurrency, period)
		if err != nil {
			var unavailable *RateUnavailableError
			if errors.As(err, &unavailable) {
				summary.UnresolvedWalletIDs = append(summary.UnresolvedWalletIDs, w.WalletID)
				summary.Positions = append(summary.Positions, position)
				continue
			}
			return domain.PortfolioSummary{}, err
		}

		converted := domain.WalletBalance{
			Income:  native.Income.Mul(factor),
			Expense: native.Expense.Mul(factor),
			Net:     native.Net.Mul(factor),
		}
		position.Converted = &converted

		summary.Total = summary.Total.Add(converted.Net)
		summary.TotalIncome = summary.TotalIncome.Add(converted.Income)
		summary.TotalExpense = summary.TotalExpense.Add(converted.Expense)
		summary.Positions = append(summary.Positions, position)
	}

	return summary, nil
}
