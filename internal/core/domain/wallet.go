package domain

import "github.com/shopspring/decimal"

// WalletType distinguishes real-world accounts from budget-envelope style
// sub-allocations. Logical wallets accrue their own income/expense history
// even though they do not correspond to physical custody.
type WalletType string

const (
	Physical WalletType = "PHYSICAL"
	Logical  WalletType = "LOGICAL"
)

// Wallet is an account-like container of value. Its currency is immutable
// once created; balance calculations never need to handle a wallet changing
// currency mid-history.
type Wallet struct {
	WalletID     string     `json:"walletID"` // Primary Key (e.g., UUID)
	UserID       string     `json:"userID"`
	Name         string     `json:"name"`
	WalletType   WalletType `json:"walletType"`
	CurrencyCode string     `json:"currencyCode"`
	// Balance is the stored balance maintained on the write path. The
	// calculation core recomputes balances from transaction history on demand
	// rather than trusting this field.
	Balance        decimal.Decimal `json:"balance"`
	InitialBalance decimal.Decimal `json:"initialBalance"` // Balance at wallet creation
	AuditFields
}

// TransactionBalance is the portion of the stored balance attributable to
// transactions only, excluding the opening balance.
func (w Wallet) TransactionBalance() decimal.Decimal {
	return w.Balance.Sub(w.InitialBalance)
}
