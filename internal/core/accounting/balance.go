package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
)

// BalanceOf computes the income total, expense total and net balance that a
// transaction set attributes to one wallet, in the wallet's native currency.
//
// Attribution rules per transaction:
//   - Income/Expense count toward the wallet when it appears in
//     AffectedWalletIDs, or, for legacy records with an empty affected set,
//     when it equals the transaction's WalletID. A counted transaction
//     contributes its entire amount: a wallet that is one of two co-affected
//     wallets receives the full amount, not a split, because the physical and
//     logical wallet are two independent accounting views of the same event.
//   - Transfer adds the amount to the expense total of the source wallet and
//     to the income total of the destination wallet.
//   - Everything else contributes zero.
//
// The scan is a plain sum, so transaction order never changes the result.
// The caller supplies transactions already scoped to a single user.
func BalanceOf(transactions []domain.Transaction, walletID string) (domain.WalletBalance, error) {
	income := decimal.Zero
	expense := decimal.Zero

	for i := range transactions {
		txn := &transactions[i]
		if err := validateTransaction(txn); err != nil {
			return domain.WalletBalance{}, err
		}

		switch txn.Type {
		case domain.Income:
			if attributedTo(txn, walletID) {
				income = income.Add(txn.Amount)
			}
		case domain.Expense:
			if attributedTo(txn, walletID) {
				expense = expense.Add(txn.Amount)
			}
		case domain.Transfer:
			if txn.SourceWalletID == walletID {
				expense = expense.Add(txn.Amount)
			}
			if txn.DestinationWalletID == walletID {
				income = income.Add(txn.Amount)
			}
		}
	}

	return domain.WalletBalance{
		Income:  income,
		Expense: expense,
		Net:     income.Sub(expense),
	}, nil
}

// IncomeOf returns the income total a transaction set attributes to a wallet.
func IncomeOf(transactions []domain.Transaction, walletID string) (decimal.Decimal, error) {
	balance, err := BalanceOf(transactions, walletID)
	if err != nil {
		return decimal.Zero, err
	}
	return balance.Income, nil
}

// ExpenseOf returns the expense total a transaction set attributes to a wallet.
func ExpenseOf(transactions []domain.Transaction, walletID string) (decimal.Decimal, error) {
	balance, err := BalanceOf(transactions, walletID)
	if err != nil {
		return decimal.Zero, err
	}
	return balance.Expense, nil
}

// NetBalanceOf returns IncomeOf minus ExpenseOf for a wallet.
func NetBalanceOf(transactions []domain.Transaction, walletID string) (decimal.Decimal, error) {
	balance, err := BalanceOf(transactions, walletID)
	if err != nil {
		return decimal.Zero, err
	}
	return balance.Net, nil
}

func attributedTo(txn *domain.Transaction, walletID string) bool {
	if len(txn.AffectedWalletIDs) > 0 {
		for _, id := range txn.AffectedWalletIDs {
			if id == walletID {
				return true
			}
		}
		return false
	}
	// Legacy fallback: single-wallet reference.
	return txn.WalletID != "" && txn.WalletID == walletID
}

func validateTransaction(txn *domain.Transaction) error {
	if txn.Amount.IsNegative() {
		return &InvalidTransactionError{
			TransactionID: txn.TransactionID,
			Reason:        "amount must be non-negative",
		}
	}

	switch txn.Type {
	case domain.Income, domain.Expense:
		return nil
	case domain.Transfer:
		if txn.SourceWalletID == "" || txn.DestinationWalletID == "" {
			return &InvalidTransactionError{
				TransactionID: txn.TransactionID,
				Reason:        "transfer requires both source and destination wallets",
			}
		}
		if txn.SourceWalletID == txn.DestinationWalletID {
			return &InvalidTransactionError{
				TransactionID: txn.TransactionID,
				Reason:        "transfer source and destination wallets must differ",
			}
		}
		return nil
	default:
		return &InvalidTransactionError{
			TransactionID: txn.TransactionID,
			Reason:        "unknown transaction type " + string(txn.Type),
		}
	}
}
