package accounting_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletforge/wallet_tracker_backend/internal/core/accounting"
	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
)

func income(id, amount string, affected ...string) domain.Transaction {
	return domain.Transaction{
		TransactionID:     id,
		Type:              domain.Income,
		Amount:            decimal.RequireFromString(amount),
		AffectedWalletIDs: affected,
	}
}

func expense(id, amount string, affected ...string) domain.Transaction {
	return domain.Transaction{
		TransactionID:     id,
		Type:              domain.Expense,
		Amount:            decimal.RequireFromString(amount),
		AffectedWalletIDs: affected,
	}
}

func transfer(id, amount, source, destination string) domain.Transaction {
	return domain.Transaction{
		TransactionID:       id,
		Type:                domain.Transfer,
		Amount:              decimal.RequireFromString(amount),
		SourceWalletID:      source,
		DestinationWalletID: destination,
	}
}

func TestBalanceOf_DualAttributionFullAmount(t *testing.T) {
	// An income affecting a physical and a logical wallet counts fully
	// for both: they are independent views of the same event.
	txns := []domain.Transaction{income("t1", "1000", "bank", "savings-goal")}

	for _, walletID := range []string{"bank", "savings-goal"} {
		balance, err := accounting.BalanceOf(txns, walletID)
		require.NoError(t, err)
		assert.True(t, balance.Income.Equal(decimal.NewFromInt(1000)), "wallet %s", walletID)
		assert.True(t, balance.Net.Equal(decimal.NewFromInt(1000)), "wallet %s", walletID)
	}
}

func TestBalanceOf_LegacyWalletIDFallback(t *testing.T) {
	txns := []domain.Transaction{
		{
			TransactionID: "t1",
			Type:          domain.Expense,
			Amount:        decimal.NewFromInt(200),
			WalletID:      "cash",
		},
	}

	balance, err := accounting.BalanceOf(txns, "cash")
	require.NoError(t, err)
	assert.True(t, balance.Expense.Equal(decimal.NewFromInt(200)))

	// The legacy reference only applies when the affected set is empty.
	txns[0].AffectedWalletIDs = []string{"other"}
	balance, err = accounting.BalanceOf(txns, "cash")
	require.NoError(t, err)
	assert.True(t, balance.Expense.IsZero())
}

func TestBalanceOf_Transfer(t *testing.T) {
	txns := []domain.Transaction{transfer("t1", "750", "bank", "cash")}

	source, err := accounting.BalanceOf(txns, "bank")
	require.NoError(t, err)
	assert.True(t, source.Expense.Equal(decimal.NewFromInt(750)))
	assert.True(t, source.Income.IsZero())
	assert.True(t, source.Net.Equal(decimal.NewFromInt(-750)))

	destination, err := accounting.BalanceOf(txns, "cash")
	require.NoError(t, err)
	assert.True(t, destination.Income.Equal(decimal.NewFromInt(750)))
	assert.True(t, destination.Expense.IsZero())
	assert.True(t, destination.Net.Equal(decimal.NewFromInt(750)))
}

func TestBalanceOf_MixedLedger(t *testing.T) {
	txns := []domain.Transaction{
		income("t1", "2000", "bank", "salary-pot"),
		expense("t2", "500", "bank", "groceries-pot"),
		transfer("t3", "300", "bank", "cash"),
		income("t4", "100", "cash"),
	}

	balance, err := accounting.BalanceOf(txns, "bank")
	require.NoError(t, err)
	assert.True(t, balance.Income.Equal(decimal.NewFromInt(2000)))
	assert.True(t, balance.Expense.Equal(decimal.NewFromInt(800)))
	assert.True(t, balance.Net.Equal(decimal.NewFromInt(1200)))

	cash, err := accounting.BalanceOf(txns, "cash")
	require.NoError(t, err)
	assert.True(t, cash.Income.Equal(decimal.NewFromInt(400)))
	assert.True(t, cash.Expense.IsZero())
}

func TestBalanceOf_OrderIndependence(t *testing.T) {
	txns := []domain.Transaction{
		income("t1", "2000", "bank", "salary-pot"),
		expense("t2", "500", "bank", "groceries-pot"),
		transfer("t3", "300", "bank", "cash"),
		income("t4", "123.45", "bank"),
		expense("t5", "0.55", "bank"),
	}

	want, err := accounting.BalanceOf(txns, "bank")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]domain.Transaction, len(txns))
		copy(shuffled, txns)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got, err := accounting.BalanceOf(shuffled, "bank")
		require.NoError(t, err)
		assert.True(t, got.Net.Equal(want.Net))
		assert.True(t, got.Income.Equal(want.Income))
		assert.True(t, got.Expense.Equal(want.Expense))
	}
}

func TestBalanceOf_ZeroAmountAllowed(t *testing.T) {
	txns := []domain.Transaction{income("t1", "0", "bank")}

	balance, err := accounting.BalanceOf(txns, "bank")
	require.NoError(t, err)
	assert.True(t, balance.Income.IsZero())
}

func TestBalanceOf_InvalidTransactions(t *testing.T) {
	cases := []struct {
		name string
		txn  domain.Transaction
	}{
		{
			name: "negative amount",
			txn: domain.Transaction{
				TransactionID: "bad",
				Type:          domain.Income,
				Amount:        decimal.NewFromInt(-10),
				WalletID:      "bank",
			},
		},
		{
			name: "transfer missing endpoint",
			txn: domain.Transaction{
				TransactionID:  "bad",
				Type:           domain.Transfer,
				Amount:         decimal.NewFromInt(10),
				SourceWalletID: "bank",
			},
		},
		{
			name: "transfer to itself",
			txn: domain.Transaction{
				TransactionID:       "bad",
				Type:                domain.Transfer,
				Amount:              decimal.NewFromInt(10),
				SourceWalletID:      "bank",
				DestinationWalletID: "bank",
			},
		},
		{
			name: "unknown type",
			txn: domain.Transaction{
				TransactionID: "bad",
				Type:          domain.TransactionType("REFUND"),
				Amount:        decimal.NewFromInt(10),
				WalletID:      "bank",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := accounting.BalanceOf([]domain.Transaction{tc.txn}, "bank")

			var invalid *accounting.InvalidTransactionError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, "bad", invalid.TransactionID)
		})
	}
}

func TestBalanceOf_InvalidTransactionFailsEvenWhenUnrelated(t *testing.T) {
	// A malformed record is a data-integrity bug; it fails the whole
	// calculation even when it does not touch the queried wallet.
	txns := []domain.Transaction{
		income("t1", "100", "bank"),
		{
			TransactionID: "bad",
			Type:          domain.Income,
			Amount:        decimal.NewFromInt(-1),
			WalletID:      "other",
		},
	}

	_, err := accounting.BalanceOf(txns, "bank")
	var invalid *accounting.InvalidTransactionError
	require.ErrorAs(t, err, &invalid)
}

func TestNetBalanceOf_IsIncomeMinusExpense(t *testing.T) {
	txns := []domain.Transaction{
		income("t1", "100.10", "bank"),
		expense("t2", "40.05", "bank"),
	}

	net, err := accounting.NetBalanceOf(txns, "bank")
	require.NoError(t, err)

	in, err := accounting.IncomeOf(txns, "bank")
	require.NoError(t, err)
	out, err := accounting.ExpenseOf(txns, "bank")
	require.NoError(t, err)

	assert.True(t, net.Equal(in.Sub(out)))
	assert.True(t, net.Equal(decimal.RequireFromString("60.05")))
}
