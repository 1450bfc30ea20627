package currency_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletforge/wallet_tracker_backend/internal/apperrors"
	"github.com/walletforge/wallet_tracker_backend/internal/core/currency"
)

func TestLookup_StandardCurrency(t *testing.T) {
	usd, err := currency.Lookup("USD")
	require.NoError(t, err)
	assert.Equal(t, "USD", usd.Code)
	assert.Equal(t, "$", usd.Symbol)
	assert.Equal(t, 2, usd.Precision)
	assert.Equal(t, currency.Standard, usd.Category)
}

func TestLookup_ZeroDecimalCurrency(t *testing.T) {
	jpy, err := currency.Lookup("JPY")
	require.NoError(t, err)
	assert.Equal(t, 0, jpy.Precision)
	assert.Equal(t, currency.Standard, jpy.Category)
}

func TestLookup_PreciousMetal(t *testing.T) {
	gold, err := currency.Lookup("XAU")
	require.NoError(t, err)
	assert.Equal(t, 3, gold.Precision)
	assert.Equal(t, currency.PreciousMetal, gold.Category)
}

func TestLookup_Cryptocurrency(t *testing.T) {
	btc, err := currency.Lookup("BTC")
	require.NoError(t, err)
	assert.Equal(t, 8, btc.Precision)
	assert.Equal(t, currency.Cryptocurrency, btc.Category)
}

func TestLookup_UnknownCurrency(t *testing.T) {
	_, err := currency.Lookup("ZZZ")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)
}

func TestIsKnown(t *testing.T) {
	assert.True(t, currency.IsKnown("EUR"))
	assert.True(t, currency.IsKnown("ETH"))
	assert.False(t, currency.IsKnown("ZZZ"))
	assert.False(t, currency.IsKnown(""))
}

func TestList_SortedAndComplete(t *testing.T) {
	all := currency.List()
	require.NotEmpty(t, all)

	codes := make([]string, len(all))
	for i, c := range all {
		codes[i] = c.Code
	}
	assert.True(t, sort.StringsAreSorted(codes))

	// Every listed currency must resolve through Lookup.
	for _, c := range all {
		got, err := currency.Lookup(c.Code)
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}
