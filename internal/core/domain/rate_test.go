package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
)

func TestDefaultPeriod(t *testing.T) {
	p := domain.DefaultPeriod()
	assert.True(t, p.IsDefault())
	assert.Empty(t, p.Month())
	assert.Equal(t, "default", p.String())

	// The zero value is the default period.
	var zero domain.Period
	assert.Equal(t, zero, p)
}

func TestMonthPeriod(t *testing.T) {
	p, err := domain.MonthPeriod("2025-03")
	require.NoError(t, err)
	assert.False(t, p.IsDefault())
	assert.Equal(t, "2025-03", p.Month())
	assert.Equal(t, "2025-03", p.String())
}

func TestMonthPeriod_Invalid(t *testing.T) {
	for _, month := range []string{"", "2025", "2025-13", "2025-00", "2025-1", "march", "2025-03-01"} {
		_, err := domain.MonthPeriod(month)
		assert.Error(t, err, "month %q", month)
	}
}

func TestPeriod_JSONRoundTrip(t *testing.T) {
	monthly, err := domain.MonthPeriod("2025-06")
	require.NoError(t, err)

	for _, tc := range []struct {
		period  domain.Period
		encoded string
	}{
		{domain.DefaultPeriod(), `"default"`},
		{monthly, `"2025-06"`},
	} {
		data, err := json.Marshal(tc.period)
		require.NoError(t, err)
		assert.Equal(t, tc.encoded, string(data))

		var decoded domain.Period
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, tc.period, decoded)
	}

	// The empty string decodes to the default slot.
	var fromEmpty domain.Period
	require.NoError(t, json.Unmarshal([]byte(`""`), &fromEmpty))
	assert.True(t, fromEmpty.IsDefault())

	var invalid domain.Period
	assert.Error(t, json.Unmarshal([]byte(`"2025-13"`), &invalid))
}

func TestPeriod_Comparable(t *testing.T) {
	a, err := domain.MonthPeriod("2025-01")
	require.NoError(t, err)
	b, err := domain.MonthPeriod("2025-01")
	require.NoError(t, err)
	c, err := domain.MonthPeriod("2025-02")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, domain.DefaultPeriod())
}
