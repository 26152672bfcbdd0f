package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentage(t *testing.T) {
	assert.Equal(t, "45.0%", Allocation(decimal.RequireFromString("0.45")))
	assert.Equal(t, "5.0%", Allocation(decimal.RequireFromString("0.05")))
	assert.Equal(t, "45%", WholePercent(decimal.RequireFromString("0.45")))
	assert.Equal(t, "33.33%", Percentage(decimal.RequireFromString("0.33333"), 2))
}

func TestFee(t *testing.T) {
	assert.Equal(t, "0.75%", Fee(decimal.RequireFromString("0.75")))
	assert.Equal(t, "0.05%", Fee(decimal.RequireFromString("0.05")))
}

func TestRatio(t *testing.T) {
	assert.Equal(t, "85% / 15%", Ratio(85, 15))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "1,234,567", Number(1234567))
	assert.Equal(t, "42", Number(42))
}

func TestCurrency(t *testing.T) {
	got, err := Currency(decimal.RequireFromString("1250.4"), "USD")
	require.NoError(t, err)
	assert.Equal(t, "$1,250", got)

	got, err = Currency(decimal.RequireFromString("-99.5"), "EUR")
	require.NoError(t, err)
	assert.Equal(t, "-€100", got)

	got, err = Currency(decimal.NewFromInt(5000), "CHF")
	require.NoError(t, err)
	assert.Equal(t, "CHF 5,000", got)

	_, err = Currency(decimal.NewFromInt(1), "NOPE")
	assert.Error(t, err)
}

func TestRiskLevel(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, "Very Low"},
		{1, "Very Low"},
		{2, "Low"},
		{3, "Medium"},
		{4, "High"},
		{5, "Very High"},
		{9, "Very High"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RiskLevel(tt.level), "level %d", tt.level)
	}
}

func TestColorForValue(t *testing.T) {
	assert.Equal(t, "hsl(120, 70%, 50%)", ColorForValue(1, 1, 5))
	assert.Equal(t, "hsl(60, 70%, 50%)", ColorForValue(3, 1, 5))
	assert.Equal(t, "hsl(0, 70%, 50%)", ColorForValue(5, 1, 5))
	assert.Equal(t, "hsl(0, 70%, 50%)", ColorForValue(10, 1, 5), "clamped above max")
	assert.Equal(t, "hsl(120, 70%, 50%)", ColorForValue(3, 3, 3), "degenerate range")
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Renewable Energy", TitleCase("renewable ENERGY"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10, "..."))
	assert.Equal(t, "Energy-smart...", Truncate("Energy-smart grid infrastructure", 15, "..."))
	assert.Equal(t, "…", Truncate("anything", 1, "…"))
}
