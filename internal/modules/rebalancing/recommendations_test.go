package rebalancing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SongChangseok/stock-dashboard/internal/domain"
)

func TestRecommendations_Balanced(t *testing.T) {
	result := Result{IsBalanced: true}

	lines := Recommendations(result)

	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "balanced")
}

func TestRecommendations_BuysThenSellsThenTotal(t *testing.T) {
	snapshot := domain.NewPortfolioSnapshot([]domain.Holding{
		holding("Apple", "AAPL", 10, 150),   // 1500
		holding("Microsoft", "MSFT", 5, 300), // 1500
	})
	target := domain.NewTargetSet([]domain.TargetEntry{
		entry("Apple", "AAPL", 80),
		entry("Microsoft", "MSFT", 20),
	})

	result := Calculate(snapshot, target, DefaultOptions())
	lines := Recommendations(result)

	require.NotEmpty(t, lines)

	buyIdx, sellIdx := -1, -1
	for i, line := range lines {
		if strings.HasPrefix(line, "Consider buying") {
			buyIdx = i
		}
		if strings.HasPrefix(line, "Consider selling") {
			sellIdx = i
		}
	}
	require.GreaterOrEqual(t, buyIdx, 0, "expected a buy heading")
	require.Greater(t, sellIdx, buyIdx, "sells must follow buys")

	assert.Contains(t, lines[buyIdx+1], "AAPL")
	assert.Contains(t, lines[buyIdx+1], "6 shares")
	assert.Contains(t, lines[buyIdx+1], "$900.00")

	assert.Contains(t, lines[sellIdx+1], "MSFT")
	assert.Contains(t, lines[sellIdx+1], "3 shares")
	assert.Contains(t, lines[sellIdx+1], "$900.00")
}

func TestRecommendations_TotalLineOnlyWhenNonZero(t *testing.T) {
	// Buy and sell legs cancel exactly, leaving a zero net rebalance value
	snapshot := domain.NewPortfolioSnapshot([]domain.Holding{
		holding("Apple", "AAPL", 10, 150),
		holding("Microsoft", "MSFT", 5, 300),
	})
	target := domain.NewTargetSet([]domain.TargetEntry{
		entry("Apple", "AAPL", 70),
		entry("Microsoft", "MSFT", 30),
	})

	result := Calculate(snapshot, target, DefaultOptions())
	require.Zero(t, result.TotalRebalanceValue)

	for _, line := range Recommendations(result) {
		assert.NotContains(t, line, "Total rebalancing value")
	}
}

func TestRecommendations_SuppressedTradesAreOmitted(t *testing.T) {
	// Unbalanced but every trade zeroed out: headings and lines are
	// skipped entirely, only no total line remains.
	result := Result{
		IsBalanced: false,
		Calculations: []Calculation{
			{StockName: "Penny", Ticker: "PNY", Difference: 20, Action: ActionHold},
		},
	}

	lines := Recommendations(result)
	assert.Empty(t, lines)
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{600, "$600.00"},
		{1234.5, "$1,234.50"},
		{1234567.891, "$1,234,567.89"},
		{-950.25, "-$950.25"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatCurrency(tt.amount))
	}
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "10", formatQuantity(10))
	assert.Equal(t, "2.5", formatQuantity(2.5))
}
