package holdings

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(t *testing.T) *Service {
	t.Helper()
	return NewService(testRepo(t), zerolog.Nop())
}

func TestService_CreateValidation(t *testing.T) {
	svc := testService(t)

	tests := []struct {
		name  string
		input HoldingInput
	}{
		{
			name:  "missing name",
			input: HoldingInput{Quantity: 1, PurchasePrice: 10, CurrentPrice: 10},
		},
		{
			name:  "negative quantity",
			input: HoldingInput{Name: "Apple", Quantity: -1, PurchasePrice: 10, CurrentPrice: 10},
		},
		{
			name:  "zero purchase price",
			input: HoldingInput{Name: "Apple", Quantity: 1, PurchasePrice: 0, CurrentPrice: 10},
		},
		{
			name:  "zero current price",
			input: HoldingInput{Name: "Apple", Quantity: 1, PurchasePrice: 10, CurrentPrice: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(tt.input)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_CreateTrimsWhitespace(t *testing.T) {
	svc := testService(t)

	created, err := svc.Create(HoldingInput{
		Name:          "  Apple ",
		Ticker:        " AAPL ",
		Quantity:      1,
		PurchasePrice: 10,
		CurrentPrice:  10,
	})
	require.NoError(t, err)
	assert.Equal(t, "Apple", created.Name)
	assert.Equal(t, "AAPL", created.Ticker)
}

func TestService_ZeroQuantityIsValid(t *testing.T) {
	// A watchlist-style entry: owned quantity of zero is allowed
	svc := testService(t)

	_, err := svc.Create(HoldingInput{Name: "Apple", Quantity: 0, PurchasePrice: 10, CurrentPrice: 10})
	assert.NoError(t, err)
}

func TestService_Snapshot(t *testing.T) {
	svc := testService(t)

	_, err := svc.Create(HoldingInput{Name: "Apple", Ticker: "AAPL", Quantity: 10, PurchasePrice: 120, CurrentPrice: 150})
	require.NoError(t, err)
	_, err = svc.Create(HoldingInput{Name: "Microsoft", Ticker: "MSFT", Quantity: 5, PurchasePrice: 250, CurrentPrice: 300})
	require.NoError(t, err)

	snapshot, err := svc.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, 3000.0, snapshot.TotalValue) // 1500 + 1500
	assert.Equal(t, 2450.0, snapshot.TotalCost)  // 1200 + 1250
	assert.Len(t, snapshot.Holdings, 2)
}

func TestService_Summarize(t *testing.T) {
	svc := testService(t)

	_, err := svc.Create(HoldingInput{Name: "Apple", Ticker: "AAPL", Quantity: 10, PurchasePrice: 120, CurrentPrice: 150})
	require.NoError(t, err)
	_, err = svc.Create(HoldingInput{Name: "Microsoft", Ticker: "MSFT", Quantity: 5, PurchasePrice: 250, CurrentPrice: 100})
	require.NoError(t, err)

	summary, err := svc.Summarize()
	require.NoError(t, err)

	assert.Equal(t, 2000.0, summary.TotalValue) // 1500 + 500
	assert.Equal(t, 2450.0, summary.TotalCost)
	assert.Equal(t, -450.0, summary.TotalProfit)
	assert.InDelta(t, -18.367, summary.ProfitPercent, 0.001)
	assert.Equal(t, 2, summary.HoldingCount)
	assert.Equal(t, 1000.0, summary.AveragePositionValue)
	assert.InDelta(t, 75, summary.LargestWeight, 1e-9)

	require.Len(t, summary.Weights, 2)
	assert.Equal(t, "AAPL", summary.Weights[0].Ticker)
	assert.InDelta(t, 75, summary.Weights[0].Weight, 1e-9)
	assert.InDelta(t, 25, summary.Weights[1].Weight, 1e-9)
}

func TestService_SummarizeEmpty(t *testing.T) {
	svc := testService(t)

	summary, err := svc.Summarize()
	require.NoError(t, err)

	assert.Zero(t, summary.TotalValue)
	assert.Zero(t, summary.ProfitPercent)
	assert.Zero(t, summary.HoldingCount)
	assert.Empty(t, summary.Weights)
}
