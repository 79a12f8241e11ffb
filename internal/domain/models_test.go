package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockKey(t *testing.T) {
	tests := []struct {
		name   string
		ticker string
		stock  string
		want   string
	}{
		{name: "ticker wins", ticker: "AAPL", stock: "Apple", want: "AAPL"},
		{name: "name fallback", ticker: "", stock: "Apple", want: "Apple"},
		{name: "both empty", ticker: "", stock: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StockKey(tt.ticker, tt.stock))
		})
	}
}

func TestHoldingDerivedValues(t *testing.T) {
	h := Holding{Quantity: 10, PurchasePrice: 90, CurrentPrice: 150}

	assert.Equal(t, 1500.0, h.TotalValue())
	assert.Equal(t, 900.0, h.TotalCost())
}

func TestNewPortfolioSnapshot(t *testing.T) {
	snapshot := NewPortfolioSnapshot([]Holding{
		{Quantity: 10, PurchasePrice: 90, CurrentPrice: 150},
		{Quantity: 5, PurchasePrice: 200, CurrentPrice: 300},
	})

	assert.Equal(t, 3000.0, snapshot.TotalValue)
	assert.Equal(t, 1900.0, snapshot.TotalCost)
	assert.Len(t, snapshot.Holdings, 2)
}

func TestNewPortfolioSnapshot_Empty(t *testing.T) {
	snapshot := NewPortfolioSnapshot(nil)

	assert.Zero(t, snapshot.TotalValue)
	assert.Zero(t, snapshot.TotalCost)
	assert.Empty(t, snapshot.Holdings)
}

func TestNewTargetSet(t *testing.T) {
	set := NewTargetSet([]TargetEntry{
		{Name: "Apple", Ticker: "AAPL", TargetWeight: 70},
		{Name: "Microsoft", Ticker: "MSFT", TargetWeight: 30},
	})

	assert.Equal(t, 100.0, set.TotalWeight)
	assert.Len(t, set.Entries, 2)
}
