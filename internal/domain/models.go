package domain

import "time"

// Holding represents a single owned position in the portfolio
type Holding struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Ticker        string    `json:"ticker,omitempty"`
	Quantity      float64   `json:"quantity"`
	PurchasePrice float64   `json:"purchase_price"`
	CurrentPrice  float64   `json:"current_price"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TotalValue returns the market value of the holding
func (h Holding) TotalValue() float64 {
	return h.Quantity * h.CurrentPrice
}

// TotalCost returns the cost basis of the holding
func (h Holding) TotalCost() float64 {
	return h.Quantity * h.PurchasePrice
}

// Key returns the stock key used to match this holding to a target entry
func (h Holding) Key() string {
	return StockKey(h.Ticker, h.Name)
}

// PortfolioSnapshot is an ordered collection of holdings with precomputed
// totals. Totals are fixed when the snapshot is built; consumers do not
// recompute them from the holdings.
type PortfolioSnapshot struct {
	Holdings   []Holding `json:"holdings"`
	TotalValue float64   `json:"total_value"`
	TotalCost  float64   `json:"total_cost"`
}

// NewPortfolioSnapshot builds a snapshot from holdings, summing value and cost
func NewPortfolioSnapshot(holdings []Holding) PortfolioSnapshot {
	snapshot := PortfolioSnapshot{Holdings: holdings}
	for _, h := range holdings {
		snapshot.TotalValue += h.TotalValue()
		snapshot.TotalCost += h.TotalCost()
	}
	return snapshot
}

// TargetEntry represents one line of a target allocation
type TargetEntry struct {
	Name         string  `json:"name"`
	Ticker       string  `json:"ticker,omitempty"`
	TargetWeight float64 `json:"target_weight"`
}

// Key returns the stock key used to match this entry to a holding
func (e TargetEntry) Key() string {
	return StockKey(e.Ticker, e.Name)
}

// TargetSet is an ordered collection of target entries. TotalWeight should
// equal 100 but is a soft invariant checked by rebalancing validation,
// not enforced here.
type TargetSet struct {
	Entries     []TargetEntry `json:"entries"`
	TotalWeight float64       `json:"total_weight"`
}

// NewTargetSet builds a target set from entries, summing the total weight
func NewTargetSet(entries []TargetEntry) TargetSet {
	set := TargetSet{Entries: entries}
	for _, e := range entries {
		set.TotalWeight += e.TargetWeight
	}
	return set
}

// StockKey derives the identity used to match holdings to target entries:
// the ticker when present, otherwise the display name. Two stocks with the
// same name but different tickers are therefore never merged.
func StockKey(ticker, name string) string {
	if ticker != "" {
		return ticker
	}
	return name
}
