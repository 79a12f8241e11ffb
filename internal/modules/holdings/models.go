package holdings

// HoldingInput is the request payload for creating or updating a holding
type HoldingInput struct {
	Name          string  `json:"name"`
	Ticker        string  `json:"ticker"`
	Quantity      float64 `json:"quantity"`
	PurchasePrice float64 `json:"purchase_price"`
	CurrentPrice  float64 `json:"current_price"`
}

// HoldingWeight is one holding's share of the portfolio
type HoldingWeight struct {
	StockName string  `json:"stock_name"`
	Ticker    string  `json:"ticker,omitempty"`
	Value     float64 `json:"value"`
	Weight    float64 `json:"weight"`
}

// Summary aggregates the portfolio for the dashboard header
type Summary struct {
	TotalValue           float64         `json:"total_value"`
	TotalCost            float64         `json:"total_cost"`
	TotalProfit          float64         `json:"total_profit"`
	ProfitPercent        float64         `json:"profit_percent"`
	HoldingCount         int             `json:"holding_count"`
	AveragePositionValue float64         `json:"average_position_value"`
	LargestWeight        float64         `json:"largest_weight"`
	Weights              []HoldingWeight `json:"weights"`
}
