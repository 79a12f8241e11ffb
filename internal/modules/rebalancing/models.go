package rebalancing

// Action is the trade decision for a single stock
type Action string

const (
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
	ActionHold Action = "hold"
)

// Calculation holds the per-stock rebalancing derivation
type Calculation struct {
	StockName       string  `json:"stock_name"`
	Ticker          string  `json:"ticker,omitempty"`
	CurrentQuantity float64 `json:"current_quantity"`
	CurrentWeight   float64 `json:"current_weight"`
	TargetWeight    float64 `json:"target_weight"`
	CurrentValue    float64 `json:"current_value"`
	TargetValue     float64 `json:"target_value"`
	// Difference is current weight minus target weight; positive means
	// overweight, negative means underweight.
	Difference float64 `json:"difference"`
	Action     Action  `json:"action"`
	// QuantityChange and ValueChange are the raw trade sizes before
	// unit rounding and commission filtering.
	QuantityChange float64 `json:"quantity_change"`
	ValueChange    float64 `json:"value_change"`
	MinTradingUnit int     `json:"min_trading_unit"`
	// AdjustedQuantityChange and AdjustedValueChange are the trade sizes
	// after unit rounding and commission filtering. Positive means buy,
	// negative means sell.
	AdjustedQuantityChange float64 `json:"adjusted_quantity_change"`
	AdjustedValueChange    float64 `json:"adjusted_value_change"`
}

// Result is the full output of a rebalancing calculation, ordered by
// descending absolute weight difference
type Result struct {
	Calculations        []Calculation `json:"calculations"`
	TotalCurrentValue   float64       `json:"total_current_value"`
	TotalTargetValue    float64       `json:"total_target_value"`
	TotalRebalanceValue float64       `json:"total_rebalance_value"`
	TotalBuyValue       float64       `json:"total_buy_value"`
	TotalSellValue      float64       `json:"total_sell_value"`
	IsBalanced          bool          `json:"is_balanced"`
	HasSignificantDiffs bool          `json:"has_significant_differences"`
	RebalanceThreshold  float64       `json:"rebalance_threshold"`
}

// Validation is the output of the self-check pass over a result
type Validation struct {
	IsValid bool     `json:"is_valid"`
	Issues  []string `json:"issues"`
}
