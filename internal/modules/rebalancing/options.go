package rebalancing

// Options configures a rebalancing calculation
type Options struct {
	// MinimumTradingUnit is the smallest tradeable increment. Trade
	// quantities are rounded down to multiples of this unit unless
	// AllowPartialShares is set.
	MinimumTradingUnit int `json:"minimum_trading_unit"`

	// RebalanceThreshold is the minimum absolute weight deviation (in
	// percentage points) that triggers a buy or sell. Deviations at or
	// below the threshold produce a hold.
	RebalanceThreshold float64 `json:"rebalance_threshold"`

	// AllowPartialShares disables minimum-unit rounding
	AllowPartialShares bool `json:"allow_partial_shares"`

	// Commission is the transaction cost per traded unit
	Commission float64 `json:"commission"`

	// ConsiderCommission enables suppression of trades whose commission
	// cost makes them uneconomical
	ConsiderCommission bool `json:"consider_commission"`
}

// DefaultOptions returns the documented option defaults
func DefaultOptions() Options {
	return Options{
		MinimumTradingUnit: 1,
		RebalanceThreshold: 5.0,
		AllowPartialShares: false,
		Commission:         0,
		ConsiderCommission: false,
	}
}

// withDefaults replaces out-of-range fields with their defaults so the
// calculation never divides or rounds by a non-positive unit
func (o Options) withDefaults() Options {
	if o.MinimumTradingUnit < 1 {
		o.MinimumTradingUnit = 1
	}
	if o.RebalanceThreshold < 0 {
		o.RebalanceThreshold = 5.0
	}
	if o.Commission < 0 {
		o.Commission = 0
	}
	return o
}
