// Package rebalancing derives buy/sell/hold trade proposals from a current
// portfolio snapshot and a target allocation. The calculation is a pure
// function of its inputs: no I/O, no state, no mutation of arguments.
package rebalancing

import (
	"math"
	"sort"

	"github.com/SongChangseok/stock-dashboard/internal/domain"
)

// commissionCostRatioLimit is the fraction of traded notional above which
// commission cost makes a trade uneconomical. Fixed, not configurable.
const commissionCostRatioLimit = 0.10

// Calculate compares the current portfolio against the target allocation and
// produces a per-stock trade proposal plus aggregate totals.
//
// Stocks are matched by stock key (ticker, else name). A stock present on
// only one side still gets a calculation row with the other side's values
// zeroed. Target values are always expressed against the current total
// value: rebalancing reallocates existing value, so the total target value
// equals the total current value by construction.
//
// Degenerate inputs (empty portfolio, zero prices, zero total value) never
// produce an error; the affected fields degrade to zero instead.
func Calculate(current domain.PortfolioSnapshot, target domain.TargetSet, opts Options) Result {
	opts = opts.withDefaults()

	holdingsByKey := make(map[string]domain.Holding, len(current.Holdings))
	targetsByKey := make(map[string]domain.TargetEntry, len(target.Entries))

	// Ordered union of stock keys: current holdings in insertion order,
	// then target-only keys in their own order. Keeping the union ordered
	// makes tie-breaking in the final sort deterministic.
	keys := make([]string, 0, len(current.Holdings)+len(target.Entries))
	seen := make(map[string]bool, len(current.Holdings)+len(target.Entries))

	for _, h := range current.Holdings {
		key := h.Key()
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
		holdingsByKey[key] = h
	}
	for _, e := range target.Entries {
		key := e.Key()
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
		targetsByKey[key] = e
	}

	totalValue := current.TotalValue

	calculations := make([]Calculation, 0, len(keys))
	totalBuy := 0.0
	totalSell := 0.0

	for _, key := range keys {
		holding, held := holdingsByKey[key]
		entry, targeted := targetsByKey[key]

		calc := Calculation{MinTradingUnit: opts.MinimumTradingUnit}

		currentPrice := 0.0
		if held {
			calc.StockName = holding.Name
			calc.Ticker = holding.Ticker
			calc.CurrentQuantity = holding.Quantity
			calc.CurrentValue = holding.TotalValue()
			currentPrice = holding.CurrentPrice
		} else {
			calc.StockName = entry.Name
			calc.Ticker = entry.Ticker
		}
		if targeted {
			calc.TargetWeight = entry.TargetWeight
		}

		if totalValue > 0 {
			calc.CurrentWeight = calc.CurrentValue / totalValue * 100
		}
		calc.TargetValue = calc.TargetWeight / 100 * totalValue
		calc.Difference = calc.CurrentWeight - calc.TargetWeight

		// Hold inside the threshold band, inclusive at the boundary.
		calc.Action = ActionHold
		if math.Abs(calc.Difference) > opts.RebalanceThreshold {
			if calc.Difference > 0 {
				calc.Action = ActionSell
			} else {
				calc.Action = ActionBuy
			}
		}

		// Raw trade size. A target-only stock has no known price, so its
		// action is asserted without a size (a documented limitation: the
		// caller needs an external price to size the trade).
		if calc.Action != ActionHold && currentPrice > 0 {
			calc.QuantityChange = (calc.TargetValue - calc.CurrentValue) / currentPrice
		}
		calc.ValueChange = calc.QuantityChange * currentPrice

		calc.AdjustedQuantityChange = calc.QuantityChange
		if !opts.AllowPartialShares && calc.QuantityChange != 0 {
			// Round the magnitude down to a whole number of trading
			// units, keeping the sign implied by the action. Changes
			// below one unit become zero-size trades.
			unit := float64(opts.MinimumTradingUnit)
			magnitude := math.Floor(math.Abs(calc.QuantityChange)/unit) * unit
			if calc.Action == ActionSell {
				magnitude = -magnitude
			}
			calc.AdjustedQuantityChange = magnitude
		}
		calc.AdjustedValueChange = calc.AdjustedQuantityChange * currentPrice

		if opts.ConsiderCommission && calc.AdjustedQuantityChange != 0 {
			cost := math.Abs(calc.AdjustedQuantityChange) * opts.Commission
			notional := math.Abs(calc.AdjustedValueChange)
			if notional > 0 && cost > notional*commissionCostRatioLimit {
				calc.AdjustedQuantityChange = 0
				calc.AdjustedValueChange = 0
				calc.Action = ActionHold
			}
		}

		if calc.AdjustedValueChange > 0 {
			totalBuy += calc.AdjustedValueChange
		} else {
			totalSell += -calc.AdjustedValueChange
		}

		calculations = append(calculations, calc)
	}

	// Largest deviations first; stable so equal deviations keep the
	// ordered-union iteration order.
	sort.SliceStable(calculations, func(i, j int) bool {
		return math.Abs(calculations[i].Difference) > math.Abs(calculations[j].Difference)
	})

	hasSignificant := false
	for _, calc := range calculations {
		if math.Abs(calc.Difference) > opts.RebalanceThreshold {
			hasSignificant = true
			break
		}
	}

	return Result{
		Calculations:        calculations,
		TotalCurrentValue:   totalValue,
		TotalTargetValue:    totalValue,
		TotalRebalanceValue: math.Abs(totalBuy - totalSell),
		TotalBuyValue:       totalBuy,
		TotalSellValue:      totalSell,
		IsBalanced:          !hasSignificant,
		HasSignificantDiffs: hasSignificant,
		RebalanceThreshold:  opts.RebalanceThreshold,
	}
}
