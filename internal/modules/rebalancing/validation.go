package rebalancing

import (
	"fmt"
	"math"
	"strings"
)

const (
	// weightSumTolerance is the allowed absolute deviation of summed
	// target weights from 100.
	weightSumTolerance = 0.01

	// gradualRebalanceRatio is the fraction of portfolio value above
	// which a rebalance is flagged as too large for a single pass.
	gradualRebalanceRatio = 0.5
)

// Validate runs a self-check pass over a computed result. Issues are
// advisory: they are returned, never raised, and the result is not
// modified. Safe to call on results from empty portfolios.
func Validate(result Result) Validation {
	issues := []string{}

	if len(result.Calculations) > 0 {
		totalWeight := 0.0
		for _, calc := range result.Calculations {
			totalWeight += calc.TargetWeight
		}
		if math.Abs(totalWeight-100) > weightSumTolerance {
			issues = append(issues, fmt.Sprintf(
				"Target weights total %.2f%% instead of 100%%", totalWeight))
		}
	}

	// Quantity derivation and unit rounding do not clamp against the
	// available quantity, so a sell can overdraw a position.
	var overdrawn []string
	for _, calc := range result.Calculations {
		if calc.CurrentQuantity+calc.AdjustedQuantityChange < 0 {
			overdrawn = append(overdrawn, calc.StockName)
		}
	}
	if len(overdrawn) > 0 {
		issues = append(issues, fmt.Sprintf(
			"Sell quantity exceeds current position for: %s",
			strings.Join(overdrawn, ", ")))
	}

	if result.TotalRebalanceValue > result.TotalCurrentValue*gradualRebalanceRatio {
		issues = append(issues,
			"Rebalancing moves more than half the portfolio value; consider rebalancing gradually across several sessions")
	}

	return Validation{
		IsValid: len(issues) == 0,
		Issues:  issues,
	}
}
