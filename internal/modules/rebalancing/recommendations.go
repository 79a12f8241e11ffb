package rebalancing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Recommendations renders a result as human-readable trade suggestions.
// Buy lines come first, then sell lines, each in the result's existing
// order (largest weight deviation first), followed by the total
// rebalancing value when there is one.
func Recommendations(result Result) []string {
	if result.IsBalanced {
		return []string{"Your portfolio is well balanced. No rebalancing needed."}
	}

	var buys, sells []Calculation
	for _, calc := range result.Calculations {
		switch {
		case calc.AdjustedQuantityChange > 0:
			buys = append(buys, calc)
		case calc.AdjustedQuantityChange < 0:
			sells = append(sells, calc)
		}
	}

	var lines []string
	if len(buys) > 0 {
		lines = append(lines, "Consider buying:")
		for _, calc := range buys {
			lines = append(lines, fmt.Sprintf("  %s: %s shares (%s)",
				displayName(calc),
				formatQuantity(calc.AdjustedQuantityChange),
				formatCurrency(calc.AdjustedValueChange)))
		}
	}
	if len(sells) > 0 {
		lines = append(lines, "Consider selling:")
		for _, calc := range sells {
			lines = append(lines, fmt.Sprintf("  %s: %s shares (%s)",
				displayName(calc),
				formatQuantity(-calc.AdjustedQuantityChange),
				formatCurrency(-calc.AdjustedValueChange)))
		}
	}
	if result.TotalRebalanceValue > 0 {
		lines = append(lines, fmt.Sprintf("Total rebalancing value: %s",
			formatCurrency(result.TotalRebalanceValue)))
	}

	return lines
}

func displayName(calc Calculation) string {
	if calc.Ticker != "" {
		return calc.Ticker
	}
	return calc.StockName
}

// formatQuantity drops insignificant trailing zeros (10, not 10.000000)
func formatQuantity(quantity float64) string {
	return strconv.FormatFloat(quantity, 'f', -1, 64)
}

// formatCurrency renders a dollar amount with thousands separators
func formatCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = math.Abs(amount)
	}

	whole := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(whole, ".", 2)

	digits := parts[0]
	var grouped []string
	for len(digits) > 3 {
		grouped = append([]string{digits[len(digits)-3:]}, grouped...)
		digits = digits[:len(digits)-3]
	}
	grouped = append([]string{digits}, grouped...)

	return fmt.Sprintf("%s$%s.%s", sign, strings.Join(grouped, ","), parts[1])
}
