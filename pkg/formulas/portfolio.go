// Package formulas provides the numeric helpers behind the portfolio
// summary endpoints.
package formulas

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sum returns the total of the values, 0 for an empty slice
func Sum(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Sum(values)
}

// Mean returns the arithmetic mean of the values, 0 for an empty slice
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// Max returns the largest value, 0 for an empty slice
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Max(values)
}

// Weights converts values into percentages of their total. When the total
// is not positive every weight is 0.
func Weights(values []float64) []float64 {
	weights := make([]float64, len(values))
	total := Sum(values)
	if total <= 0 {
		return weights
	}
	for i, v := range values {
		weights[i] = v / total * 100
	}
	return weights
}

// ProfitPercent returns profit relative to cost as a percentage, 0 when
// there is no cost basis
func ProfitPercent(value, cost float64) float64 {
	if cost <= 0 {
		return 0
	}
	return (value - cost) / cost * 100
}
