package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	assert.Equal(t, 6.0, Sum([]float64{1, 2, 3}))
	assert.Zero(t, Sum(nil))
}

func TestMean(t *testing.T) {
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.Zero(t, Mean(nil))
}

func TestMax(t *testing.T) {
	assert.Equal(t, 3.0, Max([]float64{1, 3, 2}))
	assert.Zero(t, Max(nil))
}

func TestWeights(t *testing.T) {
	weights := Weights([]float64{250, 750})

	assert.InDelta(t, 25, weights[0], 1e-9)
	assert.InDelta(t, 75, weights[1], 1e-9)
}

func TestWeights_ZeroTotal(t *testing.T) {
	weights := Weights([]float64{0, 0})

	assert.Equal(t, []float64{0, 0}, weights)
}

func TestProfitPercent(t *testing.T) {
	assert.InDelta(t, 50, ProfitPercent(1500, 1000), 1e-9)
	assert.InDelta(t, -10, ProfitPercent(900, 1000), 1e-9)
	assert.Zero(t, ProfitPercent(1500, 0))
}
