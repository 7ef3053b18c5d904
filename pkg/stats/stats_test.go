package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantileLinear(t *testing.T) {
	x := []float64{100, 1, 5, 3, 2, 4}

	assert.Equal(t, 2.25, Quantile(x, 0.25))
	assert.Equal(t, 4.75, Quantile(x, 0.75))
	assert.Equal(t, 3.5, Percentile(x, 50))
	assert.Equal(t, 1.0, Quantile(x, 0))
	assert.Equal(t, 100.0, Quantile(x, 1))
	assert.Equal(t, []float64{100, 1, 5, 3, 2, 4}, x, "input is not reordered")
}

func TestQuantileEdgeCases(t *testing.T) {
	assert.True(t, math.IsNaN(Quantile(nil, 0.25)))
	assert.Equal(t, 7.0, Quantile([]float64{7}, 0.75))
	assert.Equal(t, 2.0, Quantile([]float64{math.NaN(), 1, 3}, 0.5))
}

func TestLerpEndpoints(t *testing.T) {
	assert.Equal(t, 1.0, lerp(1, 3, 0))
	assert.Equal(t, 3.0, lerp(1, 3, 1))
	assert.Equal(t, 2.5, lerp(1, 3, 0.75))
}

func TestIQRBounds(t *testing.T) {
	b := IQRBounds([]float64{1, 2, 3, 4, 5, 100}, DefaultIQRMultiplier)

	assert.Equal(t, 2.25, b.Q1)
	assert.Equal(t, 4.75, b.Q3)
	assert.Equal(t, 2.5, b.IQR())
	assert.Equal(t, -1.5, b.Lower)
	assert.Equal(t, 8.5, b.Upper)
	assert.True(t, b.Contains(8.5))
	assert.True(t, b.Contains(-1.5))
	assert.False(t, b.Contains(100))
	assert.False(t, b.Contains(math.NaN()))
}

func TestIQRBoundsEmpty(t *testing.T) {
	b := IQRBounds(nil, DefaultIQRMultiplier)
	assert.True(t, math.IsNaN(b.Lower))
	assert.False(t, b.Contains(0))
}

func TestMeanMinMax(t *testing.T) {
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.Equal(t, 0.0, Mean(nil))
	min, max := MinMax([]float64{3, -1, 9, 2})
	assert.Equal(t, -1.0, min)
	assert.Equal(t, 9.0, max)
}
