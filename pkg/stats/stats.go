package stats

import (
	"math"
	"sort"
)

// Mean computes the average of a slice.
func Mean(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return sum / float64(n)
}

// MinMax returns the minimum and maximum values in the slice.
func MinMax(x []float64) (float64, float64) {
	if len(x) == 0 {
		return 0, 0
	}
	min, max := x[0], x[0]
	for i := 1; i < len(x); i++ {
		if x[i] < min {
			min = x[i]
		} else if x[i] > max {
			max = x[i]
		}
	}
	return min, max
}

// DropNaN returns the non-NaN values of x (allocates).
func DropNaN(x []float64) []float64 {
	out := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// Quantile returns the q-th quantile (0 <= q <= 1) of x using linear
// interpolation between the closest ranks, ignoring NaN. It returns NaN for
// an empty slice.
func Quantile(x []float64, q float64) float64 {
	cp := DropNaN(x)
	n := len(cp)
	if n == 0 {
		return math.NaN()
	}
	sort.Float64s(cp)
	if q <= 0 {
		return cp[0]
	}
	if q >= 1 {
		return cp[n-1]
	}
	rank := q * float64(n-1)
	lower := int(math.Floor(rank))
	weight := rank - float64(lower)
	if lower+1 >= n {
		return cp[lower]
	}
	return lerp(cp[lower], cp[lower+1], weight)
}

// Percentile returns the p-th percentile (0 <= p <= 100) of x.
func Percentile(x []float64, p float64) float64 {
	return Quantile(x, p/100)
}

// lerp interpolates from the nearer end so that results are exact at both
// endpoints, the same way numpy does.
func lerp(a, b, t float64) float64 {
	diff := b - a
	if t >= 0.5 {
		return b - diff*(1-t)
	}
	return a + diff*t
}
