package stats

import "math"

// DefaultIQRMultiplier is Tukey's fence factor.
const DefaultIQRMultiplier = 1.5

// Bounds are the inclusive limits of the IQR rule for one sample.
type Bounds struct {
	Q1    float64
	Q3    float64
	Lower float64
	Upper float64
}

// IQR returns the interquartile range Q3 - Q1.
func (b Bounds) IQR() float64 { return b.Q3 - b.Q1 }

// Contains reports whether v lies within [Lower, Upper]. NaN never does.
func (b Bounds) Contains(v float64) bool {
	return v >= b.Lower && v <= b.Upper
}

// IQRBounds computes Q1 - k*IQR and Q3 + k*IQR for x. For an empty sample
// every field is NaN and Contains rejects everything.
func IQRBounds(x []float64, k float64) Bounds {
	q1 := Quantile(x, 0.25)
	q3 := Quantile(x, 0.75)
	if math.IsNaN(q1) || math.IsNaN(q3) {
		nan := math.NaN()
		return Bounds{Q1: nan, Q3: nan, Lower: nan, Upper: nan}
	}
	iqr := q3 - q1
	return Bounds{
		Q1:    q1,
		Q3:    q3,
		Lower: q1 - k*iqr,
		Upper: q3 + k*iqr,
	}
}
