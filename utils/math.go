// Package utils contains numeric helpers and a parallel work grouping primitive.
package utils

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Float64RelAlmostEqual reports whether a and b agree within an absolute or a relative tolerance.
func Float64RelAlmostEqual(a, b, absTol, relTol float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, absTol, relTol)
}

// Math.pow( x, 2 ) is slow, this is faster.
func Square(n float64) float64 {
	return n * n
}

// IsFinite is true when f is neither NaN nor infinite.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
