package chart

import (
	"math"

	"golang.org/x/exp/constraints"
)

func ceil[T constraints.Integer | constraints.Float](a T) T {
	return T(math.Ceil(float64(a)))
}

func floor[T constraints.Integer | constraints.Float](a T) T {
	return T(math.Floor(float64(a)))
}

// clamp returns v limited to the closed interval [lo,hi]. If hi < lo, lo wins.
func clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	return max(lo, min(v, hi))
}

// roundInt rounds half away from zero, which matches rounding a
// non-negative fractional index to the nearest bar.
func roundInt[T constraints.Float](a T) int {
	return int(math.Round(float64(a)))
}
