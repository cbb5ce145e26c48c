// Package mathx holds small generic numeric helpers.
package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. Swapped bounds are accepted.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Scale maps x in [0, inMax] onto [0, outMax], rounding down. x above inMax
// yields outMax; a zero inMax yields 0.
func Scale[T constraints.Unsigned](x, inMax, outMax T) T {
	if inMax == 0 {
		return 0
	}
	if x >= inMax {
		return outMax
	}
	return T(uint64(x) * uint64(outMax) / uint64(inMax))
}
