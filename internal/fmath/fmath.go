// SPDX-License-Identifier: Unlicense OR MIT

// Package fmath contains the scalar helpers shared by the geometry types.
package fmath

import "golang.org/x/exp/constraints"

// Number is the set of scalar types Clamp accepts.
type Number interface {
	constraints.Integer | constraints.Float
}

// Scale maps v linearly from the range [fromMin, fromMax] to [0, 1].
// Values outside the range map outside [0, 1]. An empty range
// (fromMin == fromMax) maps every v to 0.
func Scale[T constraints.Float](v, fromMin, fromMax T) T {
	d := fromMax - fromMin
	if d == 0 {
		return 0
	}
	return (v - fromMin) / d
}

// Clamp bounds v to the closed range between min and max. The bounds
// may be given in either order; Clamp(v, 5, 1) is Clamp(v, 1, 5).
func Clamp[T Number](v, min, max T) T {
	if min > max {
		min, max = max, min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
