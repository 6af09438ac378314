// SPDX-License-Identifier: Unlicense OR MIT

/*
Package f64 implements a float64 two dimensional vector, Vector2, and
a rectangle spanned by two corner vectors, Rect.

The coordinate space has the origin in the top left corner with the
axes extending right and down. Up is therefore (0, -1).

All values are immutable: every method takes a value receiver and
returns a new value.
*/
package f64

import (
	"math"
	"strconv"

	"geom/internal/fmath"
)

// A Vector2 is a two dimensional point or displacement.
type Vector2 struct {
	X, Y float64
}

// XYer is implemented by values that expose two dimensional
// coordinates.
type XYer interface {
	XY() (x, y float64)
}

// Pt is shorthand for Vector2{X: x, Y: y}.
func Pt(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Zero returns (0, 0).
func Zero() Vector2 { return Vector2{} }

// One returns (1, 1).
func One() Vector2 { return Vector2{X: 1, Y: 1} }

// NegativeOne returns (-1, -1).
func NegativeOne() Vector2 { return Vector2{X: -1, Y: -1} }

// Up returns (0, -1).
func Up() Vector2 { return Vector2{Y: -1} }

// Down returns (0, 1).
func Down() Vector2 { return Vector2{Y: 1} }

// Left returns (-1, 0).
func Left() Vector2 { return Vector2{X: -1} }

// Right returns (1, 0).
func Right() Vector2 { return Vector2{X: 1} }

// Min returns whichever of a and b has the smaller sum of absolute
// components. Ties return a.
func Min(a, b Vector2) Vector2 {
	if a.manhattan() <= b.manhattan() {
		return a
	}
	return b
}

// Max returns whichever of a and b has the larger sum of absolute
// components. Ties return a.
func Max(a, b Vector2) Vector2 {
	if a.manhattan() >= b.manhattan() {
		return a
	}
	return b
}

func (p Vector2) manhattan() float64 {
	a := p.Abs()
	return a.X + a.Y
}

// XY implements XYer.
func (p Vector2) XY() (x, y float64) {
	return p.X, p.Y
}

// EulerAngleRadians returns atan(Y/X), in the range (-π/2, π/2). The
// angle of a vector with X == 0 is 0.
func (p Vector2) EulerAngleRadians() float64 {
	if p.X == 0 {
		return 0
	}
	return math.Atan(p.Y / p.X)
}

// EulerAngleDegrees is EulerAngleRadians in degrees.
func (p Vector2) EulerAngleDegrees() float64 {
	return p.EulerAngleRadians() * 180 / math.Pi
}

// MagnitudeSquare returns X²+Y².
func (p Vector2) MagnitudeSquare() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Magnitude returns the euclidean length of p.
func (p Vector2) Magnitude() float64 {
	return math.Sqrt(p.MagnitudeSquare())
}

// Plus returns the vector p+p2.
func (p Vector2) Plus(p2 Vector2) Vector2 {
	return Vector2{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Minus returns the vector p-p2.
func (p Vector2) Minus(p2 Vector2) Vector2 {
	return Vector2{X: p.X - p2.X, Y: p.Y - p2.Y}
}

// Times returns the component-wise product of p and p2.
func (p Vector2) Times(p2 Vector2) Vector2 {
	return Vector2{X: p.X * p2.X, Y: p.Y * p2.Y}
}

// Scale returns p scaled by s.
func (p Vector2) Scale(s float64) Vector2 {
	return Vector2{X: p.X * s, Y: p.Y * s}
}

// Abs returns p with both components made non-negative.
func (p Vector2) Abs() Vector2 {
	return Vector2{X: math.Abs(p.X), Y: math.Abs(p.Y)}
}

// Clamp bounds both components of p to the range between min and max.
// Inverted bounds are swapped.
func (p Vector2) Clamp(min, max float64) Vector2 {
	return Vector2{
		X: fmath.Clamp(p.X, min, max),
		Y: fmath.Clamp(p.Y, min, max),
	}
}

// Clamp01 is Clamp(0, 1).
func (p Vector2) Clamp01() Vector2 {
	return p.Clamp(0, 1)
}

// ClampArea bounds X to the range between start.X and end.X, and Y to
// the range between start.Y and end.Y. Each axis may be inverted.
func (p Vector2) ClampArea(start, end Vector2) Vector2 {
	return Vector2{
		X: fmath.Clamp(p.X, start.X, end.X),
		Y: fmath.Clamp(p.Y, start.Y, end.Y),
	}
}

// ClampUnit is ClampArea(Zero(), One()).
func (p Vector2) ClampUnit() Vector2 {
	return p.ClampArea(Zero(), One())
}

// Equals reports whether other has the same coordinates as p. A nil
// other is never equal.
func (p Vector2) Equals(other XYer) bool {
	if isNil(other) {
		return false
	}
	x, y, ok := coords(other)
	return ok && p.X == x && p.Y == y
}

// EqualsStrict is like Equals but only considers Vector2 and
// *Vector2 values.
func (p Vector2) EqualsStrict(other interface{}) bool {
	switch o := other.(type) {
	case Vector2:
		return p == o
	case *Vector2:
		return o != nil && p == *o
	}
	return false
}

// Clone returns a copy of p.
func (p Vector2) Clone() Vector2 {
	return Vector2{X: p.X, Y: p.Y}
}

// String returns p formatted as (x,y).
func (p Vector2) String() string {
	return "(" + strconv.FormatFloat(p.X, 'g', -1, 64) +
		"," + strconv.FormatFloat(p.Y, 'g', -1, 64) + ")"
}
