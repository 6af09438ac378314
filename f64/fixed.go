// SPDX-License-Identifier: Unlicense OR MIT

package f64

import (
	"image"
	"math"

	"golang.org/x/image/math/fixed"
)

// FromFixed converts a 26.6 fixed point vector to a Vector2.
func FromFixed(p fixed.Point26_6) Vector2 {
	return Vector2{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}

// FromImage converts an integer point to a Vector2.
func FromImage(p image.Point) Vector2 {
	return Vector2{X: float64(p.X), Y: float64(p.Y)}
}

// Fixed converts p to 26.6 fixed point, rounding to the nearest 1/64.
func (p Vector2) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y)}
}

// Round returns the integer point nearest to p.
func (p Vector2) Round() image.Point {
	return image.Point{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

// Fixed converts r to 26.6 fixed point. Start becomes Min and End
// becomes Max; the corners are not reordered.
func (r Rect) Fixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{Min: r.Start.Fixed(), Max: r.End.Fixed()}
}

// ImageRect returns the canonical integer rectangle with corners
// rounded from r's corners.
func (r Rect) ImageRect() image.Rectangle {
	s, e := r.Start.Round(), r.End.Round()
	return image.Rect(s.X, s.Y, e.X, e.Y)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
