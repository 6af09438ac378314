// SPDX-License-Identifier: Unlicense OR MIT

package f64

import (
	"math"

	"golang.org/x/exp/slices"

	"geom/internal/fmath"
)

// A Rect is the axis aligned box spanned by the corners Start and End.
// The corners are kept in the order given, so a Rect may have
// negative width or height.
type Rect struct {
	Start, End Vector2
}

// NewRect returns the Rect spanned by start and end.
func NewRect(start, end Vector2) Rect {
	return Rect{Start: start, End: end}
}

// ContainerFor returns the smallest canonical Rect enclosing every
// corner of rects. The container of no rects is the zero Rect.
func ContainerFor(rects []Rect) Rect {
	if len(rects) == 0 {
		return Rect{}
	}
	xs := make([]float64, 0, 2*len(rects))
	ys := make([]float64, 0, 2*len(rects))
	for _, r := range rects {
		xs = append(xs, r.Start.X, r.End.X)
		ys = append(ys, r.Start.Y, r.End.Y)
	}
	slices.Sort(xs)
	slices.Sort(ys)
	return Rect{
		Start: Vector2{X: xs[0], Y: ys[0]},
		End:   Vector2{X: xs[len(xs)-1], Y: ys[len(ys)-1]},
	}
}

// Center returns Start offset by half the signed size.
func (r Rect) Center() Vector2 {
	return Vector2{
		X: r.Start.X + r.Width()/2,
		Y: r.Start.Y + r.Height()/2,
	}
}

// Area returns the absolute product of r's width and height.
func (r Rect) Area() float64 {
	return math.Abs(r.Width() * r.Height())
}

// Width returns Start.X - End.X. It is negative when End lies to the
// right of Start.
func (r Rect) Width() float64 {
	return r.Start.X - r.End.X
}

// WidthAbs returns the absolute width of r.
func (r Rect) WidthAbs() float64 {
	return math.Abs(r.Width())
}

// Height returns Start.Y - End.Y.
func (r Rect) Height() float64 {
	return r.Start.Y - r.End.Y
}

// HeightAbs returns the absolute height of r.
func (r Rect) HeightAbs() float64 {
	return math.Abs(r.Height())
}

// Size returns r's signed width and height.
func (r Rect) Size() Vector2 {
	return Vector2{X: r.Width(), Y: r.Height()}
}

// SizeAbs returns r's absolute width and height.
func (r Rect) SizeAbs() Vector2 {
	return Vector2{X: r.WidthAbs(), Y: r.HeightAbs()}
}

// Direction returns the size of r divided by the signed extent of its
// dominant axis. Height dominates unless the width is strictly larger
// in magnitude. A zero sized Rect has direction (0, 0).
func (r Rect) Direction() Vector2 {
	w, h := r.Width(), r.Height()
	max := h
	if r.WidthAbs() > r.HeightAbs() {
		max = w
	}
	return Vector2{
		X: fmath.Scale(w, 0, max),
		Y: fmath.Scale(h, 0, max),
	}
}

// ThreePointAnchors returns Start, Center and End.
func (r Rect) ThreePointAnchors() []Vector2 {
	return []Vector2{r.Start, r.Center(), r.End}
}

// TwoPointAnchors returns Start and End.
func (r Rect) TwoPointAnchors() []Vector2 {
	return []Vector2{r.Start, r.End}
}

// IsWithinWidth reports whether x lies between Start.X and End.X,
// inclusive, in either order.
func (r Rect) IsWithinWidth(x float64) bool {
	return (r.Start.X <= x && r.End.X >= x) || (r.End.X <= x && r.Start.X >= x)
}

// IsWithinHeight reports whether y lies between Start.Y and End.Y,
// inclusive, in either order.
func (r Rect) IsWithinHeight(y float64) bool {
	return (r.Start.Y <= y && r.End.Y >= y) || (r.End.Y <= y && r.Start.Y >= y)
}

// Contains reports whether p lies within r, edges included.
func (r Rect) Contains(p Vector2) bool {
	return r.IsWithinWidth(p.X) && r.IsWithinHeight(p.Y)
}

// Overlaps reports whether r and s share at least one point. Rects
// that only touch at an edge or corner overlap.
func (r Rect) Overlaps(s Rect) bool {
	r, s = r.Canon(), s.Canon()
	return !(r.Start.X > s.End.X ||
		s.Start.X > r.End.X ||
		r.Start.Y > s.End.Y ||
		s.Start.Y > r.End.Y)
}

// Canon returns the canonical version of r, where Start is to the
// upper left of End.
func (r Rect) Canon() Rect {
	if r.End.X < r.Start.X {
		r.Start.X, r.End.X = r.End.X, r.Start.X
	}
	if r.End.Y < r.Start.Y {
		r.Start.Y, r.End.Y = r.End.Y, r.Start.Y
	}
	return r
}

// Empty reports whether r has zero area.
func (r Rect) Empty() bool {
	return r.Area() == 0
}

// Translate returns r with both corners offset by offset.
func (r Rect) Translate(offset Vector2) Rect {
	return Rect{
		Start: r.Start.Plus(offset),
		End:   r.End.Plus(offset),
	}
}

// String returns r formatted as (x0,y0)-(x1,y1).
func (r Rect) String() string {
	return r.Start.String() + "-" + r.End.String()
}
