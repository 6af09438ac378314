// SPDX-License-Identifier: Unlicense OR MIT

package f64

import (
	"image"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestFixed(t *testing.T) {
	p := Pt(1.5, -2.25)
	f := p.Fixed()
	want := fixed.Point26_6{X: 96, Y: -144}
	if f != want {
		t.Errorf("Fixed: have %v, want %v", f, want)
	}
	if back := FromFixed(f); back != p {
		t.Errorf("FromFixed: have %v, want %v", back, p)
	}
	r := NewRect(Pt(2, 2), Pt(0, 1))
	fr := r.Fixed()
	if fr.Min != fixed.P(2, 2) || fr.Max != fixed.P(0, 1) {
		t.Errorf("Rect.Fixed: have %v", fr)
	}
}

func TestImage(t *testing.T) {
	if got := Pt(1.4, -2.6).Round(); got != image.Pt(1, -3) {
		t.Errorf("Round: have %v, want (1,-3)", got)
	}
	if got := FromImage(image.Pt(7, -8)); got != Pt(7, -8) {
		t.Errorf("FromImage: have %v, want (7,-8)", got)
	}
	r := NewRect(Pt(10.2, 0), Pt(0, 4.7))
	if got := r.ImageRect(); got != image.Rect(0, 0, 10, 5) {
		t.Errorf("ImageRect: have %v, want (0,0)-(10,5)", got)
	}
}
