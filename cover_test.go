// seehuhn.de/go/svgps - plotter path simplification
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package svgps

import (
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"honnef.co/go/curve"
)

func TestFillRuleInside(t *testing.T) {
	cases := []struct {
		rule    FillRule
		winding int
		want    bool
	}{
		{NonZero, 0, false},
		{NonZero, 1, true},
		{NonZero, -1, true},
		{NonZero, 2, true},
		{EvenOdd, 0, false},
		{EvenOdd, 1, true},
		{EvenOdd, -1, true},
		{EvenOdd, 2, false},
		{EvenOdd, -3, true},
	}
	for _, tc := range cases {
		if got := tc.rule.Inside(tc.winding); got != tc.want {
			t.Errorf("%v.Inside(%d) = %t, want %t", tc.rule, tc.winding, got, tc.want)
		}
	}
}

func TestWinding(t *testing.T) {
	sq, ok := NewCoveringShape(testSquare(10, 10, 20, 20), DefaultTolerance)
	if !ok {
		t.Fatal("square cannot cover")
	}

	inside := sq.Winding(curve.Pt(15, 15))
	if inside != 1 && inside != -1 {
		t.Errorf("inside: winding %d", inside)
	}
	for _, q := range []curve.Point{{X: 5, Y: 15}, {X: 25, Y: 15}, {X: 15, Y: 5}, {X: 15, Y: 25}} {
		if w := sq.Winding(q); w != 0 {
			t.Errorf("outside point %v: winding %d", q, w)
		}
	}

	// a ray through a vertex must not count twice
	diamond := NewPath(Shape{
		Data: (&path.Data{}).
			MoveTo(vec.Vec2{X: 10, Y: 0}).
			LineTo(vec.Vec2{X: 20, Y: 10}).
			LineTo(vec.Vec2{X: 10, Y: 20}).
			LineTo(vec.Vec2{X: 0, Y: 10}).
			Close(),
		Fill: true,
	})
	dc, _ := NewCoveringShape(diamond, DefaultTolerance)
	if w := dc.Winding(curve.Pt(15, 10)); w != 1 && w != -1 {
		t.Errorf("ray through vertex: winding %d", w)
	}
	if w := dc.Winding(curve.Pt(25, 10)); w != 0 {
		t.Errorf("outside, ray through two vertices: winding %d", w)
	}

	circ, _ := NewCoveringShape(testCircle(0, 0, 10), DefaultTolerance)
	if w := circ.Winding(curve.Pt(0, 0)); w == 0 {
		t.Error("centre of circle is outside")
	}
	if w := circ.Winding(curve.Pt(9.5, 0)); w == 0 {
		t.Error("point near the circle boundary is outside")
	}
	if w := circ.Winding(curve.Pt(8, 8)); w != 0 {
		t.Error("corner of bounding box is inside")
	}
}

func TestCovers(t *testing.T) {
	ring := NewPath(Shape{
		ID: 3,
		Data: (&path.Data{}).
			MoveTo(vec.Vec2{X: 0, Y: 0}).LineTo(vec.Vec2{X: 30, Y: 0}).
			LineTo(vec.Vec2{X: 30, Y: 30}).LineTo(vec.Vec2{X: 0, Y: 30}).Close().
			MoveTo(vec.Vec2{X: 10, Y: 10}).LineTo(vec.Vec2{X: 20, Y: 10}).
			LineTo(vec.Vec2{X: 20, Y: 20}).LineTo(vec.Vec2{X: 10, Y: 20}).Close(),
		Fill: true,
	})
	other := testLine(-5, 15, 35, 15)
	hole := curve.Pt(15, 15)
	body := curve.Pt(5, 15)

	ring.Rule = NonZero
	nz, _ := NewCoveringShape(ring, DefaultTolerance)
	if !nz.Covers(other, hole) || !nz.Covers(other, body) {
		t.Error("nonzero: hole and body must be covered")
	}

	ring.Rule = EvenOdd
	eo, _ := NewCoveringShape(ring, DefaultTolerance)
	if eo.Covers(other, hole) {
		t.Error("evenodd: hole must not be covered")
	}
	if !eo.Covers(other, body) {
		t.Error("evenodd: body must be covered")
	}

	// a shape never covers its own outline
	self := testLine(-5, 15, 35, 15)
	self.SourceID = 3
	if eo.Covers(self, body) {
		t.Error("shape covers itself")
	}
}

func TestNewCoveringShapeRejects(t *testing.T) {
	open := NewPath(Shape{
		Data: (&path.Data{}).MoveTo(vec.Vec2{}).LineTo(vec.Vec2{X: 10}).LineTo(vec.Vec2{X: 10, Y: 10}),
		Fill: true,
	})
	if _, ok := NewCoveringShape(open, DefaultTolerance); ok {
		t.Error("open path can cover")
	}

	unfilled := testSquare(0, 0, 10, 10)
	unfilled.CanCover = false
	if _, ok := NewCoveringShape(unfilled, DefaultTolerance); ok {
		t.Error("unfilled path can cover")
	}
}

func TestCoveringShapeImplicitClose(t *testing.T) {
	// the first square is not closed explicitly
	p := NewPath(Shape{
		Data: (&path.Data{}).
			MoveTo(vec.Vec2{X: 0, Y: 0}).LineTo(vec.Vec2{X: 10, Y: 0}).
			LineTo(vec.Vec2{X: 10, Y: 10}).LineTo(vec.Vec2{X: 0, Y: 10}).
			MoveTo(vec.Vec2{X: 20, Y: 0}).LineTo(vec.Vec2{X: 30, Y: 0}).
			LineTo(vec.Vec2{X: 30, Y: 10}).LineTo(vec.Vec2{X: 20, Y: 10}).Close(),
		Fill: true,
	})
	c, ok := NewCoveringShape(p, DefaultTolerance)
	if !ok {
		t.Fatal("path cannot cover")
	}
	if n := len(c.Outline().Segments); n != len(p.Segments)+1 {
		t.Errorf("outline has %d segments, want %d", n, len(p.Segments)+1)
	}
	for _, q := range []curve.Point{{X: 5, Y: 5}, {X: 25, Y: 5}} {
		if w := c.Winding(q); w == 0 {
			t.Errorf("%v is outside", q)
		}
	}
	if w := c.Winding(curve.Pt(15, 5)); w != 0 {
		t.Errorf("gap between the squares has winding %d", w)
	}
}

// testLine returns an open, stroked straight path.
func testLine(x0, y0, x1, y1 float64) *Path {
	return &Path{
		Segments: []Segment{Line(curve.Pt(x0, y0), curve.Pt(x1, y1))},
		SourceID: -1,
	}
}

// testSquare returns a closed, filled rectangle.
func testSquare(x0, y0, x1, y1 float64) *Path {
	return NewPath(Shape{
		ID: -2,
		Data: (&path.Data{}).
			MoveTo(vec.Vec2{X: x0, Y: y0}).
			LineTo(vec.Vec2{X: x1, Y: y0}).
			LineTo(vec.Vec2{X: x1, Y: y1}).
			LineTo(vec.Vec2{X: x0, Y: y1}).
			Close(),
		Fill: true,
	})
}

// testCircle returns a closed, filled circle made of four cubic segments,
// starting at the rightmost point.
func testCircle(cx, cy, r float64) *Path {
	k := r * 0.5522847498307936
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }
	return NewPath(Shape{
		ID: -3,
		Data: (&path.Data{}).
			MoveTo(pt(cx+r, cy)).
			CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
			CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).
			CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
			CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
			Close(),
		Fill: true,
	})
}
