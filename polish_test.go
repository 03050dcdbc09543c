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

	"honnef.co/go/curve"
)

func TestPolish(t *testing.T) {
	a := testLine(0, 0, 10, 0)
	b := testLine(10, 0, 10, 10)
	c := testLine(20, 0, 30, 0)
	dot := testLine(5, 5, 5, 5)
	withDot := testLine(30, 0, 40, 0)
	withDot.Segments = append([]Segment{Line(curve.Pt(30, 0), curve.Pt(30, 0))}, withDot.Segments...)

	res := Polish([]*Path{a, b, dot, c, withDot})
	if len(res) != 2 {
		t.Fatalf("got %d paths, want 2", len(res))
	}
	if n := len(res[0].Segments); n != 2 {
		t.Errorf("first path has %d segments, want 2", n)
	}
	if n := len(res[1].Segments); n != 2 {
		t.Errorf("second path has %d segments, want 2", n)
	}
	for _, p := range res {
		for _, s := range p.Segments {
			if s.Degenerate() {
				t.Error("degenerate segment survived")
			}
		}
	}

	// the input is unchanged
	if len(a.Segments) != 1 || len(withDot.Segments) != 2 {
		t.Error("input paths were modified")
	}
}

func TestPolishKeepsGaps(t *testing.T) {
	a := testLine(0, 0, 10, 0)
	b := testLine(10, 1, 20, 1)
	res := Polish([]*Path{a, b})
	if len(res) != 2 {
		t.Errorf("got %d paths, want 2", len(res))
	}
	if res := Polish(nil); len(res) != 0 {
		t.Errorf("got %d paths from empty input", len(res))
	}
}
