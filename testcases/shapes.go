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

package testcases

import (
	"seehuhn.de/go/geom/path"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

// horizontalLine builds an open, straight path.
func horizontalLine(x1, y, x2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y)).
		LineTo(pt(x2, y))
}

// verticalLine builds an open, straight path.
func verticalLine(x, y1, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x, y1)).
		LineTo(pt(x, y2))
}

// rectangle builds a closed rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return rectangleOpen(x1, y1, x2, y2).Close()
}

// rectangleOpen builds the outline of a rectangle, without closing it.
func rectangleOpen(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2))
}

// ringShape builds a square ring as two closed subpaths.  If reversed is
// set, the inner square runs in the opposite direction to the outer one.
func ringShape(cx, cy, outerSize, innerSize float64, reversed bool) *path.Data {
	p := rectangle(cx-outerSize, cy-outerSize, cx+outerSize, cy+outerSize)
	if !reversed {
		return p.
			MoveTo(pt(cx-innerSize, cy-innerSize)).
			LineTo(pt(cx+innerSize, cy-innerSize)).
			LineTo(pt(cx+innerSize, cy+innerSize)).
			LineTo(pt(cx-innerSize, cy+innerSize)).
			Close()
	}
	return p.
		MoveTo(pt(cx-innerSize, cy-innerSize)).
		LineTo(pt(cx-innerSize, cy+innerSize)).
		LineTo(pt(cx+innerSize, cy+innerSize)).
		LineTo(pt(cx+innerSize, cy-innerSize)).
		Close()
}

// twoLines builds a single path made of two horizontal lines.
func twoLines(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		MoveTo(pt(x1, y2)).
		LineTo(pt(x2, y2))
}

// twoSquares builds a single path made of two closed squares side by side.
func twoSquares(x1, y1, size, gap float64) *path.Data {
	x2 := x1 + size + gap
	p := rectangle(x1, y1, x1+size, y1+size)
	return p.
		MoveTo(pt(x2, y1)).
		LineTo(pt(x2+size, y1)).
		LineTo(pt(x2+size, y1+size)).
		LineTo(pt(x2, y1+size)).
		Close()
}

// triangle builds a closed triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// quadraticCurveOpen builds an open path with a quadratic Bezier curve.
func quadraticCurveOpen(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2))
}

// circle builds an approximate circle using four cubic Bezier curves.
// The path starts at the rightmost point.
func circle(cx, cy, r float64) *path.Data {
	k := r * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).                                 // start at right
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)). // top-right quadrant
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)). // top-left quadrant
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)). // bottom-left quadrant
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)). // bottom-right quadrant
		Close()
}

// openThenClosed builds a path of two squares, where only the second one
// is closed explicitly.
func openThenClosed() *path.Data {
	return rectangleOpen(10, 24, 25, 39).
		MoveTo(pt(39, 24)).
		LineTo(pt(54, 24)).
		LineTo(pt(54, 39)).
		LineTo(pt(39, 39)).
		Close()
}
