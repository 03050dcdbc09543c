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

// Package svgps turns the shapes of a vector drawing into pen paths for a
// plotter.
//
// Shapes are given in painter's order.  [NewPaths] converts them into
// [Path] values made of line and cubic Bézier segments.  [Cull] then removes
// the parts of earlier paths which are hidden under later filled shapes, and
// [Polish] joins paths which continue each other.  The result can be written
// to a plotter command file using the svgcom package.
package svgps

import (
	"seehuhn.de/go/geom/path"
)

// Shape is a single drawable element of a document, as delivered by a
// document parser.  Coordinates are already transformed into document space.
type Shape struct {
	// ID identifies the source element.  Paths derived from the same shape
	// share this value.
	ID int

	Data *path.Data

	// Fill is set if the shape is painted with a fill.
	Fill bool

	// Rule is the fill rule used for the interior of the shape.
	Rule FillRule

	// Stroke is set if the outline of the shape is painted.
	Stroke bool
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// Inside reports whether a point with the given winding number is in the
// interior of a shape.
func (r FillRule) Inside(winding int) bool {
	if r == EvenOdd {
		return winding%2 != 0
	}
	return winding != 0
}

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "FillRule(?)"
	}
}
