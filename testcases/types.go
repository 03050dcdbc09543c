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
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a stack of shapes in painter's order, together with the
// expected result of occlusion culling.
type TestCase struct {
	Name   string  // lowercase a-z and _ only
	Layers []Layer // bottom layer first
	Width  int     // canvas width
	Height int     // canvas height
	Want   Expect
}

// Layer is a single shape of a test case.
type Layer struct {
	Path   *path.Data
	Fill   bool
	Rule   FillRule
	Stroke bool
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// Expect describes the output of the culling step.
type Expect struct {
	// Paths is the number of paths which remain after culling.
	Paths int

	// Visible lists points which lie on the input outlines and must still
	// be drawn after culling.
	Visible []vec.Vec2

	// Hidden lists points which lie on the input outlines but are covered
	// by a later shape, so that they must not be drawn.
	Hidden []vec.Vec2
}

// stroked returns a layer which is only stroked.
func stroked(p *path.Data) Layer {
	return Layer{Path: p, Stroke: true}
}

// filled returns a layer which is stroked and filled with the given rule.
func filled(p *path.Data, rule FillRule) Layer {
	return Layer{Path: p, Fill: true, Rule: rule, Stroke: true}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// pts is a helper to create a list of points from x, y pairs.
func pts(xy ...float64) []vec.Vec2 {
	res := make([]vec.Vec2, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, pt(xy[i], xy[i+1]))
	}
	return res
}
