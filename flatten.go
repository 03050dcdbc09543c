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
	"math"

	"honnef.co/go/curve"
)

// Numerical tolerances for the geometry code.
const (
	// DefaultTolerance is the default curve flattening tolerance, in
	// document units.
	DefaultTolerance = 0.25

	// maxFlattenSteps bounds the number of line pieces used for a single
	// curve, so that tiny tolerances cannot exhaust memory.
	maxFlattenSteps = 4096

	// paramEpsilon is the distance below which two curve parameters are
	// considered equal.
	paramEpsilon = 1e-9

	// horizontalEdgeThreshold is the minimum vertical extent for an edge to
	// contribute to winding numbers.
	horizontalEdgeThreshold = 1e-10
)

// flattenSteps returns the number of uniform parameter steps needed to
// approximate a segment by a polyline within the given tolerance.
func flattenSteps(s Segment, tolerance float64) int {
	if s.IsLine() {
		return 1
	}

	// deviation vectors
	d1 := s.P0.Sub(s.P1).Sub(s.P1.Sub(s.P2)) // P0 - 2*P1 + P2
	d2 := s.P1.Sub(s.P2).Sub(s.P2.Sub(s.P3)) // P1 - 2*P2 + P3

	// Wang's formula
	m := max(d1.Hypot(), d2.Hypot())
	n := 1
	if m > 0 && tolerance > 0 {
		// n = ceil(sqrt(3 * m / (4 * ε)))
		nFloat := math.Sqrt(3 * m / (4 * tolerance))
		if nFloat > 1 {
			n = int(math.Ceil(min(nFloat, maxFlattenSteps)))
		}
	}
	return n
}

// flatten approximates a segment by n line pieces.  Piece i covers the
// parameter range [i/n, (i+1)/n] of the segment, so that a position u along
// piece i corresponds to the parameter (i+u)/n.
func flatten(s Segment, tolerance float64) []curve.Line {
	n := flattenSteps(s, tolerance)
	if n == 1 {
		return []curve.Line{{P0: s.Start(), P1: s.End()}}
	}

	res := make([]curve.Line, 0, n)
	prev := s.Start()
	for i := 1; i <= n; i++ {
		var next curve.Point
		if i == n {
			next = s.End()
		} else {
			next = s.Eval(float64(i) / float64(n))
		}
		res = append(res, curve.Line{P0: prev, P1: next})
		prev = next
	}
	return res
}
