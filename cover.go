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
	"honnef.co/go/curve"
)

// edge is a directed line piece of a flattened outline.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0), precomputed for x-intercept calculation
}

// CoveringShape answers point-in-shape queries for a closed, filled path.
// The outline is flattened once, when the CoveringShape is created.
// A CoveringShape is immutable and safe for concurrent use.
type CoveringShape struct {
	SourceID int
	Rule     FillRule

	outline *Path
	edges   []edge
	bbox    curve.Rect
}

// NewCoveringShape prepares p for coverage queries.  The second return value
// is false if p cannot hide anything, because it is open, unfilled, or
// empty.
func NewCoveringShape(p *Path, tolerance float64) (*CoveringShape, bool) {
	if !p.CanCover || p.Empty() {
		return nil, false
	}

	// Every subpath of a filled shape is closed, even if the path data
	// only closes the last one.
	outline := make([]Segment, 0, len(p.Segments)+1)
	start := p.Segments[0].Start()
	for i, s := range p.Segments {
		outline = append(outline, s)
		last := i == len(p.Segments)-1
		if last || s.End() != p.Segments[i+1].Start() {
			if s.End() != start {
				outline = append(outline, Line(s.End(), start))
			}
			if !last {
				start = p.Segments[i+1].Start()
			}
		}
	}

	c := &CoveringShape{
		SourceID: p.SourceID,
		Rule:     p.Rule,
		outline:  p.withSegments(outline),
	}
	c.bbox = c.outline.Bounds()
	for _, s := range outline {
		for _, l := range flatten(s, tolerance) {
			c.addEdge(l.P0, l.P1)
		}
	}

	return c, true
}

func (c *CoveringShape) addEdge(p0, p1 curve.Point) {
	// skip horizontal edges
	dy := p1.Y - p0.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	c.edges = append(c.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / dy,
	})
}

// Outline returns the boundary of the shape, with all subpaths closed.
func (c *CoveringShape) Outline() *Path {
	return c.outline
}

// Winding returns the winding number of the outline around pt.  This is the
// signed number of edges crossing the horizontal ray from pt towards
// negative x; downward edges count +1 and upward edges count -1.
func (c *CoveringShape) Winding(pt curve.Point) int {
	if pt.X < c.bbox.X0 || pt.Y < c.bbox.Y0 || pt.Y > c.bbox.Y1 {
		return 0
	}

	w := 0
	for i := range c.edges {
		e := &c.edges[i]

		// half-open y ranges, so that a ray through a vertex is counted
		// once
		var sign int
		switch {
		case e.y0 <= pt.Y && pt.Y < e.y1:
			sign = 1
		case e.y1 <= pt.Y && pt.Y < e.y0:
			sign = -1
		default:
			continue
		}

		x := e.x0 + e.dxdy*(pt.Y-e.y0)
		if x < pt.X {
			w += sign
		}
	}
	return w
}

// Covers reports whether the shape hides the point pt of the path p.
// A shape never hides paths derived from itself.
func (c *CoveringShape) Covers(p *Path, pt curve.Point) bool {
	if p.SourceID == c.SourceID {
		return false
	}
	return c.Rule.Inside(c.Winding(pt))
}
