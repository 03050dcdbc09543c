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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"honnef.co/go/curve"
)

// Segment is a single piece of a path, either a straight line or a cubic
// Bézier curve.  Segments are values and are never modified in place.
type Segment struct {
	curve.PathSegment
}

// Line returns a straight line segment from p0 to p1.
func Line(p0, p1 curve.Point) Segment {
	return Segment{curve.Line{P0: p0, P1: p1}.Seg()}
}

// Cubic returns a cubic Bézier segment with end points p0 and p3 and control
// points p1 and p2.
func Cubic(p0, p1, p2, p3 curve.Point) Segment {
	return Segment{curve.CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}.Seg()}
}

// IsLine reports whether the segment is a straight line.
func (s Segment) IsLine() bool {
	return s.Kind == curve.LineKind
}

// Start returns the first point of the segment.
func (s Segment) Start() curve.Point {
	return s.P0
}

// End returns the last point of the segment.
func (s Segment) End() curve.Point {
	if s.IsLine() {
		return s.P1
	}
	return s.P3
}

// Sub returns the part of the segment between the parameters t0 and t1.
// The result has the same kind as s.
func (s Segment) Sub(t0, t1 float64) Segment {
	return Segment{s.PathSegment.Subsegment(t0, t1)}
}

// Bounds returns the bounding box of the segment, with non-negative width
// and height.
func (s Segment) Bounds() curve.Rect {
	return s.PathSegment.BoundingBox().Abs()
}

// Degenerate reports whether all points of the segment coincide.
func (s Segment) Degenerate() bool {
	if s.IsLine() {
		return s.P0 == s.P1
	}
	return s.P0 == s.P1 && s.P1 == s.P2 && s.P2 == s.P3
}

// Path is an ordered sequence of segments, together with the information
// about the shape it was derived from.
//
// Consecutive segments normally join end to start.  Where they do not, a new
// subpath begins and a plotter has to lift the pen.
type Path struct {
	Segments []Segment

	// SourceID is the ID of the shape this path was derived from.
	SourceID int

	// Closed is set if the path ends with a close command.
	Closed bool

	// CanCover is set if the path is closed and filled, so that it hides
	// everything drawn below it.
	CanCover bool

	// Rule is the fill rule of the source shape.
	Rule FillRule
}

// NewPath converts the command stream of a shape into a Path.
//
// Quadratic curves are converted to cubic curves.  A close command adds a
// line back to the start of the subpath, unless the current point is
// already there.
func NewPath(s Shape) *Path {
	p := &Path{
		SourceID: s.ID,
		Rule:     s.Rule,
	}
	data := s.Data
	if data == nil {
		return p
	}

	var current vec.Vec2 // current point
	var subpath vec.Vec2 // subpath start

	coordIdx := 0
	for _, cmd := range data.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = data.Coords[coordIdx]
			subpath = current
			coordIdx++

		case path.CmdLineTo:
			next := data.Coords[coordIdx]
			p.Segments = append(p.Segments, Line(pt(current), pt(next)))
			current = next
			coordIdx++

		case path.CmdQuadTo:
			c, next := data.Coords[coordIdx], data.Coords[coordIdx+1]
			// degree elevation: the cubic control points lie 2/3 of the
			// way from each end point towards the quadratic control point
			c1 := current.Add(c.Sub(current).Mul(2.0 / 3.0))
			c2 := next.Add(c.Sub(next).Mul(2.0 / 3.0))
			p.Segments = append(p.Segments, Cubic(pt(current), pt(c1), pt(c2), pt(next)))
			current = next
			coordIdx += 2

		case path.CmdCubeTo:
			c1, c2, next := data.Coords[coordIdx], data.Coords[coordIdx+1], data.Coords[coordIdx+2]
			p.Segments = append(p.Segments, Cubic(pt(current), pt(c1), pt(c2), pt(next)))
			current = next
			coordIdx += 3

		case path.CmdClose:
			if current != subpath {
				p.Segments = append(p.Segments, Line(pt(current), pt(subpath)))
			}
			current = subpath
		}
	}

	n := len(data.Cmds)
	p.Closed = n > 0 && data.Cmds[n-1] == path.CmdClose
	p.CanCover = p.Closed && s.Fill
	return p
}

// NewPaths converts a list of shapes, given in painter's order, into paths.
func NewPaths(shapes []Shape) []*Path {
	res := make([]*Path, 0, len(shapes))
	for _, s := range shapes {
		res = append(res, NewPath(s))
	}
	return res
}

// Empty reports whether the path has no segments.
func (p *Path) Empty() bool {
	return len(p.Segments) == 0
}

// Start returns the first point of the path.  The path must not be empty.
func (p *Path) Start() curve.Point {
	return p.Segments[0].Start()
}

// End returns the last point of the path.  The path must not be empty.
func (p *Path) End() curve.Point {
	return p.Segments[len(p.Segments)-1].End()
}

// Bounds returns the bounding box of all segments of the path.
// The path must not be empty.
func (p *Path) Bounds() curve.Rect {
	bbox := p.Segments[0].Bounds()
	for _, s := range p.Segments[1:] {
		bbox = bbox.Union(s.Bounds())
	}
	return bbox
}

// RepresentativePoint returns the midpoint of the first segment.  This is
// used to decide whether a fragment, which contains no intersections with a
// covering shape, lies inside or outside that shape.
func (p *Path) RepresentativePoint() curve.Point {
	return p.Segments[0].Eval(0.5)
}

// Subpaths splits p where consecutive segments do not join.  If p is
// continuous, the result contains p itself.
func (p *Path) Subpaths() []*Path {
	var res []*Path
	first := 0
	for i := 1; i < len(p.Segments); i++ {
		if p.Segments[i-1].End() != p.Segments[i].Start() {
			res = append(res, p.withSegments(p.Segments[first:i:i]))
			first = i
		}
	}
	if first == 0 {
		return []*Path{p}
	}
	res = append(res, p.withSegments(p.Segments[first:]))
	for _, sub := range res {
		sub.Closed = false
	}
	return res
}

// Clone returns a copy of p which does not share the segment slice.
func (p *Path) Clone() *Path {
	c := *p
	c.Segments = append([]Segment(nil), p.Segments...)
	return &c
}

// withSegments returns a path with the metadata of p and the given segments.
func (p *Path) withSegments(segs []Segment) *Path {
	return &Path{
		Segments: segs,
		SourceID: p.SourceID,
		Closed:   p.Closed,
		CanCover: p.CanCover,
		Rule:     p.Rule,
	}
}

func pt(v vec.Vec2) curve.Point {
	return curve.Point{X: v.X, Y: v.Y}
}
