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
	"slices"

	"honnef.co/go/curve"
)

// Intersections records where the segments of a path are crossed by another
// path.  The map key is the index of the segment, the value holds the
// crossing parameters on that segment in increasing order.
type Intersections map[int][]float64

// Count returns the total number of recorded crossings.
func (ix Intersections) Count() int {
	n := 0
	for _, ts := range ix {
		n += len(ts)
	}
	return n
}

// Intersect returns the parameters on a of all points where a crosses b.
// The result is sorted in increasing order.  Curves are approximated by
// polylines within the given tolerance.  Overlapping collinear lines are
// not reported as crossings.
func Intersect(a, b Segment, tolerance float64) []float64 {
	if !overlaps(a.Bounds(), b.Bounds()) {
		return nil
	}

	var res []float64
	switch {
	case a.IsLine() && b.IsLine():
		res = appendLineHits(res, a.Line(), b.Line(), 0, 1)

	case a.IsLine():
		l := a.Line()
		for _, edge := range flatten(b, tolerance) {
			res = appendLineHits(res, l, edge, 0, 1)
		}

	default:
		// a is the curve: flatten it and map the hits on each piece back
		// to parameters on a
		edgesA := flatten(a, tolerance)
		var edgesB []curve.Line
		if b.IsLine() {
			edgesB = []curve.Line{b.Line()}
		} else {
			edgesB = flatten(b, tolerance)
		}
		n := float64(len(edgesA))
		for i, ea := range edgesA {
			boxA := ea.BoundingBox().Abs()
			for _, eb := range edgesB {
				if !overlaps(boxA, eb.BoundingBox().Abs()) {
					continue
				}
				res = appendLineHits(res, ea, eb, float64(i)/n, 1/n)
			}
		}
	}

	return coalesce(res)
}

// appendLineHits appends the crossing of self with probe, as a parameter on
// self mapped to offset + scale*t.
func appendLineHits(res []float64, self, probe curve.Line, offset, scale float64) []float64 {
	hits, n := self.IntersectLine(widen(probe))
	for _, h := range hits[:n] {
		t := min(max(h.SegmentT, 0), 1)
		res = append(res, offset+scale*t)
	}
	return res
}

// widen extends l by paramEpsilon of its length at both ends.  A crossing
// at a vertex shared by two edges can otherwise round to just outside both
// of them.
func widen(l curve.Line) curve.Line {
	d := l.P1.Sub(l.P0).Mul(paramEpsilon)
	return curve.Line{P0: l.P0.Translate(d.Negate()), P1: l.P1.Translate(d)}
}

// coalesce sorts ts and merges values closer than paramEpsilon.  A crossing
// exactly at a shared vertex of two polyline pieces is found twice, once on
// each piece.
func coalesce(ts []float64) []float64 {
	if len(ts) < 2 {
		return ts
	}
	slices.Sort(ts)
	res := ts[:1]
	for _, t := range ts[1:] {
		if t-res[len(res)-1] > paramEpsilon {
			res = append(res, t)
		}
	}
	return res
}

// PathIntersections returns, for every segment of w, the parameters where
// the segment is crossed by any segment of p.  Segments without crossings
// have no entry in the result.
func PathIntersections(w, p *Path, tolerance float64) Intersections {
	ix := Intersections{}
	if w.Empty() || p.Empty() || !overlaps(w.Bounds(), p.Bounds()) {
		return ix
	}

	for i, sw := range w.Segments {
		var ts []float64
		for _, sp := range p.Segments {
			ts = append(ts, Intersect(sw, sp, tolerance)...)
		}
		if len(ts) > 0 {
			ix[i] = coalesce(ts)
		}
	}
	return ix
}

// overlaps reports whether two normalised rectangles share at least one
// point.
func overlaps(a, b curve.Rect) bool {
	return a.X0 <= b.X1 && b.X0 <= a.X1 && a.Y0 <= b.Y1 && b.Y0 <= a.Y1
}
