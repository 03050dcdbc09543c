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

// Culler removes the hidden parts of paths.  Paths are given in painter's
// order: every closed, filled path hides the parts of the earlier paths
// which lie inside it.
//
// Create one Culler and reuse it for several documents.  A Culler is not
// safe for concurrent use.
type Culler struct {
	// Tolerance is the maximum distance between a curve and the polyline
	// used to approximate it, in document units.  Must be positive.
	Tolerance float64

	stats CullStats
}

// CullStats summarises the work done by the most recent call to
// [Culler.Cull].
type CullStats struct {
	Paths     int // number of input paths
	Cut       int // number of paths which were split at crossings
	Fragments int // number of fragments created by cutting
	Dropped   int // number of paths and fragments found to be hidden
	Output    int // number of paths in the result
}

// NewCuller returns a Culler with the given flattening tolerance.
// A non-positive tolerance selects [DefaultTolerance].
func NewCuller(tolerance float64) *Culler {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Culler{Tolerance: tolerance}
}

// Cull is a convenience wrapper around [Culler.Cull].
func Cull(paths []*Path, tolerance float64) []*Path {
	return NewCuller(tolerance).Cull(paths)
}

// Stats returns the statistics of the most recent call to Cull.
func (c *Culler) Stats() CullStats {
	return c.stats
}

// Cull returns the visible parts of the given paths.
//
// The paths are processed in a single forward sweep.  When a path P is
// added, every path W collected so far is cut at its crossings with P.  If P
// is closed and filled, the pieces lying inside P are then dropped; where W
// consists of several subpaths, each of them is treated separately.  P
// itself is kept unchanged.  The relative order of the surviving pieces
// follows the input order.  The input paths are not modified.
func (c *Culler) Cull(paths []*Path) []*Path {
	c.stats = CullStats{Paths: len(paths)}
	log := Logger()

	var working []*Path
	var next []*Path
	for k, p := range paths {
		if p.Empty() {
			continue
		}
		if len(working) == 0 {
			working = append(working, p)
			continue
		}

		next = next[:0]
		before := c.stats
		cover, ok := NewCoveringShape(p, c.Tolerance)
		if ok {
			next = c.hide(next, working, cover)
		} else {
			next = c.split(next, working, p)
		}
		working, next = append(next, p), working

		log.Debug("cull: path added",
			"index", k,
			"source", p.SourceID,
			"cut", c.stats.Cut-before.Cut,
			"dropped", c.stats.Dropped-before.Dropped,
			"working", len(working))
	}

	c.stats.Output = len(working)
	log.Info("cull: done",
		"paths", c.stats.Paths,
		"cut", c.stats.Cut,
		"fragments", c.stats.Fragments,
		"dropped", c.stats.Dropped,
		"output", c.stats.Output)

	return working
}

// hide appends the parts of the working paths which are not covered by
// cover to next.
func (c *Culler) hide(next, working []*Path, cover *CoveringShape) []*Path {
	outline := cover.Outline()
	for _, w := range working {
		if !overlaps(w.Bounds(), cover.bbox) {
			next = append(next, w)
			continue
		}

		for _, sub := range w.Subpaths() {
			ix := PathIntersections(sub, outline, c.Tolerance)
			frags := Cut(sub, ix)
			if len(ix) > 0 {
				c.stats.Cut++
				c.stats.Fragments += len(frags)
			}
			for _, f := range frags {
				if cover.Covers(f, f.RepresentativePoint()) {
					c.stats.Dropped++
					continue
				}
				next = append(next, f)
			}
		}
	}
	return next
}

// split appends the working paths to next, cut at their crossings with p.
// Since p cannot cover anything, all pieces are kept.
func (c *Culler) split(next, working []*Path, p *Path) []*Path {
	for _, w := range working {
		ix := PathIntersections(w, p, c.Tolerance)
		if len(ix) == 0 {
			next = append(next, w)
			continue
		}
		frags := Cut(w, ix)
		c.stats.Cut++
		c.stats.Fragments += len(frags)
		next = append(next, frags...)
	}
	return next
}
