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

// Cut splits p at the recorded crossings.  A segment with k crossings gives
// k+1 pieces, and every crossing ends the current sub-path and starts a new
// one.  Zero-length pieces are not emitted, so a crossing at the very start
// or the very end of p does not open a new sub-path, and the result may
// hold fewer than 1+k sub-paths for k crossings.
//
// If ix is empty, the result is p itself.  Otherwise the sub-paths keep the
// source ID, fill rule and cover flag of p, but are open.  p is not
// modified.
func Cut(p *Path, ix Intersections) []*Path {
	if len(ix) == 0 {
		return []*Path{p}
	}

	var res []*Path
	var cur []Segment
	flush := func() {
		if len(cur) == 0 {
			return
		}
		frag := p.withSegments(cur)
		frag.Closed = false
		res = append(res, frag)
		cur = nil
	}

	for i, s := range p.Segments {
		t0 := 0.0
		for _, t := range ix[i] {
			if t-t0 > paramEpsilon {
				cur = append(cur, s.Sub(t0, t))
			}
			flush()
			t0 = t
		}
		switch {
		case t0 == 0:
			cur = append(cur, s)
		case 1-t0 > paramEpsilon:
			cur = append(cur, s.Sub(t0, 1))
		}
	}
	flush()

	return res
}
