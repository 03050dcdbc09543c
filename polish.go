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

// Polish prepares paths for output to a plotter.  Zero-length segments and
// empty paths are removed, and a path which starts where the previous path
// ends is appended to the previous path, so that the pen does not need to
// be lifted in between.  The drawn geometry is unchanged.
func Polish(paths []*Path) []*Path {
	var res []*Path
	var dropped, joined int
	for _, p := range paths {
		segs := make([]Segment, 0, len(p.Segments))
		for _, s := range p.Segments {
			if s.Degenerate() {
				dropped++
				continue
			}
			segs = append(segs, s)
		}
		if len(segs) == 0 {
			continue
		}

		if n := len(res); n > 0 && res[n-1].End() == segs[0].Start() {
			prev := res[n-1]
			prev.Segments = append(prev.Segments, segs...)
			prev.Closed = false
			joined++
			continue
		}
		res = append(res, p.withSegments(segs))
	}

	Logger().Info("polish: done",
		"paths", len(paths),
		"output", len(res),
		"joined", joined,
		"degenerate", dropped)
	return res
}
