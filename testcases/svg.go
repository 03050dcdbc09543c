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
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
)

// SVG returns the test case as an SVG document.  Every layer becomes a
// path element with explicit fill and stroke attributes.
func (tc TestCase) SVG() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		tc.Width, tc.Height, tc.Width, tc.Height)
	for _, l := range tc.Layers {
		fill := "none"
		if l.Fill {
			fill = "black"
		}
		stroke := "none"
		if l.Stroke {
			stroke = "black"
		}
		fmt.Fprintf(b, `<path d="%s" fill="%s" stroke="%s"`, PathData(l.Path), fill, stroke)
		if l.Rule == EvenOdd {
			b.WriteString(` fill-rule="evenodd"`)
		}
		b.WriteString("/>\n")
	}
	b.WriteString("</svg>\n")
	return b.String()
}

// PathData formats p in the syntax of the SVG "d" attribute.
func PathData(p *path.Data) string {
	var parts []string
	k := 0
	for _, cmd := range p.Cmds {
		var letter string
		var n int
		switch cmd {
		case path.CmdMoveTo:
			letter, n = "M", 1
		case path.CmdLineTo:
			letter, n = "L", 1
		case path.CmdQuadTo:
			letter, n = "Q", 2
		case path.CmdCubeTo:
			letter, n = "C", 3
		case path.CmdClose:
			letter = "Z"
		}
		parts = append(parts, letter)
		for _, v := range p.Coords[k : k+n] {
			parts = append(parts, formatFloat(v.X), formatFloat(v.Y))
		}
		k += n
	}
	return strings.Join(parts, " ")
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
