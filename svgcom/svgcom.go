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

// Package svgcom reads and writes plotter command files.
//
// A command file consists of three lines:
//
//	WIDTH HEIGHT N_CMDS N_COORDS
//	CMDS
//	COORDS
//
// The first line holds four unsigned integers: the size of the drawing and
// the lengths of the following two lines.  The second line is a string of
// command letters, one per command: M (move to), L (line to) and C (cubic
// Bézier curve to).  The third line holds the coordinates used by the
// commands, separated by spaces: two for M and L, six for C.
package svgcom

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgps"
)

// Document is the contents of a command file.
type Document struct {
	Width, Height int

	// Data holds the drawing commands.  Only MoveTo, LineTo and CubeTo
	// commands are used.
	Data *path.Data
}

// New returns an empty document.  The size is rounded up to whole units.
func New(width, height float64) *Document {
	return &Document{
		Width:  int(math.Ceil(width)),
		Height: int(math.Ceil(height)),
		Data:   &path.Data{},
	}
}

// FromPaths returns a document which draws the given paths in order.  A
// MoveTo command is emitted at the start of every path, and wherever a
// segment does not start at the end of the previous one.
func FromPaths(paths []*svgps.Path, width, height float64) *Document {
	doc := New(width, height)
	for _, p := range paths {
		doc.AddPath(p)
	}
	return doc
}

// AddPath appends the commands for drawing p.
func (doc *Document) AddPath(p *svgps.Path) {
	d := doc.Data
	for i, s := range p.Segments {
		if i == 0 || s.Start() != p.Segments[i-1].End() {
			d.MoveTo(vec.Vec2{X: s.P0.X, Y: s.P0.Y})
		}
		if s.IsLine() {
			d.LineTo(vec.Vec2{X: s.P1.X, Y: s.P1.Y})
		} else {
			d.CubeTo(
				vec.Vec2{X: s.P1.X, Y: s.P1.Y},
				vec.Vec2{X: s.P2.X, Y: s.P2.Y},
				vec.Vec2{X: s.P3.X, Y: s.P3.Y},
			)
		}
	}
}

// NumCoords returns the number of coordinate values used by the commands.
func (doc *Document) NumCoords() int {
	return 2 * len(doc.Data.Coords)
}

// WriteTo writes the document in command file format.
func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, doc.String())
	return int64(n), err
}

// String returns the document in command file format.
func (doc *Document) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%d %d %d %d\n", doc.Width, doc.Height, len(doc.Data.Cmds), doc.NumCoords())

	for _, cmd := range doc.Data.Cmds {
		b.WriteByte(cmdLetter(cmd))
	}
	b.WriteByte('\n')

	for i, v := range doc.Data.Coords {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatFloat(v.X))
		b.WriteByte(' ')
		b.WriteString(formatFloat(v.Y))
	}
	b.WriteByte('\n')

	return b.String()
}

// PathData returns the commands in the syntax of the "d" attribute of an
// SVG path element.
func (doc *Document) PathData() string {
	b := &strings.Builder{}
	coords := doc.Data.Coords
	for _, cmd := range doc.Data.Cmds {
		switch cmd {
		case path.CmdMoveTo, path.CmdLineTo:
			fmt.Fprintf(b, "%c%s %s", cmdLetter(cmd), formatFloat(coords[0].X), formatFloat(coords[0].Y))
			coords = coords[1:]
		case path.CmdCubeTo:
			fmt.Fprintf(b, "C%s %s,%s %s,%s %s",
				formatFloat(coords[0].X), formatFloat(coords[0].Y),
				formatFloat(coords[1].X), formatFloat(coords[1].Y),
				formatFloat(coords[2].X), formatFloat(coords[2].Y))
			coords = coords[3:]
		}
	}
	return b.String()
}

func cmdLetter(cmd path.Command) byte {
	switch cmd {
	case path.CmdMoveTo:
		return 'M'
	case path.CmdLineTo:
		return 'L'
	case path.CmdCubeTo:
		return 'C'
	default:
		panic(fmt.Sprintf("svgcom: unsupported command %v", cmd))
	}
}

// formatFloat gives the shortest representation of x which parses back to
// the same value, without an exponent.
func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
