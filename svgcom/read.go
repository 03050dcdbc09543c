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

package svgcom

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	pstrconv "github.com/tdewolff/parse/v2/strconv"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ParseError is returned when a command file is malformed.
type ParseError struct {
	Line int // 1-based line number, or 0 if the error concerns the whole file
	Msg  string
}

func (err *ParseError) Error() string {
	if err.Line == 0 {
		return "svgcom: " + err.Msg
	}
	return fmt.Sprintf("svgcom: line %d: %s", err.Line, err.Msg)
}

// Read reads a command file from r.
func Read(r io.Reader) (*Document, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(body))
}

// Parse decodes the contents of a command file.
func Parse(s string) (*Document, error) {
	lines := splitLines(s)
	if len(lines) < 3 {
		return nil, &ParseError{Msg: "Expected at least 3 lines"}
	}

	metrics, err := parseMetrics(lines[0])
	if err != nil {
		return nil, err
	}
	cmds := []rune(lines[1])
	coords, err := parseCoords(lines[2])
	if err != nil {
		return nil, err
	}

	if len(cmds) != metrics[2] || len(coords) != metrics[3] {
		return nil, &ParseError{Msg: "Data length does not match the header information"}
	}

	doc := &Document{
		Width:  metrics[0],
		Height: metrics[1],
		Data:   &path.Data{},
	}
	next := func() vec.Vec2 {
		v := vec.Vec2{X: coords[0], Y: coords[1]}
		coords = coords[2:]
		return v
	}
	need := map[rune]int{'M': 2, 'L': 2, 'C': 6}
	for _, c := range cmds {
		n, ok := need[c]
		if !ok {
			return nil, &ParseError{Line: 2, Msg: fmt.Sprintf("Invalid command: %c", c)}
		}
		if len(coords) < n {
			return nil, &ParseError{Line: 3, Msg: "Not enough coordinates for the commands"}
		}
		switch c {
		case 'M':
			doc.Data.MoveTo(next())
		case 'L':
			doc.Data.LineTo(next())
		case 'C':
			p1 := next()
			p2 := next()
			doc.Data.CubeTo(p1, p2, next())
		}
	}
	if len(coords) > 0 {
		return nil, &ParseError{Line: 3, Msg: "Too many coordinates for the commands"}
	}

	return doc, nil
}

// splitLines splits s into lines.  A final line terminator does not start
// a new line, and carriage returns before a line feed are removed.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func parseMetrics(line string) ([]int, error) {
	fields := strings.Fields(line)
	metrics := make([]int, 0, 4)
	for _, f := range fields {
		x, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return nil, &ParseError{Line: 1, Msg: fmt.Sprintf("Uint32 parsing error: invalid digit in %q", f)}
		}
		metrics = append(metrics, int(x))
	}
	if len(metrics) != 4 {
		return nil, &ParseError{Line: 1, Msg: "Expected 4 metrics components: WIDTH, HEIGHT, N_CMD, N_COORD"}
	}
	return metrics, nil
}

func parseCoords(line string) ([]float64, error) {
	fields := strings.Fields(line)
	coords := make([]float64, 0, len(fields))
	for _, f := range fields {
		x, n := pstrconv.ParseFloat([]byte(f))
		if n != len(f) {
			return nil, &ParseError{Line: 3, Msg: fmt.Sprintf("Float64 parsing error: invalid number %q", f)}
		}
		coords = append(coords, x)
	}
	return coords, nil
}
