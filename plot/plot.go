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

// Package plot renders plotter command files for inspection.
//
// The pen movements of a [svgcom.Document] can be written as an SVG file, a
// single page PDF file, or a PNG image.  All back-ends draw the pen path
// with round caps and joins, without any fill.
package plot

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Style describes the pen used for rendering.
type Style struct {
	Color color.Color

	// Width is the width of the pen, in document units.
	Width float64
}

// DefaultStyle is a black pen of width 1.
var DefaultStyle = Style{
	Color: color.Black,
	Width: 1,
}

// Format identifies an output file format.
type Format int

const (
	SVG Format = iota + 1
	PDF
	PNG
)

func (f Format) String() string {
	switch f {
	case SVG:
		return "svg"
	case PDF:
		return "pdf"
	case PNG:
		return "png"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf chooses the output format from the extension of a file name.
func FormatOf(fname string) (Format, error) {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".svg":
		return SVG, nil
	case ".pdf":
		return PDF, nil
	case ".png":
		return PNG, nil
	}
	return 0, fmt.Errorf("unsupported output format %q", filepath.Ext(fname))
}

// ParseColor parses a colour given as "#rgb", "#rrggbb", "rgb(r, g, b)" or
// as one of the SVG colour keywords.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if hex, ok := strings.CutPrefix(s, "#"); ok {
		var digits [6]byte
		switch len(hex) {
		case 3:
			for i := range 3 {
				digits[2*i] = hex[i]
				digits[2*i+1] = hex[i]
			}
		case 6:
			copy(digits[:], hex)
		default:
			return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
		}
		x, err := strconv.ParseUint(string(digits[:]), 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
		}
		return color.RGBA{R: uint8(x >> 16), G: uint8(x >> 8), B: uint8(x), A: 0xFF}, nil
	}

	if args, ok := strings.CutPrefix(s, "rgb("); ok {
		args, ok = strings.CutSuffix(args, ")")
		parts := strings.Split(args, ",")
		if !ok || len(parts) != 3 {
			return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
		}
		var c [3]uint8
		for i, part := range parts {
			v, err := colorComponent(strings.TrimSpace(part))
			if err != nil {
				return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
			}
			c[i] = v
		}
		return color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xFF}, nil
	}

	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown colour %q", s)
}

func colorComponent(s string) (uint8, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		x, err := strconv.ParseFloat(pct, 64)
		if err != nil || x < 0 || x > 100 {
			return 0, fmt.Errorf("invalid component %q", s)
		}
		return uint8(x*255/100 + 0.5), nil
	}
	x, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid component %q", s)
	}
	return uint8(x), nil
}

// hexColor formats c as "#rrggbb".
func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
