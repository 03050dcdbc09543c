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

package svgdoc

import (
	"errors"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"seehuhn.de/go/svgps"
)

type paint int

const (
	paintNone paint = iota
	paintColor
)

// style holds the presentation properties which decide whether and how a
// shape is painted.
type style struct {
	fill          paint
	fillRule      svgps.FillRule
	fillOpacity   float64
	stroke        paint
	strokeOpacity float64
	strokeWidth   float64
	visible       bool

	// displayNone is not inherited, but hides the whole subtree.
	displayNone bool
}

func defaultStyle() style {
	return style{
		fill:          paintColor,
		fillRule:      svgps.NonZero,
		fillOpacity:   1,
		stroke:        paintNone,
		strokeOpacity: 1,
		strokeWidth:   1,
		visible:       true,
	}
}

// inherit returns the style a child element starts with.
func (s style) inherit() style {
	s.displayNone = false
	return s
}

func (s *style) filled() bool {
	return s.fill == paintColor && s.fillOpacity > 0
}

func (s *style) stroked() bool {
	return s.stroke == paintColor && s.strokeOpacity > 0 && s.strokeWidth > 0
}

// apply sets the properties given as presentation attributes and in the
// style attribute.  Declarations in the style attribute take precedence.
func (s *style) apply(attr map[string]string) error {
	for name := range properties {
		if val, ok := attr[name]; ok {
			s.set(name, val)
		}
	}
	if inline, ok := attr["style"]; ok {
		decls, err := parseInlineStyle(inline)
		if err != nil {
			return err
		}
		for _, d := range decls {
			if properties[d.name] {
				s.set(d.name, d.value)
			}
		}
	}
	return nil
}

var properties = map[string]bool{
	"display":        true,
	"fill":           true,
	"fill-opacity":   true,
	"fill-rule":      true,
	"opacity":        true,
	"stroke":         true,
	"stroke-opacity": true,
	"stroke-width":   true,
	"visibility":     true,
}

// set updates a single property.  Invalid values are ignored, as required
// for CSS declarations.
func (s *style) set(name, val string) {
	val = strings.TrimSpace(val)
	if val == "" || val == "inherit" {
		return
	}
	switch name {
	case "fill":
		s.fill = parsePaint(val)
	case "stroke":
		s.stroke = parsePaint(val)
	case "fill-rule":
		switch val {
		case "nonzero":
			s.fillRule = svgps.NonZero
		case "evenodd":
			s.fillRule = svgps.EvenOdd
		}
	case "fill-opacity":
		if x, err := parseOpacity(val); err == nil {
			s.fillOpacity = x
		}
	case "stroke-opacity":
		if x, err := parseOpacity(val); err == nil {
			s.strokeOpacity = x
		}
	case "stroke-width":
		if x, err := parseLength(val); err == nil {
			s.strokeWidth = x
		}
	case "opacity":
		if x, err := parseOpacity(val); err == nil && x <= 0 {
			s.displayNone = true
		}
	case "display":
		s.displayNone = val == "none"
	case "visibility":
		s.visible = val == "visible"
	}
}

func parsePaint(val string) paint {
	switch val {
	case "none", "transparent":
		return paintNone
	default:
		return paintColor
	}
}

func parseOpacity(val string) (float64, error) {
	if pct, ok := strings.CutSuffix(val, "%"); ok {
		x, err := parseNumber(pct)
		return x / 100, err
	}
	return parseNumber(val)
}

type declaration struct {
	name, value string
}

// parseInlineStyle splits the value of a style attribute into declarations.
func parseInlineStyle(s string) ([]declaration, error) {
	p := css.NewParser(parse.NewInput(strings.NewReader(s)), true)
	var res []declaration
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); !errors.Is(err, io.EOF) {
				return nil, err
			}
			return res, nil
		case css.DeclarationGrammar:
			var val strings.Builder
			for _, tok := range p.Values() {
				val.Write(tok.Data)
			}
			res = append(res, declaration{
				name:  strings.ToLower(string(data)),
				value: val.String(),
			})
		}
	}
}
