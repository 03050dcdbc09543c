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

// Package svgdoc reads SVG files and extracts the painted shapes.
//
// Only the geometry and the fill/stroke state of the basic shape elements is
// used.  Text, images, gradients, clipping and masking are ignored.  All
// coordinates of the returned shapes are in the viewport coordinate system
// of the document, with the y axis pointing down.
package svgdoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
	"honnef.co/go/curve"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/svgps"
)

// Document holds the shapes of an SVG file in painter's order.
type Document struct {
	// Width and Height give the size of the viewport.
	Width, Height float64

	// ViewBox is the user space rectangle mapped onto the viewport.
	// LLx/LLy hold the minimum and URx/URy the maximum coordinates.
	ViewBox rect.Rect

	Shapes []svgps.Shape
}

// Options control which shapes are returned by [ParseWithOptions].
type Options struct {
	// OnlyStroked drops all shapes which have no stroke.
	OnlyStroked bool
}

// ParseError is returned for malformed documents.
type ParseError struct {
	// Offset is the byte offset of the problem in the input, or -1 if
	// unknown.
	Offset int
	Msg    string
}

func (err *ParseError) Error() string {
	if err.Offset < 0 {
		return "svgdoc: " + err.Msg
	}
	return fmt.Sprintf("svgdoc: offset %d: %s", err.Offset, err.Msg)
}

// Parse reads an SVG document.
func Parse(r io.Reader) (*Document, error) {
	return ParseWithOptions(r, Options{})
}

// ParseWithOptions reads an SVG document.
func ParseWithOptions(r io.Reader, opt Options) (*Document, error) {
	in := parse.NewInput(r)
	p := &parser{
		opt:  opt,
		doc:  &Document{},
		in:   in,
		lex:  xml.NewLexer(in),
		attr: make(map[string]string),
	}
	err := p.run()
	if err != nil {
		return nil, err
	}
	if !p.seenRoot {
		return nil, &ParseError{Offset: -1, Msg: "no <svg> element found"}
	}
	return p.doc, nil
}

// state is the inherited graphics state of an open element.
type state struct {
	name  string
	ctm   curve.Affine
	style style

	// skip is set inside subtrees which are not rendered.
	skip bool
}

type parser struct {
	opt  Options
	doc  *Document
	in   *parse.Input
	lex  *xml.Lexer
	attr map[string]string

	stack    []state
	seenRoot bool
	nextID   int
}

func (p *parser) run() error {
	for {
		start := p.in.Offset()
		tt, _ := p.lex.Next()
		switch tt {
		case xml.ErrorToken:
			if errors.Is(p.lex.Err(), io.EOF) {
				if len(p.stack) > 0 {
					return &ParseError{Offset: start,
						Msg: fmt.Sprintf("unclosed <%s> element", p.stack[len(p.stack)-1].name)}
				}
				return nil
			}
			return &ParseError{Offset: start, Msg: p.lex.Err().Error()}

		case xml.StartTagToken:
			name := localName(p.lex.Text())
			void, err := p.readAttributes()
			if err != nil {
				return err
			}
			err = p.startElement(name, start, void)
			if err != nil {
				return err
			}

		case xml.EndTagToken:
			name := localName(p.lex.Text())
			if len(p.stack) == 0 || p.stack[len(p.stack)-1].name != name {
				return &ParseError{Offset: start,
					Msg: fmt.Sprintf("unexpected end tag </%s>", name)}
			}
			p.stack = p.stack[:len(p.stack)-1]
		}
	}
}

// readAttributes collects the attributes of the current start tag into
// p.attr.  The return value reports whether the tag was self-closing.
func (p *parser) readAttributes() (bool, error) {
	clear(p.attr)
	for {
		start := p.in.Offset()
		tt, _ := p.lex.Next()
		switch tt {
		case xml.AttributeToken:
			key := localName(p.lex.Text())
			val := p.lex.AttrVal()
			if len(val) >= 2 && (val[0] == '"' || val[0] == '\'') {
				val = val[1 : len(val)-1]
			}
			p.attr[key] = unescape(val)
		case xml.StartTagCloseToken:
			return false, nil
		case xml.StartTagCloseVoidToken:
			return true, nil
		case xml.ErrorToken:
			err := p.lex.Err()
			if errors.Is(err, io.EOF) {
				return false, &ParseError{Offset: start, Msg: "unexpected end of file in tag"}
			}
			return false, &ParseError{Offset: start, Msg: err.Error()}
		default:
			return false, &ParseError{Offset: start, Msg: "malformed start tag"}
		}
	}
}

// skipped lists the elements whose content is never rendered directly.
var skipped = map[string]bool{
	"clipPath":       true,
	"defs":           true,
	"desc":           true,
	"filter":         true,
	"foreignObject":  true,
	"image":          true,
	"linearGradient": true,
	"marker":         true,
	"mask":           true,
	"metadata":       true,
	"pattern":        true,
	"radialGradient": true,
	"script":         true,
	"style":          true,
	"symbol":         true,
	"text":           true,
	"title":          true,
	"use":            true,
}

func (p *parser) startElement(name string, offset int, void bool) error {
	var parent state
	if len(p.stack) > 0 {
		parent = p.stack[len(p.stack)-1]
	} else if p.seenRoot {
		return &ParseError{Offset: offset, Msg: "content after the root element"}
	} else if name != "svg" {
		return &ParseError{Offset: offset,
			Msg: fmt.Sprintf("root element is <%s>, not <svg>", name)}
	}

	cur := state{name: name, skip: parent.skip}
	if !cur.skip && skipped[name] {
		cur.skip = true
	}

	if !cur.skip {
		var err error
		if len(p.stack) == 0 {
			cur.style = defaultStyle()
			cur.ctm, err = p.rootTransform()
			p.seenRoot = true
		} else {
			cur.style = parent.style.inherit()
			cur.ctm = parent.ctm
		}
		if err != nil {
			return &ParseError{Offset: offset, Msg: err.Error()}
		}

		err = cur.style.apply(p.attr)
		if err != nil {
			return &ParseError{Offset: offset, Msg: err.Error()}
		}
		if tf, ok := p.attr["transform"]; ok {
			m, err := parseTransform(tf)
			if err != nil {
				return &ParseError{Offset: offset, Msg: err.Error()}
			}
			cur.ctm = cur.ctm.Mul(m)
		}
		if cur.style.displayNone {
			cur.skip = true
		}
	}

	if !cur.skip {
		err := p.draw(&cur)
		if err != nil {
			return &ParseError{Offset: offset, Msg: err.Error()}
		}
	}

	if !void {
		p.stack = append(p.stack, cur)
	}
	return nil
}

// draw emits the shape for a basic shape element.  Other elements are
// ignored.
func (p *parser) draw(cur *state) error {
	var d *pathBuilder
	var err error
	switch cur.name {
	case "path":
		d, err = p.pathElement(cur.ctm)
	case "rect":
		d, err = p.rectElement(cur.ctm)
	case "circle":
		d, err = p.circleElement(cur.ctm)
	case "ellipse":
		d, err = p.ellipseElement(cur.ctm)
	case "line":
		d, err = p.lineElement(cur.ctm)
	case "polyline":
		d, err = p.polyElement(cur.ctm, false)
	case "polygon":
		d, err = p.polyElement(cur.ctm, true)
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("<%s>: %w", cur.name, err)
	}

	st := &cur.style
	if d == nil || len(d.data.Cmds) == 0 || !st.visible {
		return nil
	}
	if !st.filled() && !st.stroked() {
		return nil
	}
	if p.opt.OnlyStroked && !st.stroked() {
		return nil
	}

	p.doc.Shapes = append(p.doc.Shapes, svgps.Shape{
		ID:     p.nextID,
		Data:   d.data,
		Fill:   st.filled(),
		Rule:   st.fillRule,
		Stroke: st.stroked(),
	})
	p.nextID++
	return nil
}

// localName strips a namespace prefix from an element or attribute name.
// Attributes in foreign namespaces keep their prefix, so that they cannot
// be mistaken for SVG attributes.
func localName(b []byte) string {
	s := string(b)
	if rest, ok := strings.CutPrefix(s, "svg:"); ok {
		return rest
	}
	return s
}

var entities = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", "\"",
	"&apos;", "'",
	"&amp;", "&",
)

func unescape(b []byte) string {
	if bytes.IndexByte(b, '&') < 0 {
		return string(b)
	}
	return entities.Replace(string(b))
}
