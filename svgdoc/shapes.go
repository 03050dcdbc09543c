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
	"fmt"
	"math"

	"honnef.co/go/curve"
)

// The functions in this file build the outlines of the basic shape
// elements.  A nil builder is returned for shapes which are not rendered,
// for example a rectangle with zero width.

func (p *parser) pathElement(m curve.Affine) (*pathBuilder, error) {
	b := newPathBuilder(m)
	err := pathData(p.attr["d"], b)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// lengths reads the given attributes as lengths.  Missing attributes are
// zero.  Percentages refer to the viewBox width.
func (p *parser) lengths(names ...string) ([]float64, error) {
	ref := p.doc.ViewBox.URx - p.doc.ViewBox.LLx
	res := make([]float64, len(names))
	for i, name := range names {
		s, ok := p.attr[name]
		if !ok {
			continue
		}
		x, err := parseLengthRel(s, ref)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", name, err)
		}
		res[i] = x
	}
	return res, nil
}

func (p *parser) rectElement(m curve.Affine) (*pathBuilder, error) {
	v, err := p.lengths("x", "y", "width", "height", "rx", "ry")
	if err != nil {
		return nil, err
	}
	x, y, w, h := v[0], v[1], v[2], v[3]
	if w <= 0 || h <= 0 {
		return nil, nil
	}

	_, hasRx := p.attr["rx"]
	_, hasRy := p.attr["ry"]
	rx, ry := v[4], v[5]
	switch {
	case hasRx && !hasRy:
		ry = rx
	case hasRy && !hasRx:
		rx = ry
	}
	rx = min(math.Abs(rx), w/2)
	ry = min(math.Abs(ry), h/2)

	b := newPathBuilder(m)
	if rx == 0 || ry == 0 {
		b.moveTo(curve.Point{X: x, Y: y})
		b.lineTo(curve.Point{X: x + w, Y: y})
		b.lineTo(curve.Point{X: x + w, Y: y + h})
		b.lineTo(curve.Point{X: x, Y: y + h})
		b.close()
		return b, nil
	}

	corner := func(cx, cy, start float64, end curve.Point) {
		b.arc(curve.Arc{
			Center:     curve.Point{X: cx, Y: cy},
			Radii:      curve.Vec2{X: rx, Y: ry},
			StartAngle: start,
			SweepAngle: math.Pi / 2,
		}, end)
	}
	b.moveTo(curve.Point{X: x + rx, Y: y})
	b.lineTo(curve.Point{X: x + w - rx, Y: y})
	corner(x+w-rx, y+ry, -math.Pi/2, curve.Point{X: x + w, Y: y + ry})
	b.lineTo(curve.Point{X: x + w, Y: y + h - ry})
	corner(x+w-rx, y+h-ry, 0, curve.Point{X: x + w - rx, Y: y + h})
	b.lineTo(curve.Point{X: x + rx, Y: y + h})
	corner(x+rx, y+h-ry, math.Pi/2, curve.Point{X: x, Y: y + h - ry})
	b.lineTo(curve.Point{X: x, Y: y + ry})
	corner(x+rx, y+ry, math.Pi, curve.Point{X: x + rx, Y: y})
	b.close()
	return b, nil
}

func (p *parser) circleElement(m curve.Affine) (*pathBuilder, error) {
	v, err := p.lengths("cx", "cy", "r")
	if err != nil {
		return nil, err
	}
	return ellipse(m, v[0], v[1], v[2], v[2]), nil
}

func (p *parser) ellipseElement(m curve.Affine) (*pathBuilder, error) {
	v, err := p.lengths("cx", "cy", "rx", "ry")
	if err != nil {
		return nil, err
	}
	return ellipse(m, v[0], v[1], v[2], v[3]), nil
}

// ellipse returns a closed ellipse, starting at the rightmost point and
// running clockwise on the screen.
func ellipse(m curve.Affine, cx, cy, rx, ry float64) *pathBuilder {
	if rx <= 0 || ry <= 0 {
		return nil
	}
	b := newPathBuilder(m)
	start := curve.Point{X: cx + rx, Y: cy}
	b.moveTo(start)
	b.arc(curve.Arc{
		Center:     curve.Point{X: cx, Y: cy},
		Radii:      curve.Vec2{X: rx, Y: ry},
		SweepAngle: 2 * math.Pi,
	}, start)
	b.close()
	return b
}

func (p *parser) lineElement(m curve.Affine) (*pathBuilder, error) {
	v, err := p.lengths("x1", "y1", "x2", "y2")
	if err != nil {
		return nil, err
	}
	b := newPathBuilder(m)
	b.moveTo(curve.Point{X: v[0], Y: v[1]})
	b.lineTo(curve.Point{X: v[2], Y: v[3]})
	return b, nil
}

func (p *parser) polyElement(m curve.Affine, closed bool) (*pathBuilder, error) {
	sc := newScanner(p.attr["points"])
	var pts []curve.Point
	for sc.atNumber() {
		x, err := sc.numbers(2)
		if err != nil {
			// an odd number of coordinates ends the list
			break
		}
		pts = append(pts, curve.Point{X: x[0], Y: x[1]})
	}
	if len(pts) < 2 {
		return nil, nil
	}

	b := newPathBuilder(m)
	b.moveTo(pts[0])
	for _, pt := range pts[1:] {
		b.lineTo(pt)
	}
	if closed {
		b.close()
	}
	return b, nil
}
