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
	"strings"

	"honnef.co/go/curve"
	"seehuhn.de/go/geom/rect"
)

// parseTransform parses the value of a transform attribute.  The returned
// matrix maps the coordinates of the element into the coordinate system
// of its parent.
func parseTransform(s string) (curve.Affine, error) {
	m := curve.Identity
	sc := newScanner(s)
	for !sc.done() {
		start := sc.pos
		for sc.pos < len(sc.s) && isLetter(sc.s[sc.pos]) {
			sc.pos++
		}
		name := string(sc.s[start:sc.pos])
		sc.skipSpace()
		if sc.peek() != '(' {
			return curve.Identity, fmt.Errorf("transform %q: expected '('", s)
		}
		sc.pos++

		var args []float64
		for sc.atNumber() {
			x, err := sc.number()
			if err != nil {
				return curve.Identity, fmt.Errorf("transform %q: %w", s, err)
			}
			args = append(args, x)
		}
		sc.skipSpace()
		if sc.peek() != ')' {
			return curve.Identity, fmt.Errorf("transform %q: expected ')'", s)
		}
		sc.pos++

		t, err := transformFunc(name, args)
		if err != nil {
			return curve.Identity, fmt.Errorf("transform %q: %w", s, err)
		}
		m = m.Mul(t)

		sc.skipSep()
	}
	return m, nil
}

func transformFunc(name string, args []float64) (curve.Affine, error) {
	switch {
	case name == "matrix" && len(args) == 6:
		return curve.Affine{
			N0: args[0], N1: args[1],
			N2: args[2], N3: args[3],
			N4: args[4], N5: args[5],
		}, nil
	case name == "translate" && len(args) == 1:
		return curve.Translate(curve.Vec2{X: args[0]}), nil
	case name == "translate" && len(args) == 2:
		return curve.Translate(curve.Vec2{X: args[0], Y: args[1]}), nil
	case name == "scale" && len(args) == 1:
		return curve.Scale(args[0], args[0]), nil
	case name == "scale" && len(args) == 2:
		return curve.Scale(args[0], args[1]), nil
	case name == "rotate" && len(args) == 1:
		return curve.Rotate(degrees(args[0])), nil
	case name == "rotate" && len(args) == 3:
		c := curve.Point{X: args[1], Y: args[2]}
		return curve.RotateAbout(degrees(args[0]), c), nil
	case name == "skewX" && len(args) == 1:
		return curve.Skew(math.Tan(degrees(args[0])), 0), nil
	case name == "skewY" && len(args) == 1:
		return curve.Skew(0, math.Tan(degrees(args[0]))), nil
	}
	return curve.Identity, fmt.Errorf("invalid %s() with %d arguments", name, len(args))
}

func degrees(x float64) float64 {
	return x * math.Pi / 180
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// rootTransform reads the size and the viewBox of the outermost <svg>
// element and returns the matrix mapping user space to the viewport.
func (p *parser) rootTransform() (curve.Affine, error) {
	var vb rect.Rect
	hasViewBox := false
	if s, ok := p.attr["viewBox"]; ok && strings.TrimSpace(s) != "" {
		sc := newScanner(s)
		x, err := sc.numbers(4)
		if err != nil || !sc.done() {
			return curve.Identity, fmt.Errorf("invalid viewBox %q", s)
		}
		if x[2] <= 0 || x[3] <= 0 {
			return curve.Identity, fmt.Errorf("viewBox %q has non-positive size", s)
		}
		vb = rect.Rect{LLx: x[0], LLy: x[1], URx: x[0] + x[2], URy: x[1] + x[3]}
		hasViewBox = true
	}

	width, err := rootLength(p.attr["width"], vb.URx-vb.LLx, hasViewBox)
	if err != nil {
		return curve.Identity, fmt.Errorf("width: %w", err)
	}
	height, err := rootLength(p.attr["height"], vb.URy-vb.LLy, hasViewBox)
	if err != nil {
		return curve.Identity, fmt.Errorf("height: %w", err)
	}
	if !hasViewBox {
		vb = rect.Rect{URx: width, URy: height}
	}

	p.doc.Width = width
	p.doc.Height = height
	p.doc.ViewBox = vb

	return viewBoxTransform(vb, width, height, p.attr["preserveAspectRatio"]), nil
}

// defaultSize is used for the viewport when neither a size nor a viewBox
// is given.
const defaultSize = 100

func rootLength(s string, vbSize float64, hasViewBox bool) (float64, error) {
	ref := float64(defaultSize)
	if hasViewBox {
		ref = vbSize
	}
	if strings.TrimSpace(s) == "" || s == "auto" {
		return ref, nil
	}
	x, err := parseLengthRel(s, ref)
	if err != nil {
		return 0, err
	}
	if x <= 0 {
		return 0, fmt.Errorf("non-positive size %q", s)
	}
	return x, nil
}

// viewBoxTransform maps the viewBox onto a viewport of the given size.
// Only the "none" value of preserveAspectRatio and the
// alignment keywords with "meet" are supported; "slice" is treated like
// "meet".
func viewBoxTransform(vb rect.Rect, width, height float64, aspect string) curve.Affine {
	vbW := vb.URx - vb.LLx
	vbH := vb.URy - vb.LLy
	sx := width / vbW
	sy := height / vbH

	fields := strings.Fields(aspect)
	align := "xMidYMid"
	if len(fields) > 0 {
		align = fields[0]
	}
	if align == "none" {
		return curve.Scale(sx, sy).Mul(curve.Translate(curve.Vec2{X: -vb.LLx, Y: -vb.LLy}))
	}

	s := min(sx, sy)
	var tx, ty float64
	switch {
	case strings.HasPrefix(align, "xMid"):
		tx = (width - vbW*s) / 2
	case strings.HasPrefix(align, "xMax"):
		tx = width - vbW*s
	}
	switch {
	case strings.HasSuffix(align, "YMid"):
		ty = (height - vbH*s) / 2
	case strings.HasSuffix(align, "YMax"):
		ty = height - vbH*s
	}
	return curve.Translate(curve.Vec2{X: tx, Y: ty}).
		Mul(curve.Scale(s, s)).
		Mul(curve.Translate(curve.Vec2{X: -vb.LLx, Y: -vb.LLy}))
}
