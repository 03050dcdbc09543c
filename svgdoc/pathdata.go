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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// arcTolerance is the maximal distance, in user units, between an
// elliptical arc and its Bézier approximation.
const arcTolerance = 1e-3

// pathBuilder collects path commands in user space and stores them
// transformed into viewport coordinates.
type pathBuilder struct {
	data *path.Data
	m    curve.Affine
}

func newPathBuilder(m curve.Affine) *pathBuilder {
	return &pathBuilder{data: &path.Data{}, m: m}
}

func (b *pathBuilder) tr(p curve.Point) vec.Vec2 {
	q := p.Transform(b.m)
	return vec.Vec2{X: q.X, Y: q.Y}
}

func (b *pathBuilder) moveTo(p curve.Point) {
	b.data.MoveTo(b.tr(p))
}

func (b *pathBuilder) lineTo(p curve.Point) {
	b.data.LineTo(b.tr(p))
}

func (b *pathBuilder) quadTo(c, p curve.Point) {
	b.data.QuadTo(b.tr(c), b.tr(p))
}

func (b *pathBuilder) cubeTo(c1, c2, p curve.Point) {
	b.data.CubeTo(b.tr(c1), b.tr(c2), b.tr(p))
}

func (b *pathBuilder) close() {
	b.data.Close()
}

// arc appends the Bézier approximation of an arc.  The current point must
// be the start of the arc.  The last point is set to end exactly.
func (b *pathBuilder) arc(a curve.Arc, end curve.Point) {
	var cubics []curve.PathElement
	for el := range a.PathElements(arcTolerance) {
		if el.Kind == curve.CubicToKind {
			cubics = append(cubics, el)
		}
	}
	for i, el := range cubics {
		p := el.P2
		if i == len(cubics)-1 {
			p = end
		}
		b.cubeTo(el.P0, el.P1, p)
	}
}

// pathData interprets the value of a "d" attribute.
func pathData(d string, b *pathBuilder) error {
	sc := newScanner(d)

	var cur, start, ctrl curve.Point
	var prev byte
	closed := false
	for !sc.done() {
		cmd := sc.peek()
		if isLetter(cmd) {
			sc.pos++
		} else if prev != 0 && prev != 'Z' && prev != 'z' && sc.atNumber() {
			// repeated arguments without a command letter
			cmd = prev
			switch cmd {
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			}
		} else {
			return sc.errorf("unexpected %q in path data", cmd)
		}
		if prev == 0 && cmd != 'M' && cmd != 'm' {
			return sc.errorf("path data must start with a move-to command")
		}

		rel := cmd >= 'a'
		offs := func(x, y float64) curve.Point {
			if rel {
				return curve.Point{X: cur.X + x, Y: cur.Y + y}
			}
			return curve.Point{X: x, Y: y}
		}
		if closed && cmd != 'M' && cmd != 'm' && cmd != 'Z' && cmd != 'z' {
			b.moveTo(start)
		}
		closed = false

		var next curve.Point
		switch cmd {
		case 'M', 'm':
			x, err := sc.numbers(2)
			if err != nil {
				return err
			}
			next = offs(x[0], x[1])
			b.moveTo(next)
			start = next
			ctrl = next

		case 'L', 'l':
			x, err := sc.numbers(2)
			if err != nil {
				return err
			}
			next = offs(x[0], x[1])
			b.lineTo(next)
			ctrl = next

		case 'H', 'h':
			x, err := sc.number()
			if err != nil {
				return err
			}
			next = curve.Point{X: x, Y: cur.Y}
			if rel {
				next.X += cur.X
			}
			b.lineTo(next)
			ctrl = next

		case 'V', 'v':
			y, err := sc.number()
			if err != nil {
				return err
			}
			next = curve.Point{X: cur.X, Y: y}
			if rel {
				next.Y += cur.Y
			}
			b.lineTo(next)
			ctrl = next

		case 'C', 'c':
			x, err := sc.numbers(6)
			if err != nil {
				return err
			}
			c1 := offs(x[0], x[1])
			c2 := offs(x[2], x[3])
			next = offs(x[4], x[5])
			b.cubeTo(c1, c2, next)
			ctrl = c2

		case 'S', 's':
			x, err := sc.numbers(4)
			if err != nil {
				return err
			}
			c1 := cur
			if prev == 'C' || prev == 'c' || prev == 'S' || prev == 's' {
				c1 = reflect(ctrl, cur)
			}
			c2 := offs(x[0], x[1])
			next = offs(x[2], x[3])
			b.cubeTo(c1, c2, next)
			ctrl = c2

		case 'Q', 'q':
			x, err := sc.numbers(4)
			if err != nil {
				return err
			}
			c := offs(x[0], x[1])
			next = offs(x[2], x[3])
			b.quadTo(c, next)
			ctrl = c

		case 'T', 't':
			x, err := sc.numbers(2)
			if err != nil {
				return err
			}
			c := cur
			if prev == 'Q' || prev == 'q' || prev == 'T' || prev == 't' {
				c = reflect(ctrl, cur)
			}
			next = offs(x[0], x[1])
			b.quadTo(c, next)
			ctrl = c

		case 'A', 'a':
			r, err := sc.numbers(3)
			if err != nil {
				return err
			}
			large, err := sc.flag()
			if err != nil {
				return err
			}
			sweep, err := sc.flag()
			if err != nil {
				return err
			}
			x, err := sc.numbers(2)
			if err != nil {
				return err
			}
			next = offs(x[0], x[1])
			arcTo(b, cur, r[0], r[1], r[2], large, sweep, next)
			ctrl = next

		case 'Z', 'z':
			b.close()
			next = start
			ctrl = start
			closed = true

		default:
			return fmt.Errorf("unknown path command %q", cmd)
		}
		cur = next
		prev = cmd
	}
	return nil
}

// reflect returns the reflection of p about the centre c.
func reflect(p, c curve.Point) curve.Point {
	return curve.Point{X: 2*c.X - p.X, Y: 2*c.Y - p.Y}
}

// arcTo appends an elliptical arc given in endpoint parameterisation.  The
// conversion to centre parameterisation follows appendix B.2.4 of the SVG 2
// recommendation, including the scaling of radii which are too small.
func arcTo(b *pathBuilder, from curve.Point, rx, ry, rotDeg float64, large, sweep bool, to curve.Point) {
	if from == to {
		return
	}
	rx = math.Abs(rx)
	ry = math.Abs(ry)
	if rx == 0 || ry == 0 {
		b.lineTo(to)
		return
	}

	phi := degrees(math.Mod(rotDeg, 360))
	sin, cos := math.Sincos(phi)
	dx := (from.X - to.X) / 2
	dy := (from.Y - to.Y) / 2
	x1 := cos*dx + sin*dy
	y1 := -sin*dx + cos*dy

	lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := math.Sqrt(max(0, num/den))
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	center := curve.Point{
		X: cos*cx1 - sin*cy1 + (from.X+to.X)/2,
		Y: sin*cx1 + cos*cy1 + (from.Y+to.Y)/2,
	}

	theta1 := vectorAngle(1, 0, (x1-cx1)/rx, (y1-cy1)/ry)
	delta := vectorAngle((x1-cx1)/rx, (y1-cy1)/ry, (-x1-cx1)/rx, (-y1-cy1)/ry)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	b.arc(curve.Arc{
		Center:     center,
		Radii:      curve.Vec2{X: rx, Y: ry},
		StartAngle: theta1,
		SweepAngle: delta,
		XRotation:  phi,
	}, to)
}

// vectorAngle returns the signed angle from (ux, uy) to (vx, vy).
func vectorAngle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}
