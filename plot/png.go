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

package plot

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"iter"
	"math"
	"slices"

	"golang.org/x/image/vector"
	"honnef.co/go/curve"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/svgps"
	"seehuhn.de/go/svgps/svgcom"
)

// flattenTolerance is the maximal deviation, in pixels, of the rendered pen
// path from the exact curve.
const flattenTolerance = 0.1

// WritePNG writes a raster image of the pen path.  The image has one pixel
// per document unit times scale.
func WritePNG(w io.Writer, doc *svgcom.Document, st Style, scale float64) error {
	return png.Encode(w, Rasterize(doc, st, scale))
}

// Rasterize draws the pen path onto a white image.  The footprint of the
// pen is the union of round-capped strokes along the flattened path.
func Rasterize(doc *svgcom.Document, st Style, scale float64) *image.RGBA {
	width := max(1, int(math.Ceil(float64(doc.Width)*scale)))
	height := max(1, int(math.Ceil(float64(doc.Height)*scale)))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	r := vector.NewRasterizer(width, height)
	half := st.Width * scale / 2
	m := curve.Scale(scale, scale)

	edges := 0
	var cur curve.Point
	for el := range curve.Flatten(elements(doc.Data, m), flattenTolerance) {
		switch el.Kind {
		case curve.MoveToKind:
			cur = el.P0
		case curve.LineToKind:
			capsule(r, cur, el.P0, half)
			cur = el.P0
			edges++
		}
	}
	r.Draw(img, img.Bounds(), image.NewUniform(st.Color), image.Point{})

	svgps.Logger().Debug("plot: rasterized pen path",
		"width", width, "height", height, "edges", edges)
	return img
}

// elements converts the commands of a command file into curve path
// elements, transformed by m.
func elements(d *path.Data, m curve.Affine) iter.Seq[curve.PathElement] {
	return func(yield func(curve.PathElement) bool) {
		pt := func(i int) curve.Point {
			return curve.Pt(d.Coords[i].X, d.Coords[i].Y).Transform(m)
		}
		k := 0
		for _, cmd := range d.Cmds {
			var el curve.PathElement
			switch cmd {
			case path.CmdMoveTo:
				el = curve.MoveTo(pt(k))
				k++
			case path.CmdLineTo:
				el = curve.LineTo(pt(k))
				k++
			case path.CmdCubeTo:
				el = curve.CubicTo(pt(k), pt(k+1), pt(k+2))
				k += 3
			default:
				continue
			}
			if !yield(el) {
				return
			}
		}
	}
}

// capsule adds the outline of a round-capped stroke from a to b to the
// rasterizer.  All outlines run in the same direction, so that overlapping
// capsules do not cancel.
func capsule(r *vector.Rasterizer, a, b curve.Point, half float64) {
	if half <= 0 {
		return
	}
	d := b.Sub(a)
	l := d.Hypot()
	if l == 0 {
		els := slices.Collect(curve.Arc{
			Center:     a,
			Radii:      curve.Vec2{X: half, Y: half},
			StartAngle: math.Pi / 2,
			SweepAngle: -2 * math.Pi,
		}.PathElements(flattenTolerance))
		addOutline(r, append(els, curve.ClosePath()))
		return
	}

	angle := math.Atan2(d.Y, d.X)
	n := curve.Vec2{X: -d.Y / l * half, Y: d.X / l * half}
	els := []curve.PathElement{
		curve.MoveTo(a.Translate(n)),
		curve.LineTo(b.Translate(n)),
	}
	els = appendHalfCircle(els, b, half, angle+math.Pi/2)
	els = append(els, curve.LineTo(a.Translate(n.Negate())))
	els = appendHalfCircle(els, a, half, angle-math.Pi/2)
	els = append(els, curve.ClosePath())
	addOutline(r, els)
}

// appendHalfCircle appends a half circle with negative sweep, omitting the
// initial MoveTo.
func appendHalfCircle(els []curve.PathElement, c curve.Point, radius, start float64) []curve.PathElement {
	arc := curve.Arc{
		Center:     c,
		Radii:      curve.Vec2{X: radius, Y: radius},
		StartAngle: start,
		SweepAngle: -math.Pi,
	}
	for el := range arc.PathElements(flattenTolerance) {
		if el.Kind != curve.MoveToKind {
			els = append(els, el)
		}
	}
	return els
}

func addOutline(r *vector.Rasterizer, els []curve.PathElement) {
	for el := range curve.Flatten(slices.Values(els), flattenTolerance) {
		switch el.Kind {
		case curve.MoveToKind:
			r.MoveTo(float32(el.P0.X), float32(el.P0.Y))
		case curve.LineToKind:
			r.LineTo(float32(el.P0.X), float32(el.P0.Y))
		case curve.ClosePathKind:
			r.ClosePath()
		}
	}
}
