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
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/svgps"
	"seehuhn.de/go/svgps/svgcom"
)

// WritePDF writes the pen path to a single page PDF file.  One document
// unit corresponds to one PDF point.  The pen is drawn using the grey
// value of the style colour.
func WritePDF(fname string, doc *svgcom.Document, st Style) error {
	paper := &pdf.Rectangle{
		URx: float64(doc.Width),
		URy: float64(doc.Height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left, command files use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(doc.Height)})

	page.SetStrokeColor(pdfcolor.DeviceGray(grey(st.Color)))
	page.SetLineWidth(st.Width)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	coords := doc.Data.Coords
	open := false
	for _, cmd := range doc.Data.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				page.Stroke()
			}
			page.MoveTo(coords[0].X, coords[0].Y)
			coords = coords[1:]
			open = true
		case path.CmdLineTo:
			page.LineTo(coords[0].X, coords[0].Y)
			coords = coords[1:]
		case path.CmdCubeTo:
			page.CurveTo(coords[0].X, coords[0].Y, coords[1].X, coords[1].Y, coords[2].X, coords[2].Y)
			coords = coords[3:]
		}
	}
	if open {
		page.Stroke()
	}

	svgps.Logger().Debug("plot: wrote PDF", "file", fname, "commands", len(doc.Data.Cmds))
	return page.Close()
}

// grey returns the luminance of c in the range [0, 1].
func grey(c color.Color) float64 {
	g := color.Gray16Model.Convert(c).(color.Gray16)
	return float64(g.Y) / 0xFFFF
}
