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
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/svgps/svgcom"
)

func TestParseColor(t *testing.T) {
	cases := map[string]color.RGBA{
		"#000":             {R: 0, G: 0, B: 0, A: 255},
		"#f80":             {R: 0xff, G: 0x88, B: 0x00, A: 255},
		"#1A2b3C":          {R: 0x1a, G: 0x2b, B: 0x3c, A: 255},
		"rgb(1, 2, 3)":     {R: 1, G: 2, B: 3, A: 255},
		"rgb(100%,0%,50%)": {R: 255, G: 0, B: 128, A: 255},
		"red":              {R: 255, G: 0, B: 0, A: 255},
		" Navy ":           {R: 0, G: 0, B: 128, A: 255},
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		if assert.NoError(t, err, in) {
			assert.Equal(t, want, got, in)
		}
	}

	for _, in := range []string{"", "#12", "#ggg", "rgb(1,2)", "rgb(1,2,300)", "rgb(1,2,3", "nocolour"} {
		_, err := ParseColor(in)
		assert.Error(t, err, in)
	}
}

func TestFormatOf(t *testing.T) {
	cases := map[string]Format{
		"out.svg":        SVG,
		"dir/OUT.PDF":    PDF,
		"preview.v2.png": PNG,
	}
	for in, want := range cases {
		got, err := FormatOf(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}

	_, err := FormatOf("out.svgcom")
	assert.Error(t, err)
	_, err = FormatOf("noext")
	assert.Error(t, err)
}

func testDocument(t *testing.T) *svgcom.Document {
	t.Helper()
	doc, err := svgcom.Parse("10 10 3 6\nMLL\n2 5 8 5 2 5\n")
	require.NoError(t, err)
	return doc
}

func TestWriteSVG(t *testing.T) {
	doc, err := svgcom.Parse("12 7 3 10\nMLC\n0 0 1.5 2 1 1 2 2 3 3\n")
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	err = WriteSVG(buf, doc, Style{Color: color.RGBA{R: 255, A: 255}, Width: 0.5})
	require.NoError(t, err)

	want := `<?xml version="1.0" standalone="no"?>
<svg version="1.1" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 12 7">
<path stroke="#ff0000" stroke-width="0.5" stroke-linecap="round" stroke-linejoin="round" fill="none" d="M0 0L1.5 2C1 1,2 2,3 3"/>
</svg>`
	assert.Equal(t, want, buf.String())
}

func TestRasterize(t *testing.T) {
	doc := testDocument(t)
	img := Rasterize(doc, Style{Color: color.Black, Width: 2}, 1)

	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, 10, img.Bounds().Dy())

	// the path runs back over itself, which must not erase the pen
	onPath := img.RGBAAt(5, 4)
	assert.Less(t, onPath.R, uint8(4))
	assert.Equal(t, uint8(255), onPath.A)
	offPath := img.RGBAAt(5, 1)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, offPath)

	// round cap beyond the end point
	capPixel := img.RGBAAt(8, 4)
	assert.Less(t, capPixel.R, uint8(128))

	big := Rasterize(doc, DefaultStyle, 2.5)
	assert.Equal(t, 25, big.Bounds().Dx())
}

func TestWritePNG(t *testing.T) {
	doc := testDocument(t)
	buf := &bytes.Buffer{}
	require.NoError(t, WritePNG(buf, doc, DefaultStyle, 3))

	img, err := png.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, 30, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())
}

func TestWritePDF(t *testing.T) {
	doc := testDocument(t)
	fname := filepath.Join(t.TempDir(), "out.pdf")
	require.NoError(t, WritePDF(fname, doc, DefaultStyle))

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}
