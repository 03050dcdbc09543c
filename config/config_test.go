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

package config

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/svgps"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.False(t, c.Generate.Autocut)
	assert.Equal(t, svgps.DefaultTolerance, c.Generate.Precision)

	st, err := c.Style()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0, G: 0, B: 0, A: 255}, st.Color)
	assert.Equal(t, 1.0, st.Width)
}

func TestDecode(t *testing.T) {
	in := `
[generate]
autocut = true
precision = 0.1

[render]
stroke = "red"
`
	c, err := Decode(strings.NewReader(in))
	require.NoError(t, err)

	assert.True(t, c.Generate.Autocut)
	assert.False(t, c.Generate.Polish)
	assert.Equal(t, 0.1, c.Generate.Precision)
	assert.Equal(t, "red", c.Render.Stroke)
	assert.Equal(t, 1.0, c.Render.StrokeWidth, "default kept")
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"unknown_key":   "[generate]\nspeed = 3\n",
		"wrong_type":    "[generate]\nautocut = \"yes\"\n",
		"syntax":        "[generate\n",
		"bad_precision": "[generate]\nprecision = 0\n",
		"bad_width":     "[render]\nstroke-width = -1\n",
		"bad_scale":     "[render]\nscale = 0\n",
		"bad_colour":    "[render]\nstroke = \"#12345\"\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	c := Default()
	c.Generate.Polish = true
	c.Render.Scale = 4

	buf := &bytes.Buffer{}
	require.NoError(t, c.Encode(buf))

	c2, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, c, c2)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "svgps.toml")
	require.NoError(t, os.WriteFile(fname, []byte("[render]\nscale = 2.5\n"), 0o644))

	c, err := Load(fname)
	require.NoError(t, err)
	assert.Equal(t, 2.5, c.Render.Scale)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}
