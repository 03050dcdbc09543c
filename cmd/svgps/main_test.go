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

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/svgps"
	"seehuhn.de/go/svgps/svgcom"
	"seehuhn.de/go/svgps/svgdoc"
)

const lineUnderSquare = `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100">
<line x1="0" y1="50" x2="100" y2="50" stroke="black"/>
<rect x="25" y="25" width="50" height="50"/>
</svg>`

// run executes the command line tool and returns everything written to
// stderr.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { svgps.SetLogger(nil) })

	buf := &bytes.Buffer{}
	cmd := newRootCmd(buf)
	cmd.SetOut(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fname, []byte(content), 0o644))
	return fname
}

func readCommands(t *testing.T, fname string) *svgcom.Document {
	t.Helper()
	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	doc, err := svgcom.Parse(string(data))
	require.NoError(t, err)
	return doc
}

func letters(doc *svgcom.Document) string {
	lines := strings.Split(doc.String(), "\n")
	return lines[1]
}

func TestGenerate(t *testing.T) {
	in := writeInput(t, "in.svg", lineUnderSquare)
	out := filepath.Join(t.TempDir(), "out.svgcom")

	_, err := run(t, "generate", in, out)
	require.NoError(t, err)
	doc := readCommands(t, out)
	assert.Equal(t, 100, doc.Width)
	assert.Equal(t, 100, doc.Height)
	assert.Equal(t, "MLMLLLL", letters(doc))

	_, err = run(t, "generate", "--autocut", in, out)
	require.NoError(t, err)
	doc = readCommands(t, out)
	assert.Equal(t, "MLMLMLLLL", letters(doc))
	assert.InDelta(t, 25, doc.Data.Coords[1].X, 1e-9)
	assert.InDelta(t, 75, doc.Data.Coords[2].X, 1e-9)
}

func TestGeneratePolish(t *testing.T) {
	in := writeInput(t, "in.svg", `<svg width="10" height="10">
<path d="M0 0L5 0" stroke="black" fill="none"/>
<path d="M5 0L5 5" stroke="black" fill="none"/>
</svg>`)
	out := filepath.Join(t.TempDir(), "out.svgcom")

	_, err := run(t, "generate", "--polish", in, out)
	require.NoError(t, err)
	assert.Equal(t, "MLL", letters(readCommands(t, out)))
}

func TestGenerateOnlyStroked(t *testing.T) {
	in := writeInput(t, "in.svg", lineUnderSquare)
	out := filepath.Join(t.TempDir(), "out.svgcom")

	_, err := run(t, "generate", "--onlystroked", in, out)
	require.NoError(t, err)
	assert.Equal(t, "ML", letters(readCommands(t, out)))
}

func TestGenerateConfig(t *testing.T) {
	in := writeInput(t, "in.svg", lineUnderSquare)
	conf := writeInput(t, "svgps.toml", "[generate]\nautocut = true\n")
	out := filepath.Join(t.TempDir(), "out.svgcom")

	_, err := run(t, "--config", conf, "generate", in, out)
	require.NoError(t, err)
	assert.Equal(t, "MLMLMLLLL", letters(readCommands(t, out)))

	// command line flags take precedence
	_, err = run(t, "--config", conf, "generate", "--autocut=false", in, out)
	require.NoError(t, err)
	assert.Equal(t, "MLMLLLL", letters(readCommands(t, out)))
}

func TestVerbose(t *testing.T) {
	in := writeInput(t, "in.svg", lineUnderSquare)
	out := filepath.Join(t.TempDir(), "out.svgcom")

	stderr, err := run(t, "generate", in, out)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	stderr, err = run(t, "-v", "generate", "--autocut", in, out)
	require.NoError(t, err)
	assert.Contains(t, stderr, "generate: read SVG")
	assert.Contains(t, stderr, "cull: done")
}

func TestRender(t *testing.T) {
	in := writeInput(t, "in.svgcom", "20 10 3 6\nMLL\n1 1 19 1 19 9\n")
	dir := t.TempDir()

	for _, ext := range []string{"svg", "png", "pdf"} {
		out := filepath.Join(dir, "out."+ext)
		_, err := run(t, "render", "--stroke", "blue", "--scale", "2", in, out)
		require.NoError(t, err, ext)

		info, err := os.Stat(out)
		require.NoError(t, err, ext)
		assert.Positive(t, info.Size(), ext)
	}

	data, err := os.ReadFile(filepath.Join(dir, "out.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `stroke="#0000ff"`)
	assert.Contains(t, string(data), `d="M1 1L19 1L19 9"`)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3, "temporary files left behind")
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	svgIn := writeInput(t, "in.svg", lineUnderSquare)
	comIn := writeInput(t, "in.svgcom", "10 10 1 2\nM\n0 0\n")
	badSVG := writeInput(t, "bad.svg", `<svg><path d="M 0 0 L"/></svg>`)
	badCom := writeInput(t, "bad.svgcom", "10 10 2 2\nML\n0 0\n")

	var readErr *ReadError
	var writeErr *WriteError
	var docErr *svgdoc.ParseError
	var comErr *svgcom.ParseError

	_, err := run(t, "generate", filepath.Join(dir, "missing.svg"), filepath.Join(dir, "out.svgcom"))
	assert.True(t, errors.As(err, &readErr), "%v", err)

	_, err = run(t, "generate", badSVG, filepath.Join(dir, "out.svgcom"))
	assert.True(t, errors.As(err, &docErr), "%v", err)

	_, err = run(t, "render", badCom, filepath.Join(dir, "out.svg"))
	assert.True(t, errors.As(err, &comErr), "%v", err)

	_, err = run(t, "generate", svgIn, filepath.Join(dir, "no", "such", "dir", "out.svgcom"))
	assert.True(t, errors.As(err, &writeErr), "%v", err)

	_, err = run(t, "render", comIn, filepath.Join(dir, "out.bmp"))
	assert.True(t, errors.As(err, &writeErr), "%v", err)

	_, err = run(t, "render", "--stroke", "nocolour", comIn, filepath.Join(dir, "out.svg"))
	assert.Error(t, err)

	_, err = run(t, "--config", filepath.Join(dir, "missing.toml"), "generate", svgIn, filepath.Join(dir, "out.svgcom"))
	assert.True(t, errors.As(err, &readErr), "%v", err)

	_, err = run(t, "generate", svgIn)
	assert.Error(t, err)

	// no partial output was created by any of the failed commands
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReportError(t *testing.T) {
	buf := &bytes.Buffer{}
	reportError(buf, &ReadError{Path: "x.svg", Err: os.ErrNotExist})
	assert.Equal(t, "svgps: cannot read \"x.svg\": file does not exist\n", buf.String())
}
