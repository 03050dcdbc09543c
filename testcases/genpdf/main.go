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

// Command genpdf renders the test cases for visual inspection.
// For every test case it writes the plotter paths before and after
// occlusion culling, as PDF and PNG files.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/svgps"
	"seehuhn.de/go/svgps/plot"
	"seehuhn.de/go/svgps/svgcom"
	"seehuhn.de/go/svgps/testcases"
)

const refDir = "testdata/preview"

// pngScale gives the number of pixels per document unit in the PNG files.
const pngScale = 4

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			paths := svgps.NewPaths(shapes(tc))
			before := svgcom.FromPaths(paths, float64(tc.Width), float64(tc.Height))
			after := svgcom.FromPaths(svgps.Cull(paths, 0), float64(tc.Width), float64(tc.Height))

			for suffix, doc := range map[string]*svgcom.Document{"in": before, "out": after} {
				base := filepath.Join(refDir, name+"_"+suffix)
				if err := write(base, doc); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func shapes(tc testcases.TestCase) []svgps.Shape {
	res := make([]svgps.Shape, len(tc.Layers))
	for i, l := range tc.Layers {
		rule := svgps.NonZero
		if l.Rule == testcases.EvenOdd {
			rule = svgps.EvenOdd
		}
		res[i] = svgps.Shape{ID: i, Data: l.Path, Fill: l.Fill, Rule: rule, Stroke: l.Stroke}
	}
	return res
}

func write(base string, doc *svgcom.Document) error {
	style := plot.Style{Color: plot.DefaultStyle.Color, Width: 0.5}

	if err := plot.WritePDF(base+".pdf", doc, style); err != nil {
		return err
	}

	fd, err := os.Create(base + ".png")
	if err != nil {
		return err
	}
	err = plot.WritePNG(fd, doc, style, pngScale)
	if err2 := fd.Close(); err == nil {
		err = err2
	}
	return err
}
