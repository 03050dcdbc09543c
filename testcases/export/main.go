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

// Command export writes the test cases as SVG files, for use as input to
// "svgps generate".  Run from the svgps module root directory.
package main

import (
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/svgps/testcases"
)

const outDir = "testdata/fixtures"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			fname := filepath.Join(outDir, category+"_"+tc.Name+".svg")
			err := os.WriteFile(fname, []byte(tc.SVG()), 0644)
			if err != nil {
				panic(err)
			}
		}
	}
}
