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

package testcases

var subpathCases = []TestCase{
	{
		Name: "two_squares_one_shape",
		Layers: []Layer{
			stroked(horizontalLine(0, 32, 64)),
			filled(twoSquares(10, 24, 15, 14), NonZero),
		},
		Width:  64,
		Height: 64,
		Want: Expect{
			Paths:   4,
			Visible: pts(5, 32, 32, 32, 59, 32),
			Hidden:  pts(16, 32, 46, 32),
		},
	},
	{
		Name: "two_lines_one_shape",
		Layers: []Layer{
			stroked(twoLines(0, 20, 64, 44)),
			filled(rectangle(16, 10, 48, 54), NonZero),
		},
		Width:  64,
		Height: 64,
		Want: Expect{
			Paths:   5,
			Visible: pts(8, 20, 56, 20, 8, 44, 56, 44),
			Hidden:  pts(32, 20, 32, 44),
		},
	},
	{
		Name: "open_subpath_fill",
		Layers: []Layer{
			stroked(horizontalLine(0, 32, 64)),
			filled(openThenClosed(), NonZero),
		},
		Width:  64,
		Height: 64,
		Want: Expect{
			Paths:   4,
			Visible: pts(5, 32, 32, 32, 59, 32),
			Hidden:  pts(16, 32, 46, 32),
		},
	},
}
