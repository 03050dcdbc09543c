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

var occludeCases = []TestCase{
	{
		Name: "line_under_square",
		Layers: []Layer{
			stroked(horizontalLine(0, 32, 64)),
			filled(rectangle(16, 16, 48, 48), NonZero),
		},
		Width:  64,
		Height: 64,
		Want: Expect{
			Paths:   3,
			Visible: pts(8, 32, 56, 32, 16, 16),
			Hidden:  pts(32, 32),
		},
	},
	{
		Name: "line_over_square",
		Layers: []Layer{
			filled(rectangle(16, 16, 48, 48), NonZero),
			stroked(horizontalLine(0, 32, 64)),
		},
		Width:  64,
		Height: 64,
		Want: Expect{
			Paths:   4,
			Visible: pts(8, 32, 32, 32, 56, 32, 48, 48),
		},
	},
	{
		Name: "line_inside_square",
		Layers: []Layer{
			stroked(horizontalLine(20, 32, 44)),
			filled(rectangle(16, 16, 48, 48), NonZero),
		},
		Width:  64,
		Height: 64,
		Want: Expect{
			Paths:   1,
			Visible: pts(16, 16),
			Hidden:  pts(20, 32, 32, 32, 44, 32),
		},
	},
	{
		Name: "disjoint",
		Layers: []Layer{
			stroked(horizontalLine(0, 5, 64)),
			filled(rectangle(16, 16, 48, 48), NonZero),
		},
		Width:  64,
		Height: 64,
		Want: Expect{
			Paths:   2,
			Visible: pts(32, 5),
		},
	},
	{
		Name: "square_over_square",
		Layers: []Layer{
			filled(rectangle(10, 10, 40, 40), NonZero),
			filled(rectangle(25, 25, 55, 55), NonZero),
		},
		Width:  64,
		Height: 64,
		Want: Expect{
			Paths:   3,
			Visible: pts(10, 10, 40, 10, 10, 40, 55, 55, 25, 25),
			Hidden:  pts(40, 40, 40, 32, 32, 40),
		},
	},
	{
		Name: "line_under_triangle",
		Layers: []Layer{
			stroked(horizontalLine(0, 40, 64)),
			filled(triangle(10, 50, 32, 10, 54, 50), NonZero),
		},
		Width:  64,
		Height: 64,
		Want: Expect{
			Paths:   3,
			Visible: pts(5, 40, 60, 40),
			Hidden:  pts(32, 40),
		},
	},
}
