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

var orderCases = []TestCase{
	{
		Name: "stack_three",
		Layers: []Layer{
			filled(rectangle(10, 10, 50, 50), NonZero),
			stroked(horizontalLine(0, 30, 60)),
			filled(rectangle(20, 20, 40, 40), NonZero),
		},
		Width:  64,
		Height: 64,
		Want: Expect{
			Paths:   6,
			Visible: pts(5, 30, 55, 30, 10, 10, 50, 50),
			Hidden:  pts(30, 30),
		},
	},
	{
		Name: "hidden_twice",
		Layers: []Layer{
			stroked(horizontalLine(0, 32, 64)),
			filled(rectangle(10, 16, 30, 48), NonZero),
			filled(rectangle(34, 16, 54, 48), NonZero),
		},
		Width:  64,
		Height: 64,
		Want: Expect{
			Paths:   5,
			Visible: pts(5, 32, 32, 32, 60, 32),
			Hidden:  pts(20, 32, 44, 32),
		},
	},
	{
		Name: "stroke_only_cover",
		Layers: []Layer{
			stroked(horizontalLine(0, 32, 64)),
			stroked(rectangle(16, 16, 48, 48)),
		},
		Width:  64,
		Height: 64,
		Want: Expect{
			Paths:   4,
			Visible: pts(32, 32),
		},
	},
	{
		Name: "open_fill_cover",
		Layers: []Layer{
			stroked(horizontalLine(0, 32, 64)),
			filled(rectangleOpen(16, 16, 48, 48), NonZero),
		},
		Width:  64,
		Height: 64,
		Want: Expect{
			Paths:   3,
			Visible: pts(32, 32),
		},
	},
	{
		Name: "crossing_strokes",
		Layers: []Layer{
			stroked(horizontalLine(0, 32, 64)),
			stroked(verticalLine(32, 0, 64)),
		},
		Width:  64,
		Height: 64,
		Want: Expect{
			Paths:   3,
			Visible: pts(16, 32, 32, 32, 48, 32, 32, 16),
		},
	},
}
