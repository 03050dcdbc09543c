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

var curveCases = []TestCase{
	{
		Name: "line_under_circle",
		Layers: []Layer{
			stroked(horizontalLine(0, 32, 64)),
			filled(circle(32, 32, 20), NonZero),
		},
		Width:  64,
		Height: 64,
		Want: Expect{
			Paths:   3,
			Visible: pts(4, 32, 60, 32),
			Hidden:  pts(32, 32),
		},
	},
	{
		Name: "circle_under_square",
		Layers: []Layer{
			stroked(circle(20, 32, 12)),
			filled(rectangle(24, 10, 60, 54), NonZero),
		},
		Width:  64,
		Height: 64,
		Want: Expect{
			Paths:   2,
			Visible: pts(8, 32, 20, 20, 20, 44),
			Hidden:  pts(32, 32),
		},
	},
	{
		Name: "circle_under_circle",
		Layers: []Layer{
			filled(circle(24, 32, 14), NonZero),
			filled(circle(40, 32, 14), NonZero),
		},
		Width:  64,
		Height: 64,
		Want: Expect{
			Paths:   2,
			Visible: pts(10, 32, 54, 32, 26, 32),
			Hidden:  pts(38, 32),
		},
	},
	{
		Name: "quadratic_under_square",
		Layers: []Layer{
			stroked(quadraticCurveOpen(0, 40, 32, 0, 64, 40)),
			filled(rectangle(24, 10, 40, 50), NonZero),
		},
		Width:  64,
		Height: 64,
		Want: Expect{
			Paths:   3,
			Visible: pts(6.4, 32.8, 57.6, 32.8),
			Hidden:  pts(32, 20),
		},
	},
}
