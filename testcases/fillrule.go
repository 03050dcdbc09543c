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

var fillRuleCases = []TestCase{
	{
		Name: "ring_evenodd",
		Layers: []Layer{
			stroked(horizontalLine(0, 32, 64)),
			filled(ringShape(32, 32, 22, 10, false), EvenOdd),
		},
		Width:  64,
		Height: 64,
		Want: Expect{
			Paths:   4,
			Visible: pts(5, 32, 32, 32, 59, 32),
			Hidden:  pts(16, 32, 48, 32),
		},
	},
	{
		Name: "ring_nonzero",
		Layers: []Layer{
			stroked(horizontalLine(0, 32, 64)),
			filled(ringShape(32, 32, 22, 10, false), NonZero),
		},
		Width:  64,
		Height: 64,
		Want: Expect{
			Paths:   3,
			Visible: pts(5, 32, 59, 32),
			Hidden:  pts(16, 32, 32, 32, 48, 32),
		},
	},
	{
		Name: "ring_nonzero_reversed",
		Layers: []Layer{
			stroked(horizontalLine(0, 32, 64)),
			filled(ringShape(32, 32, 22, 10, true), NonZero),
		},
		Width:  64,
		Height: 64,
		Want: Expect{
			Paths:   4,
			Visible: pts(5, 32, 32, 32, 59, 32),
			Hidden:  pts(16, 32, 48, 32),
		},
	},
}
