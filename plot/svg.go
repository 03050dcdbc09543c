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
	"bufio"
	"fmt"
	"io"
	"strconv"

	"seehuhn.de/go/svgps/svgcom"
)

// WriteSVG writes the pen path as a single SVG path element.
func WriteSVG(w io.Writer, doc *svgcom.Document, st Style) error {
	out := bufio.NewWriter(w)
	fmt.Fprintln(out, `<?xml version="1.0" standalone="no"?>`)
	fmt.Fprintf(out, `<svg version="1.1" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d">`+"\n",
		doc.Width, doc.Height)
	fmt.Fprintf(out, `<path stroke="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round" fill="none" d="`,
		hexColor(st.Color), strconv.FormatFloat(st.Width, 'f', -1, 64))
	out.WriteString(doc.PathData())
	fmt.Fprintln(out, `"/>`)
	out.WriteString("</svg>")
	return out.Flush()
}
