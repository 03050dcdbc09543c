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

package svgdoc

import (
	"errors"
	"fmt"
	"strings"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// unitScale gives the size of the supported length units in user units.
var unitScale = map[string]float64{
	"":   1,
	"px": 1,
	"pt": 96.0 / 72.0,
	"pc": 16,
	"mm": 96.0 / 25.4,
	"cm": 96.0 / 2.54,
	"in": 96,
	"em": 16,
	"ex": 8,
}

var errPercent = errors.New("percentage not allowed here")

// parseLength parses a length with an optional unit suffix and returns the
// value in user units.
func parseLength(s string) (float64, error) {
	s = strings.TrimSpace(s)
	x, n := pstrconv.ParseFloat([]byte(s))
	if n == 0 {
		return 0, fmt.Errorf("invalid length %q", s)
	}
	unit := strings.TrimSpace(s[n:])
	if unit == "%" {
		return x, errPercent
	}
	scale, ok := unitScale[unit]
	if !ok {
		return 0, fmt.Errorf("unknown unit in %q", s)
	}
	return x * scale, nil
}

// parseLengthRel is like parseLength, but resolves percentages relative to
// ref.
func parseLengthRel(s string, ref float64) (float64, error) {
	x, err := parseLength(s)
	if err == errPercent {
		return x * ref / 100, nil
	}
	return x, err
}

func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	x, n := pstrconv.ParseFloat([]byte(s))
	if n == 0 || n != len(s) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return x, nil
}

// scanner reads the numbers in path data, point lists and transform
// lists.
type scanner struct {
	s   []byte
	pos int
}

func newScanner(s string) *scanner {
	return &scanner{s: []byte(s)}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func (sc *scanner) skipSpace() {
	for sc.pos < len(sc.s) && isSpace(sc.s[sc.pos]) {
		sc.pos++
	}
}

// skipSep skips white space and at most one comma.
func (sc *scanner) skipSep() {
	sc.skipSpace()
	if sc.pos < len(sc.s) && sc.s[sc.pos] == ',' {
		sc.pos++
		sc.skipSpace()
	}
}

func (sc *scanner) done() bool {
	sc.skipSpace()
	return sc.pos >= len(sc.s)
}

func (sc *scanner) peek() byte {
	if sc.pos >= len(sc.s) {
		return 0
	}
	return sc.s[sc.pos]
}

// atNumber reports whether a number follows, after optional separators.
func (sc *scanner) atNumber() bool {
	save := sc.pos
	sc.skipSep()
	c := sc.peek()
	sc.pos = save
	return c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9')
}

func (sc *scanner) number() (float64, error) {
	sc.skipSep()
	x, n := pstrconv.ParseFloat(sc.s[sc.pos:])
	if n == 0 {
		return 0, sc.errorf("expected number")
	}
	sc.pos += n
	return x, nil
}

// flag reads an arc flag.  Flags need not be separated from the following
// number.
func (sc *scanner) flag() (bool, error) {
	sc.skipSep()
	switch sc.peek() {
	case '0':
		sc.pos++
		return false, nil
	case '1':
		sc.pos++
		return true, nil
	}
	return false, sc.errorf("expected flag")
}

func (sc *scanner) numbers(n int) ([]float64, error) {
	res := make([]float64, n)
	for i := range res {
		x, err := sc.number()
		if err != nil {
			return nil, err
		}
		res[i] = x
	}
	return res, nil
}

func (sc *scanner) errorf(format string, args ...any) error {
	return fmt.Errorf("column %d: %s", sc.pos+1, fmt.Sprintf(format, args...))
}
