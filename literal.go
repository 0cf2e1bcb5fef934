/*
Copyright © 2026 the Arrhenius authors.
This file is part of Arrhenius.

Arrhenius is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Arrhenius is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Arrhenius.  If not, see <http://www.gnu.org/licenses/>.
*/

package arrhenius

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoValue is returned by ParseLiteral when the input is empty,
// which means the field has not been filled in yet.
var ErrNoValue = errors.New("arrhenius: no value")

// LiteralError is returned by ParseLiteral when the input text does not
// match any of the accepted numeric spellings.
type LiteralError struct {
	Text string
}

func (e *LiteralError) Error() string {
	return fmt.Sprintf("arrhenius: unable to parse numeric value %q", e.Text)
}

// literalPatterns are the alternative scientific notation spellings
// accepted by ParseLiteral, in priority order. Each one is anchored at the
// start of the text and captures a mantissa and an exponent.
var literalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^([+-]?\d*\.?\d+)\s*[×xX*]\s*10\^([+-]?\d+)`), // 1.5×10^13
	// 1.5×1013. This is ambiguous with the plain number 1013, so it is
	// only tried after the caret form.
	regexp.MustCompile(`^([+-]?\d*\.?\d+)\s*[×xX*]\s*10([+-]?\d+)`),
	regexp.MustCompile(`^([+-]?\d*\.?\d+)\s*[eE]\s*([+-]?\d+)`), // 1.5 e 13
}

// ParseLiteral parses a user-supplied numeric value. In addition to the
// formats understood by strconv.ParseFloat, it accepts
// "1.5×10^13", "1.5x10^13", "1.5*10^13", "1.5×1013" and "1.5 e 13".
// Empty input returns ErrNoValue; input that can't be read returns a
// *LiteralError. The returned value is always finite.
func ParseLiteral(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrNoValue
	}
	if v, ok := parseFinite(text); ok {
		return v, nil
	}
	for _, re := range literalPatterns {
		m := re.FindStringSubmatchIndex(text)
		if m == nil {
			continue
		}
		rewritten := text[m[2]:m[3]] + "e" + text[m[4]:m[5]] + text[m[1]:]
		if v, ok := parseFinite(rewritten); ok {
			return v, nil
		}
	}
	if v, ok := parseFinite(text); ok {
		return v, nil
	}
	return 0, &LiteralError{Text: text}
}

func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
