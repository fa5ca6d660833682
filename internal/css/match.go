package css

import (
	"strings"

	"github.com/tdewolff/parse/v2/css"
	"github.com/tdewolff/parse/v2/strconv"
)

// Unit is the unit of a color stop position.
type Unit string

// Stop position units accepted by ParseStop.
const (
	UnitPercent Unit = "%"
	UnitPixel   Unit = "px"
)

// Stop is a matched color stop segment.
type Stop struct {
	// Color is the color token as written, e.g. "#ff0000" or "rgba(0, 0, 0, 0.5)".
	Color string
	Value float64
	Unit  Unit
}

// colorFunctions are the function calls accepted as a stop color.
var colorFunctions = map[string]bool{
	"rgb": true, "rgba": true, "hsl": true, "hsla": true,
}

// ParseStop matches a segment of the form
//
//	<color> <whitespace> <number>(%|px)
//
// where <color> is a hex color of 3 to 8 digits, an rgb/rgba/hsl/hsla call
// or a bare identifier. Anything else is rejected.
func ParseStop(seg string) (Stop, bool) {
	toks := trimSpace(Tokenize(seg))
	color, rest, ok := matchColor(toks)
	if !ok {
		return rejectStop(seg, "color")
	}
	if len(rest) == 0 || !rest[0].IsSpace() {
		return rejectStop(seg, "separator")
	}
	rest = trimSpace(rest)
	if len(rest) != 1 {
		return rejectStop(seg, "position")
	}

	var unit Unit
	switch rest[0].Type {
	case css.PercentageToken:
		unit = UnitPercent
	case css.DimensionToken:
		unit = UnitPixel
	default:
		return rejectStop(seg, "position")
	}
	v, ok := number(rest[0].Text, string(unit))
	if !ok {
		return rejectStop(seg, "unit")
	}
	return Stop{Color: color, Value: v, Unit: unit}, true
}

func rejectStop(seg, reason string) (Stop, bool) {
	slogger().Debug("css: stop rejected", "segment", seg, "reason", reason)
	return Stop{}, false
}

// matchColor consumes a color token run from the front of toks.
func matchColor(toks []Token) (color string, rest []Token, ok bool) {
	if len(toks) == 0 {
		return "", nil, false
	}
	t := toks[0]
	switch t.Type {
	case css.HashToken:
		if !IsHexColor(t.Text) {
			return "", nil, false
		}
		return t.Text, toks[1:], true
	case css.IdentToken:
		return t.Text, toks[1:], true
	case css.FunctionToken:
		if !colorFunctions[strings.ToLower(strings.TrimSuffix(t.Text, "("))] {
			return "", nil, false
		}
		end := closingIndex(toks)
		if end < 0 {
			return "", nil, false
		}
		return join(toks[:end+1]), toks[end+1:], true
	}
	return "", nil, false
}

// IsHexColor reports whether s is '#' followed by 3 to 8 hex digits.
func IsHexColor(s string) bool {
	if len(s) < 4 || len(s) > 9 || s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// ParseAngle matches a bare angle of the form digits[.digits]deg, with no
// sign, exponent or other unit.
func ParseAngle(seg string) (float64, bool) {
	toks := trimSpace(Tokenize(seg))
	if len(toks) != 1 || toks[0].Type != css.DimensionToken {
		return 0, false
	}
	text := toks[0].Text
	num, ok := strings.CutSuffix(text, "deg")
	if !ok || !isPlainDecimal(num) {
		return 0, false
	}
	return number(text, "deg")
}

// isPlainDecimal reports whether s matches \d+(\.\d+)?.
func isPlainDecimal(s string) bool {
	intPart, frac, hasDot := strings.Cut(s, ".")
	if !allDigits(intPart) {
		return false
	}
	return !hasDot || allDigits(frac)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// number parses text as a number followed by exactly unit
// (case-insensitive).
func number(text, unit string) (float64, bool) {
	v, n := strconv.ParseFloat([]byte(text))
	if n == 0 || !strings.EqualFold(text[n:], unit) {
		return 0, false
	}
	return v, true
}

// RadialPrelude is the optional first segment of a radial-gradient().
type RadialPrelude struct {
	// Shape is "circle", "ellipse" or "" when omitted.
	Shape string
	// HasPosition reports whether an "at x y" clause was present.
	HasPosition bool
	// X and Y are the center position in percent of the box.
	X, Y float64
}

// extentKeywords are radial size keywords; they are accepted and ignored.
var extentKeywords = map[string]bool{
	"closest-side": true, "closest-corner": true,
	"farthest-side": true, "farthest-corner": true,
}

// ParseRadialPrelude matches "[circle|ellipse] [<extent>] [at <x>% <y>%]".
// At least one part must be present.
func ParseRadialPrelude(seg string) (RadialPrelude, bool) {
	var p RadialPrelude
	toks := words(Tokenize(seg))
	matched := false
	for len(toks) > 0 {
		t := toks[0]
		if t.Type != css.IdentToken {
			return RadialPrelude{}, false
		}
		word := strings.ToLower(t.Text)
		switch {
		case (word == "circle" || word == "ellipse") && p.Shape == "" && !p.HasPosition:
			p.Shape = word
			toks = toks[1:]
		case extentKeywords[word] && !p.HasPosition:
			toks = toks[1:]
		case word == "at" && !p.HasPosition && len(toks) == 3:
			x, okX := position(toks[1], horizontalKeywords)
			y, okY := position(toks[2], verticalKeywords)
			if !okX || !okY {
				return RadialPrelude{}, false
			}
			p.HasPosition, p.X, p.Y = true, x, y
			toks = nil
		default:
			return RadialPrelude{}, false
		}
		matched = true
	}
	return p, matched
}

var (
	horizontalKeywords = map[string]float64{"left": 0, "center": 50, "right": 100}
	verticalKeywords   = map[string]float64{"top": 0, "center": 50, "bottom": 100}
)

// position reads a percentage or one of the given position keywords.
func position(t Token, keywords map[string]float64) (float64, bool) {
	switch t.Type {
	case css.PercentageToken:
		return number(t.Text, "%")
	case css.IdentToken:
		v, ok := keywords[strings.ToLower(t.Text)]
		return v, ok
	}
	return 0, false
}

// words drops all whitespace tokens.
func words(toks []Token) []Token {
	out := toks[:0:0]
	for _, t := range toks {
		if !t.IsSpace() {
			out = append(out, t)
		}
	}
	return out
}

// ParsePercentPair matches "<x>% <y>%", the shape of a polygon() vertex.
func ParsePercentPair(seg string) (x, y float64, ok bool) {
	toks := words(Tokenize(seg))
	if len(toks) != 2 || toks[0].Type != css.PercentageToken || toks[1].Type != css.PercentageToken {
		return 0, 0, false
	}
	x, okX := number(toks[0].Text, "%")
	y, okY := number(toks[1].Text, "%")
	return x, y, okX && okY
}

// IsFillRule reports whether seg is a polygon() fill-rule keyword.
func IsFillRule(seg string) bool {
	switch strings.ToLower(strings.TrimSpace(seg)) {
	case "nonzero", "evenodd":
		return true
	}
	return false
}
