package color

import (
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tdewolff/parse/v2/strconv"
	"golang.org/x/image/colornames"
)

// Parse resolves a CSS color token: #rgb, #rgba, #rrggbb, #rrggbbaa,
// rgb()/rgba(), hsl()/hsla() or a named color. It reports false for
// anything it cannot resolve, such as var() references.
func Parse(s string) (color.NRGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case s == "transparent":
		return color.NRGBA{}, true
	case strings.HasPrefix(s, "rgb"):
		return parseRGB(s)
	case strings.HasPrefix(s, "hsl"):
		return parseHSL(s)
	}
	c, ok := colornames.Map[s]
	if !ok {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, true
}

func parseHex(h string) (color.NRGBA, bool) {
	var digits [8]uint8
	for i := 0; i < len(h); i++ {
		if i >= len(digits) {
			return color.NRGBA{}, false
		}
		d, ok := hexDigit(h[i])
		if !ok {
			return color.NRGBA{}, false
		}
		digits[i] = d
	}
	short := func(d uint8) uint8 { return d<<4 | d }
	long := func(hi, lo uint8) uint8 { return hi<<4 | lo }
	switch len(h) {
	case 3:
		return color.NRGBA{R: short(digits[0]), G: short(digits[1]), B: short(digits[2]), A: 255}, true
	case 4:
		return color.NRGBA{R: short(digits[0]), G: short(digits[1]), B: short(digits[2]), A: short(digits[3])}, true
	case 6:
		return color.NRGBA{R: long(digits[0], digits[1]), G: long(digits[2], digits[3]), B: long(digits[4], digits[5]), A: 255}, true
	case 8:
		return color.NRGBA{
			R: long(digits[0], digits[1]), G: long(digits[2], digits[3]),
			B: long(digits[4], digits[5]), A: long(digits[6], digits[7]),
		}, true
	}
	return color.NRGBA{}, false
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

// args splits the argument list of a color function. Both the legacy comma
// syntax and the space syntax with a "/ alpha" suffix are accepted.
func args(s string) ([]string, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return nil, false
	}
	inner := s[open+1 : len(s)-1]
	inner = strings.NewReplacer(",", " ", "/", " ").Replace(inner)
	f := strings.Fields(inner)
	if len(f) < 3 || len(f) > 4 {
		return nil, false
	}
	return f, true
}

// component parses a number or percentage. Percentages are scaled so that
// 100% maps to full.
func component(s string, full float64) (float64, bool) {
	v, n := strconv.ParseFloat([]byte(s))
	if n == 0 {
		return 0, false
	}
	switch s[n:] {
	case "":
		return v, true
	case "%":
		return v / 100 * full, true
	case "deg":
		return v, true
	}
	return 0, false
}

func alpha(f []string) (uint8, bool) {
	if len(f) < 4 {
		return 255, true
	}
	a, ok := component(f[3], 1)
	return toU8(a), ok
}

func parseRGB(s string) (color.NRGBA, bool) {
	f, ok := args(s)
	if !ok {
		return color.NRGBA{}, false
	}
	var rgb [3]uint8
	for i := range rgb {
		v, ok := component(f[i], 255)
		if !ok {
			return color.NRGBA{}, false
		}
		rgb[i] = toU8(v / 255)
	}
	a, ok := alpha(f)
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: a}, ok
}

func parseHSL(s string) (color.NRGBA, bool) {
	f, ok := args(s)
	if !ok {
		return color.NRGBA{}, false
	}
	h, okH := component(f[0], 360)
	sat, okS := component(f[1], 1)
	l, okL := component(f[2], 1)
	a, okA := alpha(f)
	if !okH || !okS || !okL || !okA {
		return color.NRGBA{}, false
	}
	if h = math.Mod(h, 360); h < 0 {
		h += 360
	}
	c := colorful.Hsl(h, clamp01(sat), clamp01(l)).Clamped()
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: a}, true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
