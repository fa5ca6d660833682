package gradclip

import (
	"math"
	"strconv"
	"strings"
)

// Codec converts between GradientState and CSS gradient text.
// A Codec is immutable after creation and safe for concurrent use.
type Codec struct {
	opts codecOptions
}

// NewCodec creates a codec with the given options.
func NewCodec(opts ...CodecOption) *Codec {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Codec{opts: o}
}

var defaultCodec = NewCodec()

// SerializeGradient formats s with the default codec.
func SerializeGradient(s GradientState, box Box) string {
	return defaultCodec.Serialize(s, box)
}

// Serialize formats s as a CSS gradient for an element of the given box.
//
// Linear gradients emit the angle and percentage offsets; the handles do not
// influence the output. Radial gradients emit the center from LinearStart
// and convert each offset into pixels of the LinearStart→LinearEnd distance.
//
// The angle is folded into [0, 360) and offsets are clamped into [0, 100]
// first, so the output is always text Parse accepts.
func (c *Codec) Serialize(s GradientState, box Box) string {
	s = s.Clone()
	for i := range s.Stops {
		s.Stops[i].Offset = clampOffset(s.Stops[i].Offset)
	}
	stops := s.SortedStops()
	var b strings.Builder

	if s.Type == GradientRadial {
		radius := box.ToPixels(s.LinearStart).Distance(box.ToPixels(s.LinearEnd))
		b.WriteString("radial-gradient(circle at ")
		b.WriteString(formatNumber(s.LinearStart.X * 100))
		b.WriteString("% ")
		b.WriteString(formatNumber(s.LinearStart.Y * 100))
		b.WriteString("%")
		for _, st := range stops {
			writeStop(&b, st.Color, st.Offset/100*radius, "px")
		}
	} else {
		b.WriteString("linear-gradient(")
		angle := normalizeAngle(s.Angle)
		if !isFinite(angle) {
			angle = 0
		}
		b.WriteString(formatNumber(angle))
		b.WriteString("deg")
		for _, st := range stops {
			writeStop(&b, st.Color, st.Offset, "%")
		}
	}
	b.WriteByte(')')
	return b.String()
}

func writeStop(b *strings.Builder, color string, v float64, unit string) {
	b.WriteString(", ")
	b.WriteString(color)
	b.WriteByte(' ')
	b.WriteString(formatNumber(v))
	b.WriteString(unit)
}

// formatNumber prints v rounded to two decimals without trailing zeros.
func formatNumber(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
