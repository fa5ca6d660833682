package gradclip

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// GradientType selects between linear and radial gradients.
type GradientType int

const (
	// GradientLinear is a CSS linear-gradient().
	GradientLinear GradientType = iota
	// GradientRadial is a CSS radial-gradient().
	GradientRadial
)

// String returns "linear" or "radial".
func (t GradientType) String() string {
	switch t {
	case GradientLinear:
		return "linear"
	case GradientRadial:
		return "radial"
	default:
		return fmt.Sprintf("GradientType(%d)", int(t))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t GradientType) MarshalText() ([]byte, error) {
	switch t {
	case GradientLinear, GradientRadial:
		return []byte(t.String()), nil
	}
	return nil, fmt.Errorf("gradclip: unknown gradient type %d", int(t))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *GradientType) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "linear":
		*t = GradientLinear
	case "radial":
		*t = GradientRadial
	default:
		return fmt.Errorf("gradclip: unknown gradient type %q", b)
	}
	return nil
}

// ColorStop marks where a color occurs along a gradient.
// Color is kept verbatim as written in CSS; Offset is a percentage.
type ColorStop struct {
	ID     string  `json:"id"`
	Color  string  `json:"color"`
	Offset float64 `json:"offset"`
}

// GradientState is the editable form of a gradient fill.
//
// LinearStart and LinearEnd are handle positions in relative box
// coordinates. For linear gradients they only visualize the angle; for
// radial gradients LinearStart is the center and the distance to
// LinearEnd is the 100% radius.
type GradientState struct {
	Type        GradientType `json:"type"`
	Angle       float64      `json:"angle"`
	Stops       []ColorStop  `json:"stops"`
	LinearStart Point        `json:"linearStart"`
	LinearEnd   Point        `json:"linearEnd"`
}

// HandleFractions places the two linear gradient handles along the solved
// gradient line when they are derived from an angle.
type HandleFractions struct {
	Start, End float64
}

// DefaultHandleFractions puts the handles at 20% and 80% of the line.
// This is an editor convention, not something CSS defines.
var DefaultHandleFractions = HandleFractions{Start: 0.2, End: 0.8}

// DefaultGradient returns the canonical fallback fill: a 90° black to white
// linear gradient.
func DefaultGradient() GradientState {
	s := GradientState{
		Type:  GradientLinear,
		Angle: 90,
		Stops: []ColorStop{
			{ID: stopID(0), Color: "#000000", Offset: 0},
			{ID: stopID(1), Color: "#ffffff", Offset: 100},
		},
	}
	s.ResetHandles(Box{Width: 1, Height: 1}, DefaultHandleFractions)
	return s
}

func stopID(i int) string {
	return "stop-" + strconv.Itoa(i)
}

// Clone returns a deep copy of s.
func (s GradientState) Clone() GradientState {
	s.Stops = append([]ColorStop(nil), s.Stops...)
	return s
}

// SortedStops returns the stops ordered by ascending offset. Ties keep
// their original order. The receiver is not modified.
func (s GradientState) SortedStops() []ColorStop {
	sorted := make([]ColorStop, len(s.Stops))
	copy(sorted, s.Stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// ResetHandles re-derives the handles from the angle (linear) or places
// the default radius handle (radial) for the given box.
func (s *GradientState) ResetHandles(box Box, f HandleFractions) {
	if s.Type == GradientRadial {
		line := SolveRadialLine(box.Width, box.Height)
		s.LinearStart = box.ToRelative(line.Start())
		s.LinearEnd = box.ToRelative(line.End())
		return
	}
	s.LinearStart, s.LinearEnd = linearHandles(box, s.Angle, f)
}

// linearHandles returns relative handle positions at the given fractions of
// the solved gradient line.
func linearHandles(box Box, angle float64, f HandleFractions) (Point, Point) {
	line := SolveLinearLine(box.Width, box.Height, angle)
	return box.ToRelative(line.Lerp(f.Start)), box.ToRelative(line.Lerp(f.End))
}

// SetHandles moves both handles. For a linear gradient the angle follows
// the direction from start to end; coincident handles keep the angle.
func (s *GradientState) SetHandles(start, end Point, box Box) {
	s.LinearStart, s.LinearEnd = start, end
	if s.Type != GradientLinear {
		return
	}
	p1, p2 := box.ToPixels(start), box.ToPixels(end)
	if p1 == p2 {
		return
	}
	s.Angle = AngleFromPoints(p1, p2)
}

// AddStop appends a stop with a fresh ID and returns it. The offset is
// clamped into [0, 100].
func (s *GradientState) AddStop(color string, offset float64) ColorStop {
	next := 0
	for _, st := range s.Stops {
		if n, ok := strings.CutPrefix(st.ID, "stop-"); ok {
			if i, err := strconv.Atoi(n); err == nil && i >= next {
				next = i + 1
			}
		}
	}
	stop := ColorStop{ID: stopID(next), Color: color, Offset: clampOffset(offset)}
	s.Stops = append(s.Stops, stop)
	return stop
}

// RemoveStop removes the stop with the given ID. The last remaining stop
// cannot be removed; RemoveStop reports whether a stop was removed.
func (s *GradientState) RemoveStop(id string) bool {
	if len(s.Stops) <= 1 {
		return false
	}
	for i, st := range s.Stops {
		if st.ID == id {
			s.Stops = append(s.Stops[:i], s.Stops[i+1:]...)
			return true
		}
	}
	return false
}

// clampOffset clamps a stop offset into [0, 100]. NaN maps to 0.
func clampOffset(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}
