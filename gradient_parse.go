package gradclip

import (
	"fmt"
	"math"

	"github.com/gogpu/gradclip/internal/css"
)

// ParseGradient parses src with the default codec.
func ParseGradient(src string, box Box) (GradientState, error) {
	return defaultCodec.Parse(src, box)
}

// ParseGradientOrDefault parses src with the default codec and falls back
// to DefaultGradient when src is not a recognizable gradient.
func ParseGradientOrDefault(src string, box Box) GradientState {
	return defaultCodec.ParseOrDefault(src, box)
}

// ParseOrDefault is Parse with the DefaultGradient fallback: the editor is
// never left without a valid fill.
func (c *Codec) ParseOrDefault(src string, box Box) GradientState {
	s, err := c.Parse(src, box)
	if err != nil {
		Logger().Warn("gradclip: using default gradient", "err", err)
		d := DefaultGradient()
		d.ResetHandles(box, c.opts.handles)
		return d
	}
	return s
}

// Parse reads a linear-gradient() or radial-gradient() value for an
// element of the given box.
//
// Linear handles are placed by convention along the angle (see
// WithHandleFractions), so parsing what Serialize produced restores stops
// and angle but not custom handle positions.
//
// Radial pixel stops are turned back into percentages of the handle
// distance. The radius handle is placed at the largest pixel stop, toward
// the box edge with the most room, which makes the outermost stop 100%.
// When that stop reaches past the edge the handle stops on the edge and
// stops beyond it clamp to 100%.
//
// Linear stop offsets are clamped into [0, 100] whatever their unit, so
// "150px" becomes 100.
func (c *Codec) Parse(src string, box Box) (GradientState, error) {
	key := c.key(src, box)
	if c.opts.cache != nil {
		if s, ok := c.opts.cache.get(key); ok {
			Logger().Debug("gradclip: parse cache hit", "css", src)
			return s, nil
		}
	}

	s, err := c.parse(src, box)
	if err != nil {
		return GradientState{}, err
	}
	if c.opts.cache != nil {
		c.opts.cache.put(key, s)
	}
	return s, nil
}

// Forget drops the cached result of parsing src for box with this codec's
// options, for hosts that rewrite one stored style. It reports whether an
// entry was removed; a codec without a ParseCache has nothing to forget.
func (c *Codec) Forget(src string, box Box) bool {
	if c.opts.cache == nil {
		return false
	}
	return c.opts.cache.remove(c.key(src, box))
}

func (c *Codec) key(src string, box Box) parseKey {
	return parseKey{css: src, box: box, handles: c.opts.handles, policy: c.opts.policy}
}

func (c *Codec) parse(src string, box Box) (GradientState, error) {
	name := css.FunctionName(src)
	inner, ok := css.Unwrap(src, name)
	if !ok {
		return GradientState{}, fmt.Errorf("%w: %.40q", ErrUnrecognizedGradient, src)
	}
	switch name {
	case "linear-gradient":
		return c.parseLinear(inner, box)
	case "radial-gradient":
		return c.parseRadial(inner, box)
	}
	return GradientState{}, fmt.Errorf("%w: %.40q", ErrUnrecognizedGradient, src)
}

func (c *Codec) parseLinear(inner string, box Box) (GradientState, error) {
	segs := css.SplitTopLevel(inner)
	angle := 90.0
	if len(segs) > 0 {
		if a, ok := css.ParseAngle(segs[0]); ok {
			angle = a
			segs = segs[1:]
		}
	}

	matched, err := c.matchStops(segs)
	if err != nil {
		return GradientState{}, err
	}
	s := GradientState{Type: GradientLinear, Angle: angle}
	for _, m := range matched {
		s.Stops = append(s.Stops, ColorStop{
			ID:     stopID(len(s.Stops)),
			Color:  m.Color,
			Offset: clampOffset(m.Value),
		})
	}
	c.fallbackStops(&s)
	s.LinearStart, s.LinearEnd = linearHandles(box, angle, c.opts.handles)
	return s, nil
}

func (c *Codec) parseRadial(inner string, box Box) (GradientState, error) {
	segs := css.SplitTopLevel(inner)
	center := Point{X: 0.5, Y: 0.5}
	if len(segs) > 0 {
		if p, ok := css.ParseRadialPrelude(segs[0]); ok {
			if p.HasPosition {
				center = Point{X: p.X / 100, Y: p.Y / 100}
			}
			segs = segs[1:]
		}
	}

	matched, err := c.matchStops(segs)
	if err != nil {
		return GradientState{}, err
	}

	radius := 0.0
	for _, m := range matched {
		if m.Unit == css.UnitPixel && m.Value > radius {
			radius = m.Value
		}
	}
	if radius == 0 {
		radius = SolveRadialLine(box.Width, box.Height).Length
	}

	centerPx := box.ToPixels(center)
	handle := radiusHandle(box, centerPx, radius)
	reach := centerPx.Distance(handle)
	s := GradientState{
		Type:        GradientRadial,
		Angle:       90,
		LinearStart: center,
		LinearEnd:   box.ToRelative(handle),
	}
	for _, m := range matched {
		offset := m.Value
		if m.Unit == css.UnitPixel {
			offset = 0
			if reach > 0 {
				offset = m.Value / reach * 100
			}
		}
		s.Stops = append(s.Stops, ColorStop{
			ID:     stopID(len(s.Stops)),
			Color:  m.Color,
			Offset: clampOffset(offset),
		})
	}
	c.fallbackStops(&s)
	return s, nil
}

// matchStops applies the stop matcher to each segment under the codec's
// StopPolicy.
func (c *Codec) matchStops(segs []string) ([]css.Stop, error) {
	out := make([]css.Stop, 0, len(segs))
	for _, seg := range segs {
		m, ok := css.ParseStop(seg)
		if ok {
			out = append(out, m)
			continue
		}
		if c.opts.policy == StrictStops {
			return nil, fmt.Errorf("%w: %q", ErrMalformedStop, seg)
		}
		Logger().Debug("gradclip: dropped malformed stop", "segment", seg)
	}
	return out, nil
}

// fallbackStops installs the default black→white stops when none survived.
func (c *Codec) fallbackStops(s *GradientState) {
	if len(s.Stops) > 0 {
		return
	}
	Logger().Warn("gradclip: no valid color stops, using default stops")
	s.Stops = DefaultGradient().Stops
}

// radiusHandle places the radius handle radius pixels from center toward
// the box edge with the most room, checked in the order up, right, down,
// left. The handle is clamped onto that edge when the radius does not fit.
func radiusHandle(box Box, center Point, radius float64) Point {
	dirs := [4]Point{{Y: -1}, {X: 1}, {Y: 1}, {X: -1}}
	rooms := [4]float64{center.Y, box.Width - center.X, box.Height - center.Y, center.X}

	best := 0
	for i := 1; i < len(rooms); i++ {
		if rooms[i] > rooms[best] {
			best = i
		}
	}
	reach := math.Max(0, math.Min(radius, rooms[best]))
	return center.Add(dirs[best].Mul(reach))
}
