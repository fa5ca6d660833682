package gradclip

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// MinClipPoints is the smallest number of points a clip polygon may have.
const MinClipPoints = 3

// controlPointBow is the perpendicular control point offset, as a fraction
// of the chord, used when a segment is first turned into a curve.
const controlPointBow = 0.3

// SegmentType is the kind of segment leading from a point to the next one.
type SegmentType int

const (
	// SegmentLine is a straight edge.
	SegmentLine SegmentType = iota
	// SegmentCurve is a cubic Bezier through the point's CP1 and CP2.
	SegmentCurve
)

// String returns "line" or "curve".
func (t SegmentType) String() string {
	switch t {
	case SegmentLine:
		return "line"
	case SegmentCurve:
		return "curve"
	default:
		return fmt.Sprintf("SegmentType(%d)", int(t))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t SegmentType) MarshalText() ([]byte, error) {
	switch t {
	case SegmentLine, SegmentCurve:
		return []byte(t.String()), nil
	}
	return nil, fmt.Errorf("gradclip: unknown segment type %d", int(t))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *SegmentType) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "", "line":
		*t = SegmentLine
	case "curve":
		*t = SegmentCurve
	default:
		return fmt.Errorf("gradclip: unknown segment type %q", b)
	}
	return nil
}

// PathPoint is a clip path vertex in editing canvas pixels. Type describes
// the segment to the next point; CP1 and CP2 are only meaningful for
// SegmentCurve.
type PathPoint struct {
	ID   string      `json:"id"`
	X    float64     `json:"x"`
	Y    float64     `json:"y"`
	Type SegmentType `json:"type"`
	CP1  Point       `json:"cp1"`
	CP2  Point       `json:"cp2"`
}

// Pos returns the point position.
func (p PathPoint) Pos() Point {
	return Point{X: p.X, Y: p.Y}
}

// ClipPath is the editable point model of a clip shape. It is owned by a
// single editing session and is not safe for concurrent mutation.
type ClipPath struct {
	Kind   ShapeKind   `json:"kind"`
	Points []PathPoint `json:"points"`
}

// Len returns the number of points.
func (c *ClipPath) Len() int {
	return len(c.Points)
}

// Clone returns a deep copy of c.
func (c *ClipPath) Clone() *ClipPath {
	return &ClipPath{Kind: c.Kind, Points: slices.Clone(c.Points)}
}

// fixed reports whether the shape preset forbids adding or removing points.
func (c *ClipPath) fixed() bool {
	p, ok := PresetFor(c.Kind)
	return ok && p.Fixed
}

// InsertAt inserts p before index i; i == Len() appends. A point without
// an ID gets a fresh one. Preset shapes with a fixed point set reject the
// insertion.
func (c *ClipPath) InsertAt(i int, p PathPoint) bool {
	if i < 0 || i > len(c.Points) || c.fixed() {
		return false
	}
	if p.ID == "" {
		p.ID = c.newPointID()
	}
	c.Points = slices.Insert(c.Points, i, p)
	return true
}

// RemoveAt removes the point at index i. Removal is rejected when it would
// leave fewer than MinClipPoints points or the shape preset is fixed.
func (c *ClipPath) RemoveAt(i int) bool {
	if i < 0 || i >= len(c.Points) || len(c.Points) <= MinClipPoints || c.fixed() {
		return false
	}
	c.Points = slices.Delete(c.Points, i, i+1)
	return true
}

// MovePoint moves point i to (x, y). When the shape preset declares points
// dependent on i, they are translated by the same delta.
func (c *ClipPath) MovePoint(i int, x, y float64) bool {
	if i < 0 || i >= len(c.Points) {
		return false
	}
	delta := Point{X: x, Y: y}.Sub(c.Points[i].Pos())
	c.Points[i].X, c.Points[i].Y = x, y

	preset, ok := PresetFor(c.Kind)
	if !ok {
		return true
	}
	link, ok := preset.Links[i]
	if !ok {
		return true
	}
	for _, d := range link.Dependents {
		if d >= 0 && d < len(c.Points) && d != i {
			c.Points[d] = link.Transform.apply(c.Points[d], delta)
		}
	}
	return true
}

// ToggleSegmentType flips the segment following point i between line and
// curve. A new curve gets control points from GenerateControlPoints.
func (c *ClipPath) ToggleSegmentType(i int) bool {
	if i < 0 || i >= len(c.Points) {
		return false
	}
	p := &c.Points[i]
	if p.Type == SegmentCurve {
		p.Type, p.CP1, p.CP2 = SegmentLine, Point{}, Point{}
		return true
	}
	next := c.Points[(i+1)%len(c.Points)]
	p.Type = SegmentCurve
	p.CP1, p.CP2 = GenerateControlPoints(p.Pos(), next.Pos())
	return true
}

// GenerateControlPoints returns default control points for a new curve from
// start to end: the chord midpoint pushed 0.3 chord lengths perpendicular
// to the chord, cp1 to one side and cp2 to the other. A zero-length chord
// yields the endpoints.
func GenerateControlPoints(start, end Point) (cp1, cp2 Point) {
	chord := end.Sub(start)
	length := chord.Length()
	if length == 0 {
		return start, end
	}
	mid := start.Lerp(end, 0.5)
	offset := chord.Perp().Normalize().Mul(controlPointBow * length)
	return mid.Add(offset), mid.Sub(offset)
}

// edge returns segment i, from point i to the next point with wrap-around.
func (c *ClipPath) edge(i int) CubicBez {
	a := c.Points[i]
	b := c.Points[(i+1)%len(c.Points)]
	if a.Type == SegmentCurve {
		return CubicBez{P0: a.Pos(), P1: a.CP1, P2: a.CP2, P3: b.Pos()}
	}
	return CubicBez{P0: a.Pos(), P1: a.Pos(), P2: b.Pos(), P3: b.Pos()}
}

// InsertByProximity inserts a line point on the edge nearest to click when
// that edge is within tolerance, and returns the new point's index. Every
// edge is checked, including the closing edge from the last point to the
// first. Distance is measured to the straight chord between the edge's
// points, and the new point sits at the click's projection onto it.
//
// A curved edge keeps its control points on the preceding point, so the
// outline of that edge changes. SplitByProximity inserts onto curves
// without changing the outline.
func (c *ClipPath) InsertByProximity(click Point, tolerance float64) (int, bool) {
	n := len(c.Points)
	if n < 2 || c.fixed() {
		return -1, false
	}

	bestEdge, best := -1, math.Inf(1)
	var bestPos Point
	for i := 0; i < n; i++ {
		a, b := c.Points[i].Pos(), c.Points[(i+1)%n].Pos()
		if d := DistanceToSegment(click, a, b); d < best {
			line := Line{P0: a, P1: b}
			bestEdge, best, bestPos = i, d, line.Eval(line.Project(click))
		}
	}
	if bestEdge < 0 || best > tolerance {
		return -1, false
	}

	p := PathPoint{ID: c.newPointID(), X: bestPos.X, Y: bestPos.Y, Type: SegmentLine}
	c.Points = slices.Insert(c.Points, bestEdge+1, p)
	return bestEdge + 1, true
}

// SplitByProximity is InsertByProximity measured against the drawn
// outline. Curved edges are hit-tested with samples uniform steps (see
// ClosestPointOnBezier) and split with de Casteljau at the nearest sample,
// so the new point is a curve point and the outline keeps its shape.
// Straight edges behave as in InsertByProximity.
func (c *ClipPath) SplitByProximity(click Point, tolerance float64, samples int) (int, bool) {
	n := len(c.Points)
	if n < 2 || c.fixed() {
		return -1, false
	}

	bestEdge, best := -1, math.Inf(1)
	var bestHit BezierHit
	for i := 0; i < n; i++ {
		var hit BezierHit
		if c.Points[i].Type == SegmentCurve {
			hit = ClosestPointOnBezier(click, c.edge(i), samples)
		} else {
			a, b := c.Points[i].Pos(), c.Points[(i+1)%n].Pos()
			line := Line{P0: a, P1: b}
			t := line.Project(click)
			hit = BezierHit{Point: line.Eval(t), T: t, Distance: DistanceToSegment(click, a, b)}
		}
		if hit.Distance < best {
			bestEdge, best, bestHit = i, hit.Distance, hit
		}
	}
	if bestEdge < 0 || best > tolerance {
		return -1, false
	}

	p := PathPoint{ID: c.newPointID(), X: bestHit.Point.X, Y: bestHit.Point.Y, Type: SegmentLine}
	if c.Points[bestEdge].Type == SegmentCurve {
		first, second := c.edge(bestEdge).SplitAt(bestHit.T)
		c.Points[bestEdge].CP1, c.Points[bestEdge].CP2 = first.P1, first.P2
		p.Type, p.CP1, p.CP2 = SegmentCurve, second.P1, second.P2
		p.X, p.Y = second.P0.X, second.P0.Y
	}
	c.Points = slices.Insert(c.Points, bestEdge+1, p)
	return bestEdge + 1, true
}

// Validate reports whether the point set fits the shape kind: at least
// MinClipPoints for a polygon, exactly one point per role for a preset.
func (c *ClipPath) Validate() error {
	preset, ok := PresetFor(c.Kind)
	if !ok {
		return fmt.Errorf("%w: kind %d", ErrUnrecognizedShape, int(c.Kind))
	}
	if preset.Roles == nil {
		if len(c.Points) < MinClipPoints {
			return fmt.Errorf("%w: polygon has %d points, need at least %d",
				ErrInvalidShape, len(c.Points), MinClipPoints)
		}
		return nil
	}
	if len(c.Points) != len(preset.Roles) {
		return fmt.Errorf("%w: %s has %d points, need %d",
			ErrInvalidShape, c.Kind, len(c.Points), len(preset.Roles))
	}
	return nil
}

// newPointID returns an ID of the form "pt-N" not used by any point.
func (c *ClipPath) newPointID() string {
	next := 0
	for _, p := range c.Points {
		if n, ok := strings.CutPrefix(p.ID, "pt-"); ok {
			if i, err := strconv.Atoi(n); err == nil && i >= next {
				next = i + 1
			}
		}
	}
	return "pt-" + strconv.Itoa(next)
}

// Bounds returns the tight bounding box of the outline, curves included.
func (c *ClipPath) Bounds() Rect {
	if len(c.Points) == 0 {
		return Rect{}
	}
	first := c.Points[0].Pos()
	r := NewRect(first, first)
	for i := range c.Points {
		r = r.Union(c.edge(i).BoundingBox())
	}
	return r
}
