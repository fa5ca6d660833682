package gradclip

import (
	"math"
	"sort"
)

// Edge geometry used for hit-testing clip path outlines: segment distance,
// cubic evaluation and sampled closest-point search.

// DefaultBezierSamples is the number of uniform steps ClosestPointOnBezier
// takes when no explicit sample count is given.
const DefaultBezierSamples = 20

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner, Max the bottom-right corner.
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// -------------------------------------------------------------------
// Line
// -------------------------------------------------------------------

// Line represents a line segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

// Eval evaluates the line at parameter t.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Project returns the parameter of the point on the segment closest to p,
// clamped to [0, 1]. A degenerate segment projects everything onto P0.
func (l Line) Project(p Point) float64 {
	d := l.P1.Sub(l.P0)
	lenSq := d.LengthSquared()
	if lenSq == 0 {
		return 0
	}
	t := p.Sub(l.P0).Dot(d) / lenSq
	return math.Max(0, math.Min(1, t))
}

// ClosestPoint returns the point on the segment nearest to p.
func (l Line) ClosestPoint(p Point) Point {
	return l.Eval(l.Project(p))
}

// DistanceToSegment returns the Euclidean distance from p to the segment a→b.
// When a == b it is the distance from p to a.
func DistanceToSegment(p, a, b Point) float64 {
	return p.Distance(Line{P0: a, P1: b}.ClosestPoint(p))
}

// -------------------------------------------------------------------
// CubicBez
// -------------------------------------------------------------------

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// SplitAt splits the curve at t into two curves using de Casteljau.
// The first covers [0, t], the second [t, 1].
func (c CubicBez) SplitAt(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	mid := p012.Lerp(p123, t)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// Extrema returns parameter values where the derivative is zero in x or y.
func (c CubicBez) Extrema() []float64 {
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	result := make([]float64, 0, 4)
	result = append(result, solveQuadraticInUnitInterval(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)...)
	result = append(result, solveQuadraticInUnitInterval(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)...)
	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRect(c.P0, c.P3)
	for _, t := range c.Extrema() {
		p := c.Eval(t)
		bbox = bbox.Union(NewRect(p, p))
	}
	return bbox
}

// EvaluateBezier evaluates the cubic Bezier p0, cp1, cp2, p3 at t in [0, 1].
func EvaluateBezier(p0, cp1, cp2, p3 Point, t float64) Point {
	return CubicBez{P0: p0, P1: cp1, P2: cp2, P3: p3}.Eval(t)
}

// BezierHit is the result of a closest-point search on a curve.
type BezierHit struct {
	Point    Point
	T        float64
	Distance float64
}

// ClosestPointOnBezier samples c at samples+1 uniform parameter values and
// returns the sample nearest to p. The answer is approximate; it drives
// tolerance-based editor decisions, not exact geometry.
//
// samples < 1 selects DefaultBezierSamples.
func ClosestPointOnBezier(p Point, c CubicBez, samples int) BezierHit {
	if samples < 1 {
		samples = DefaultBezierSamples
	}
	best := BezierHit{Point: c.P0, Distance: math.Inf(1)}
	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(samples)
		q := c.Eval(t)
		if d := p.Distance(q); d < best.Distance {
			best = BezierHit{Point: q, T: t, Distance: d}
		}
	}
	return best
}
