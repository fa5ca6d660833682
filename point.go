package gradclip

import "math"

// Point is a 2D point or vector. Depending on context it holds pixel
// coordinates in the editing canvas or relative box coordinates in [0,1].
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector is returned unchanged.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return p
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Perp returns the vector rotated 90 degrees counter-clockwise.
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Box is the size of the element a gradient or clip path is applied to,
// in CSS pixels. The host reports it whenever layout changes.
type Box struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the box center in pixels.
func (b Box) Center() Point {
	return Point{X: b.Width / 2, Y: b.Height / 2}
}

// Empty reports whether the box has no area.
func (b Box) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// ToPixels converts a point in relative box coordinates to pixels.
func (b Box) ToPixels(rel Point) Point {
	return Point{X: rel.X * b.Width, Y: rel.Y * b.Height}
}

// ToRelative converts a pixel point to relative box coordinates.
// A zero dimension maps to the middle of that axis.
func (b Box) ToRelative(px Point) Point {
	return Point{X: ratio(px.X, b.Width, 0.5), Y: ratio(px.Y, b.Height, 0.5)}
}

// ratio returns v/dim, or fallback when dim is not positive.
func ratio(v, dim, fallback float64) float64 {
	if dim <= 0 {
		return fallback
	}
	return v / dim
}
