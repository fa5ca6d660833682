package gradclip

import "math"

// radialHandleFraction is the default radius handle length as a fraction of
// the shorter box side.
const radialHandleFraction = 0.45

// GradientLine is a solved gradient line in box pixel coordinates.
// (X1, Y1) is where offset 0% sits and (X2, Y2) where offset 100% sits.
type GradientLine struct {
	X1, Y1 float64
	X2, Y2 float64
	Length float64
}

// Start returns the 0% end of the line.
func (l GradientLine) Start() Point { return Point{X: l.X1, Y: l.Y1} }

// End returns the 100% end of the line.
func (l GradientLine) End() Point { return Point{X: l.X2, Y: l.Y2} }

// Lerp returns the point at fraction t of the way from Start to End.
func (l GradientLine) Lerp(t float64) Point {
	return l.Start().Lerp(l.End(), t)
}

// Position returns where p falls along the line as a fraction of its length,
// unclamped. A degenerate line reports ok=false.
func (l GradientLine) Position(p Point) (t float64, ok bool) {
	d := l.End().Sub(l.Start())
	lenSq := d.LengthSquared()
	if l.Length == 0 || lenSq == 0 {
		return 0, false
	}
	return p.Sub(l.Start()).Dot(d) / lenSq, true
}

// SolveLinearLine computes the gradient line of a CSS linear gradient for a
// width×height box and an angle in CSS degrees (0 = up, clockwise).
//
// The line passes through the box center along the angle and ends where the
// perpendicular through the furthest-projecting corner crosses it, so every
// corner of the box falls between 0% and 100% whatever the aspect ratio.
// A zero-area box yields a zero-length line at the center.
func SolveLinearLine(width, height, angleDeg float64) GradientLine {
	dir := cssDirection(angleDeg)
	center := Box{Width: width, Height: height}.Center()

	minProj, maxProj := math.Inf(1), math.Inf(-1)
	for _, corner := range boxCorners(width, height) {
		proj := corner.Dot(dir)
		minProj = math.Min(minProj, proj)
		maxProj = math.Max(maxProj, proj)
	}

	start := center.Add(dir.Mul(minProj))
	end := center.Add(dir.Mul(maxProj))
	return GradientLine{
		X1: start.X, Y1: start.Y,
		X2: end.X, Y2: end.Y,
		Length: maxProj - minProj,
	}
}

// boxCorners returns the four box corners relative to the box center.
func boxCorners(width, height float64) [4]Point {
	hw, hh := width/2, height/2
	return [4]Point{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
}

// cssDirection converts a CSS angle into a unit direction vector in
// y-down screen space.
func cssDirection(angleDeg float64) Point {
	rad := (angleDeg - 90) * math.Pi / 180
	return Point{X: math.Cos(rad), Y: math.Sin(rad)}
}

// AngleFromPoints returns the CSS angle in [0, 360) of the direction from
// p1 to p2.
func AngleFromPoints(p1, p2 Point) float64 {
	deg := math.Atan2(p2.Y-p1.Y, p2.X-p1.X)*180/math.Pi + 90
	return normalizeAngle(deg)
}

// normalizeAngle folds deg into [0, 360).
func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// SolveRadialLine returns the default radius handle for a radial gradient:
// from the box center straight up by 0.45 × min(width, height).
func SolveRadialLine(width, height float64) GradientLine {
	center := Box{Width: width, Height: height}.Center()
	r := radialHandleFraction * math.Max(0, math.Min(width, height))
	return GradientLine{
		X1: center.X, Y1: center.Y,
		X2: center.X, Y2: center.Y - r,
		Length: r,
	}
}
