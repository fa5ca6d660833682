package gradclip

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gradclip/internal/css"
)

// DefaultCurveSamples is the number of steps a curved segment is split into
// when flattened for polygon().
const DefaultCurveSamples = 40

// ToPercentagePolygon flattens points into a CSS polygon() with vertices in
// percent of the box. Each curved segment contributes curveSamples-1
// interior samples; curveSamples < 1 selects DefaultCurveSamples.
//
// polygon() cannot express curves, so the result is an approximation; use
// ToPixelPath where path() is supported.
func ToPercentagePolygon(points []PathPoint, width, height float64, curveSamples int) string {
	if curveSamples < 1 {
		curveSamples = DefaultCurveSamples
	}
	var b strings.Builder
	b.WriteString("polygon(")
	for i, v := range flatten(points, curveSamples) {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatNumber(ratio(v.X, width, 0) * 100))
		b.WriteString("% ")
		b.WriteString(formatNumber(ratio(v.Y, height, 0) * 100))
		b.WriteString("%")
	}
	b.WriteByte(')')
	return b.String()
}

// flatten returns the polygon vertices of the outline: every point, plus
// curveSamples-1 interior samples after each curve point.
func flatten(points []PathPoint, curveSamples int) []Point {
	n := len(points)
	out := make([]Point, 0, n)
	for i, p := range points {
		out = append(out, p.Pos())
		if p.Type != SegmentCurve {
			continue
		}
		next := points[(i+1)%n].Pos()
		for k := 1; k < curveSamples; k++ {
			t := float64(k) / float64(curveSamples)
			out = append(out, EvaluateBezier(p.Pos(), p.CP1, p.CP2, next, t))
		}
	}
	return out
}

// ToPixelPath formats points as an exact CSS path() in pixels: M for the
// first point, L for straight segments, C for curves and Z to close. A
// straight closing segment is left to Z.
func ToPixelPath(points []PathPoint) string {
	if len(points) == 0 {
		return "path('')"
	}
	n := len(points)
	var b strings.Builder
	b.WriteString("path('M ")
	writeXY(&b, points[0].Pos())
	for i, p := range points {
		next := points[(i+1)%n].Pos()
		switch {
		case p.Type == SegmentCurve:
			b.WriteString(" C ")
			writeXY(&b, p.CP1)
			b.WriteString(", ")
			writeXY(&b, p.CP2)
			b.WriteString(", ")
			writeXY(&b, next)
		case i < n-1:
			b.WriteString(" L ")
			writeXY(&b, next)
		}
	}
	b.WriteString(" Z')")
	return b.String()
}

func writeXY(b *strings.Builder, p Point) {
	b.WriteString(formatNumber(p.X))
	b.WriteByte(' ')
	b.WriteString(formatNumber(p.Y))
}

// ToPercentagePolygon flattens the clip path for a box.
func (c *ClipPath) ToPercentagePolygon(box Box, curveSamples int) string {
	return ToPercentagePolygon(c.Points, box.Width, box.Height, curveSamples)
}

// ToPixelPath formats the clip path as an exact path().
func (c *ClipPath) ToPixelPath() string {
	return ToPixelPath(c.Points)
}

// ToBasicShape formats the clip path as the CSS basic shape of its kind:
// circle(), ellipse(), inset() or, for polygons, a flattened polygon().
// Percentages are relative to box, as CSS resolves them.
func (c *ClipPath) ToBasicShape(box Box) string {
	pct := func(v, dim float64) string {
		return formatNumber(ratio(v, dim, 0)*100) + "%"
	}
	at := func(p Point) string {
		return " at " + pct(p.X, box.Width) + " " + pct(p.Y, box.Height)
	}
	pts := c.Points

	switch {
	case c.Kind == ShapeCircle && len(pts) >= 2:
		// Circle percentages resolve against the box diagonal over √2.
		ref := math.Hypot(box.Width, box.Height) / math.Sqrt2
		r := pts[0].Pos().Distance(pts[1].Pos())
		return "circle(" + pct(r, ref) + at(pts[0].Pos()) + ")"
	case c.Kind == ShapeEllipse && len(pts) >= 3:
		rx := pts[0].Pos().Distance(pts[1].Pos())
		ry := pts[0].Pos().Distance(pts[2].Pos())
		return "ellipse(" + pct(rx, box.Width) + " " + pct(ry, box.Height) + at(pts[0].Pos()) + ")"
	case c.Kind == ShapeInset && len(pts) >= 4:
		return fmt.Sprintf("inset(%s %s %s %s)",
			pct(pts[0].Y, box.Height),
			pct(box.Width-pts[1].X, box.Width),
			pct(box.Height-pts[2].Y, box.Height),
			pct(pts[3].X, box.Width))
	}
	return c.ToPercentagePolygon(box, DefaultCurveSamples)
}

// ParsePolygon reads a stored polygon() back into an editable clip path in
// box pixels. A leading fill rule is ignored. Every vertex becomes a line
// point, so curves flattened on the way out stay flattened.
func ParsePolygon(src string, box Box) (*ClipPath, error) {
	inner, ok := css.Unwrap(src, "polygon")
	if !ok {
		return nil, fmt.Errorf("%w: %.40q", ErrUnrecognizedShape, src)
	}
	segs := css.SplitTopLevel(inner)
	if len(segs) > 0 && css.IsFillRule(segs[0]) {
		segs = segs[1:]
	}

	pts := make([]Point, 0, len(segs))
	for _, seg := range segs {
		x, y, ok := css.ParsePercentPair(seg)
		if !ok {
			return nil, fmt.Errorf("%w: bad vertex %q", ErrUnrecognizedShape, seg)
		}
		pts = append(pts, Point{X: x / 100 * box.Width, Y: y / 100 * box.Height})
	}
	if len(pts) < MinClipPoints {
		return nil, fmt.Errorf("%w: %d vertices", ErrUnrecognizedShape, len(pts))
	}
	return NewPolygon(pts...), nil
}
