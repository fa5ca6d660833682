// Package clip rasterizes closed clip outlines into anti-aliased coverage
// masks with golang.org/x/image/vector.
package clip

import (
	"errors"
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// ErrInvalidDimensions is returned for masks with no pixels.
var ErrInvalidDimensions = errors.New("clip: invalid mask dimensions")

// Point is a mask-space position in pixels.
type Point struct {
	X, Y float64
}

// PathElement represents a single element in an outline.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Mask is an alpha coverage mask: 0 outside the outline, 255 fully inside,
// partial values along anti-aliased edges. The nonzero winding rule applies.
type Mask struct {
	alpha *image.Alpha
}

// NewMask rasterizes elements into a width×height mask.
func NewMask(elements []PathElement, width, height int) (*Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	r := vector.NewRasterizer(width, height)
	r.DrawOp = draw.Src
	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			r.MoveTo(f32(e.Point))
		case LineTo:
			r.LineTo(f32(e.Point))
		case CubicTo:
			c1x, c1y := f32(e.Control1)
			c2x, c2y := f32(e.Control2)
			x, y := f32(e.Point)
			r.CubeTo(c1x, c1y, c2x, c2y, x, y)
		case Close:
			r.ClosePath()
		}
	}

	alpha := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Draw(alpha, alpha.Bounds(), image.Opaque, image.Point{})
	return &Mask{alpha: alpha}, nil
}

func f32(p Point) (float32, float32) {
	return float32(p.X), float32(p.Y)
}

// Coverage returns the coverage (0-255) of the pixel containing (x, y).
// Points outside the mask return 0.
func (m *Mask) Coverage(x, y float64) byte {
	if x < 0 || y < 0 {
		return 0
	}
	ix, iy := int(x), int(y)
	if !(image.Point{X: ix, Y: iy}).In(m.alpha.Rect) {
		return 0
	}
	return m.alpha.AlphaAt(ix, iy).A
}

// ApplyCoverage modulates srcAlpha by the coverage at (x, y).
func (m *Mask) ApplyCoverage(x, y float64, srcAlpha byte) byte {
	coverage := m.Coverage(x, y)
	switch coverage {
	case 0:
		return 0
	case 255:
		return srcAlpha
	}
	return byte(uint16(srcAlpha) * uint16(coverage) / 255)
}

// Image returns the underlying alpha image.
func (m *Mask) Image() *image.Alpha {
	return m.alpha
}
