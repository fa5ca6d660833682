package gradclip

import (
	"image"

	"github.com/gogpu/gradclip/internal/clip"
)

// ClipMask is a rasterized clip path: per-pixel coverage in 0-255 with
// anti-aliased edges.
type ClipMask struct {
	m *clip.Mask
}

// Mask rasterizes the clip path into a width×height coverage mask in
// canvas pixels. Curves are rasterized exactly, not flattened.
func (c *ClipPath) Mask(width, height int) (*ClipMask, error) {
	m, err := clip.NewMask(c.outline(), width, height)
	if err != nil {
		return nil, err
	}
	return &ClipMask{m: m}, nil
}

// outline converts the point model into mask path elements.
func (c *ClipPath) outline() []clip.PathElement {
	n := len(c.Points)
	if n == 0 {
		return nil
	}
	cp := func(p Point) clip.Point { return clip.Point{X: p.X, Y: p.Y} }

	els := make([]clip.PathElement, 0, n+2)
	els = append(els, clip.MoveTo{Point: cp(c.Points[0].Pos())})
	for i, p := range c.Points {
		next := cp(c.Points[(i+1)%n].Pos())
		if p.Type == SegmentCurve {
			els = append(els, clip.CubicTo{Control1: cp(p.CP1), Control2: cp(p.CP2), Point: next})
		} else {
			els = append(els, clip.LineTo{Point: next})
		}
	}
	return append(els, clip.Close{})
}

// Coverage returns the mask coverage at canvas position p.
func (m *ClipMask) Coverage(p Point) byte {
	return m.m.Coverage(p.X, p.Y)
}

// Contains reports whether p lies at least half inside the clip.
func (m *ClipMask) Contains(p Point) bool {
	return m.Coverage(p) >= 128
}

// Apply clips img in place: each pixel's alpha is scaled by the mask
// coverage at the pixel center. Pixels outside the mask become
// transparent.
func (m *ClipMask) Apply(img *image.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y) + 3
			img.Pix[i] = m.m.ApplyCoverage(float64(x)+0.5, float64(y)+0.5, img.Pix[i])
		}
	}
}

// Image returns the mask as an alpha image, usable with image/draw.
func (m *ClipMask) Image() *image.Alpha {
	return m.m.Image()
}
