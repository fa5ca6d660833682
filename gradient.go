package gradclip

import (
	"image"
	"image/color"
	"sort"
	"sync"

	icolor "github.com/gogpu/gradclip/internal/color"
	"github.com/gogpu/gradclip/internal/parallel"
)

var previewPool = sync.OnceValue(func() *parallel.WorkerPool {
	return parallel.NewWorkerPool(0)
})

// resolvedStop is a color stop with its color token resolved.
type resolvedStop struct {
	offset float64 // [0,1]
	color  color.NRGBA
}

// resolveStops sorts the stops and resolves their colors. Colors that
// cannot be resolved, such as var() references, preview as transparent.
func (s GradientState) resolveStops() []resolvedStop {
	sorted := s.SortedStops()
	out := make([]resolvedStop, len(sorted))
	for i, st := range sorted {
		c, ok := icolor.Parse(st.Color)
		if !ok {
			Logger().Debug("gradclip: unresolved stop color", "color", st.Color)
		}
		out[i] = resolvedStop{offset: st.Offset / 100, color: c}
	}
	return out
}

// ColorAt returns the preview color of the gradient at pixel p of the box.
//
// A gradient whose line has zero length, because the box is empty or the
// radial handles coincide, is a solid fill of the last stop's color.
func (s GradientState) ColorAt(p Point, box Box) color.NRGBA {
	return s.sampler(box)(p)
}

// Preview renders the gradient into an image the size of the box, rounded
// to whole pixels. Each pixel is sampled at its center. Row bands are
// rendered in parallel on a shared worker pool.
func (s GradientState) Preview(box Box) *image.NRGBA {
	w, h := max(int(box.Width+0.5), 0), max(int(box.Height+0.5), 0)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	sample := s.sampler(box)
	previewPool().Bands(h, 0, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				img.SetNRGBA(x, y, sample(Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}))
			}
		}
	})
	return img
}

// sampler resolves the stops and solves the gradient geometry once and
// returns a per-pixel color function.
func (s GradientState) sampler(box Box) func(Point) color.NRGBA {
	stops := s.resolveStops()
	if len(stops) == 0 {
		return func(Point) color.NRGBA { return color.NRGBA{} }
	}
	solid := stops[len(stops)-1].color
	flat := func(Point) color.NRGBA { return solid }

	if s.Type == GradientRadial {
		center := box.ToPixels(s.LinearStart)
		radius := center.Distance(box.ToPixels(s.LinearEnd))
		if radius == 0 {
			return flat
		}
		return func(p Point) color.NRGBA {
			return colorAtOffset(stops, p.Distance(center)/radius)
		}
	}

	line := SolveLinearLine(box.Width, box.Height, s.Angle)
	if line.Length == 0 {
		return flat
	}
	return func(p Point) color.NRGBA {
		t, _ := line.Position(p)
		return colorAtOffset(stops, t)
	}
}

// colorAtOffset returns the interpolated color at t, padding with the end
// colors outside the stop range. Stops must be sorted by offset.
func colorAtOffset(stops []resolvedStop, t float64) color.NRGBA {
	first, last := stops[0], stops[len(stops)-1]
	if t <= first.offset {
		return first.color
	}
	if t >= last.offset {
		return last.color
	}

	// First stop strictly beyond t; the one before it is at or below t.
	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].offset > t
	})
	s0, s1 := stops[idx-1], stops[idx]
	span := s1.offset - s0.offset
	if span <= 0 {
		return s1.color
	}
	return icolor.Mix(s0.color, s1.color, (t-s0.offset)/span)
}
