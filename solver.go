package gradclip

import "math"

// Root finding for the derivative of a cubic Bezier. ClipPath.Bounds uses
// it to locate the curve extrema of curved segments.

// solveQuadratic returns the real roots of ax^2 + bx + c = 0 in ascending
// order. A vanishing a degrades to the linear equation bx + c = 0.
func solveQuadratic(a, b, c float64) []float64 {
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		root := -c / b
		if isFinite(root) {
			return []float64{root}
		}
		return nil
	}

	disc := sc1*sc1 - 4.0*sc0
	switch {
	case !isFinite(disc):
		return orderedRoots(-sc1, sc0/(-sc1))
	case disc < 0:
		return nil
	case disc == 0:
		return []float64{-0.5 * sc1}
	}

	// Stable form avoids cancellation when sc1 dominates.
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(disc), sc1))
	return orderedRoots(root1, sc0/root1)
}

func orderedRoots(r1, r2 float64) []float64 {
	if !isFinite(r2) {
		return []float64{r1}
	}
	if r1 > r2 {
		return []float64{r2, r1}
	}
	return []float64{r1, r2}
}

// solveQuadraticInUnitInterval returns the roots that are valid Bezier
// parameters. Roots within 1e-12 of the interval are snapped onto it.
func solveQuadraticInUnitInterval(a, b, c float64) []float64 {
	const eps = 1e-12
	var out []float64
	for _, r := range solveQuadratic(a, b, c) {
		if r < -eps || r > 1+eps {
			continue
		}
		out = append(out, math.Min(math.Max(r, 0), 1))
	}
	return out
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
