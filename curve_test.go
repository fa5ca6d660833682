package gradclip

import (
	"math"
	"testing"
)

const epsilon = 1e-10

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

// -------------------------------------------------------------------
// Segment Tests
// -------------------------------------------------------------------

func TestDistanceToSegment(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b Point
		want    float64
	}{
		{"above middle", Pt(5, 3), Pt(0, 0), Pt(10, 0), 3},
		{"on segment", Pt(4, 0), Pt(0, 0), Pt(10, 0), 0},
		{"before start clamps", Pt(-3, 4), Pt(0, 0), Pt(10, 0), 5},
		{"past end clamps", Pt(13, -4), Pt(0, 0), Pt(10, 0), 5},
		{"diagonal", Pt(0, 2), Pt(0, 0), Pt(2, 2), math.Sqrt2},
		{"degenerate segment", Pt(3, 4), Pt(0, 0), Pt(0, 0), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceToSegment(tt.p, tt.a, tt.b)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("DistanceToSegment(%v, %v, %v) = %v, want %v", tt.p, tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLine_Project(t *testing.T) {
	l := Line{P0: Pt(0, 0), P1: Pt(10, 0)}
	for _, tc := range []struct {
		p    Point
		want float64
	}{
		{Pt(5, 7), 0.5},
		{Pt(-5, 0), 0},
		{Pt(50, 1), 1},
	} {
		if got := l.Project(tc.p); math.Abs(got-tc.want) > epsilon {
			t.Errorf("Project(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
	if got := (Line{P0: Pt(1, 1), P1: Pt(1, 1)}).Project(Pt(9, 9)); got != 0 {
		t.Errorf("degenerate Project = %v, want 0", got)
	}
}

// -------------------------------------------------------------------
// Bezier Tests
// -------------------------------------------------------------------

func TestEvaluateBezier(t *testing.T) {
	p0, c1, c2, p3 := Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)

	if got := EvaluateBezier(p0, c1, c2, p3, 0); !pointsEqual(got, p0, epsilon) {
		t.Errorf("t=0: got %v, want %v", got, p0)
	}
	if got := EvaluateBezier(p0, c1, c2, p3, 1); !pointsEqual(got, p3, epsilon) {
		t.Errorf("t=1: got %v, want %v", got, p3)
	}
	// Symmetric arch peaks at 3/4 of the control height.
	if got := EvaluateBezier(p0, c1, c2, p3, 0.5); !pointsEqual(got, Pt(5, 7.5), epsilon) {
		t.Errorf("t=0.5: got %v, want (5, 7.5)", got)
	}
}

func TestClosestPointOnBezier(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 10), P2: Pt(10, 10), P3: Pt(10, 0)}

	hit := ClosestPointOnBezier(Pt(5, 20), c, 20)
	if hit.T != 0.5 {
		t.Errorf("T = %v, want 0.5", hit.T)
	}
	if !pointsEqual(hit.Point, Pt(5, 7.5), epsilon) {
		t.Errorf("Point = %v, want (5, 7.5)", hit.Point)
	}
	if math.Abs(hit.Distance-12.5) > epsilon {
		t.Errorf("Distance = %v, want 12.5", hit.Distance)
	}

	// Endpoints are among the samples.
	if hit := ClosestPointOnBezier(Pt(-5, -5), c, 20); hit.T != 0 {
		t.Errorf("near start: T = %v, want 0", hit.T)
	}
	if hit := ClosestPointOnBezier(Pt(15, -5), c, 20); hit.T != 1 {
		t.Errorf("near end: T = %v, want 1", hit.T)
	}
}

func TestClosestPointOnBezier_DefaultSamples(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(10, 0), P2: Pt(20, 0), P3: Pt(30, 0)}
	got := ClosestPointOnBezier(Pt(1.5, 1), c, 0)
	// 20 samples along a 30px straight curve are 1.5px apart.
	if got.T != 1.0/DefaultBezierSamples {
		t.Errorf("T = %v, want %v", got.T, 1.0/DefaultBezierSamples)
	}
}

func TestCubicBez_SplitAt(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(5, 20), P2: Pt(25, -10), P3: Pt(30, 10)}
	left, right := c.SplitAt(0.3)

	if !pointsEqual(left.P3, c.Eval(0.3), epsilon) || !pointsEqual(right.P0, c.Eval(0.3), epsilon) {
		t.Fatal("split point does not lie on the curve")
	}
	for _, s := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got, want := left.Eval(s), c.Eval(0.3*s); !pointsEqual(got, want, 1e-9) {
			t.Errorf("left.Eval(%v) = %v, want %v", s, got, want)
		}
		if got, want := right.Eval(s), c.Eval(0.3+0.7*s); !pointsEqual(got, want, 1e-9) {
			t.Errorf("right.Eval(%v) = %v, want %v", s, got, want)
		}
	}
}

func TestCubicBez_BoundingBox(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 10), P2: Pt(10, 10), P3: Pt(10, 0)}
	bb := c.BoundingBox()
	want := Rect{Min: Pt(0, 0), Max: Pt(10, 7.5)}
	if !pointsEqual(bb.Min, want.Min, 1e-9) || !pointsEqual(bb.Max, want.Max, 1e-9) {
		t.Errorf("BoundingBox() = %+v, want %+v", bb, want)
	}
}

// -------------------------------------------------------------------
// Rect Tests
// -------------------------------------------------------------------

func TestRect(t *testing.T) {
	r := NewRect(Pt(10, 10), Pt(0, 5))
	if r.Min != Pt(0, 5) || r.Max != Pt(10, 10) {
		t.Errorf("NewRect normalized to %+v", r)
	}
	if r.Width() != 10 || r.Height() != 5 {
		t.Errorf("size = %vx%v, want 10x5", r.Width(), r.Height())
	}
	if !r.Contains(Pt(5, 7)) || r.Contains(Pt(5, 11)) {
		t.Error("Contains mismatch")
	}
	u := r.Union(NewRect(Pt(-1, 0), Pt(0, 0)))
	if u.Min != Pt(-1, 0) || u.Max != Pt(10, 10) {
		t.Errorf("Union = %+v", u)
	}
}

// -------------------------------------------------------------------
// Point/Box Tests
// -------------------------------------------------------------------

func TestPointOps(t *testing.T) {
	p := Pt(3, 4)
	if p.Length() != 5 || p.LengthSquared() != 25 {
		t.Errorf("Length = %v, LengthSquared = %v", p.Length(), p.LengthSquared())
	}
	if got := p.Perp(); got != Pt(-4, 3) {
		t.Errorf("Perp = %v", got)
	}
	if got := p.Normalize(); !pointsEqual(got, Pt(0.6, 0.8), epsilon) {
		t.Errorf("Normalize = %v", got)
	}
	if got := (Point{}).Normalize(); got != (Point{}) {
		t.Errorf("zero Normalize = %v", got)
	}
	if got := Pt(0, 0).Lerp(Pt(10, 20), 0.25); got != Pt(2.5, 5) {
		t.Errorf("Lerp = %v", got)
	}
}

func TestBoxConversions(t *testing.T) {
	b := Box{Width: 200, Height: 100}
	if got := b.ToPixels(Pt(0.25, 0.5)); got != Pt(50, 50) {
		t.Errorf("ToPixels = %v", got)
	}
	if got := b.ToRelative(Pt(50, 50)); got != Pt(0.25, 0.5) {
		t.Errorf("ToRelative = %v", got)
	}
	if got := (Box{}).ToRelative(Pt(7, 7)); got != Pt(0.5, 0.5) {
		t.Errorf("zero box ToRelative = %v, want center", got)
	}
	if !(Box{Width: 10}).Empty() || b.Empty() {
		t.Error("Empty mismatch")
	}
}
