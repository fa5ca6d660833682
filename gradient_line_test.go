package gradclip

import (
	"math"
	"testing"
)

// --- Linear Line Tests ---

func TestSolveLinearLine_Up(t *testing.T) {
	l := SolveLinearLine(400, 300, 0)

	if math.Abs(l.X1-200) > epsilon || math.Abs(l.X2-200) > epsilon {
		t.Errorf("x = %v, %v; want both 200", l.X1, l.X2)
	}
	if math.Abs(math.Abs(l.Y2-l.Y1)-300) > epsilon {
		t.Errorf("|dy| = %v, want 300", math.Abs(l.Y2-l.Y1))
	}
	// 0deg runs bottom to top.
	if math.Abs(l.Y1-300) > epsilon || math.Abs(l.Y2) > epsilon {
		t.Errorf("y = %v → %v, want 300 → 0", l.Y1, l.Y2)
	}
	if math.Abs(l.Length-300) > epsilon {
		t.Errorf("Length = %v, want 300", l.Length)
	}
}

func TestSolveLinearLine_Cardinal(t *testing.T) {
	tests := []struct {
		angle  float64
		start  Point
		end    Point
		length float64
	}{
		{90, Pt(0, 150), Pt(400, 150), 400},
		{180, Pt(200, 0), Pt(200, 300), 300},
		{270, Pt(400, 150), Pt(0, 150), 400},
	}
	for _, tt := range tests {
		l := SolveLinearLine(400, 300, tt.angle)
		if !pointsEqual(l.Start(), tt.start, 1e-9) || !pointsEqual(l.End(), tt.end, 1e-9) {
			t.Errorf("angle %v: line %v → %v, want %v → %v", tt.angle, l.Start(), l.End(), tt.start, tt.end)
		}
		if math.Abs(l.Length-tt.length) > 1e-9 {
			t.Errorf("angle %v: Length = %v, want %v", tt.angle, l.Length, tt.length)
		}
	}
}

func TestSolveLinearLine_DiagonalSquare(t *testing.T) {
	// 45deg on a square runs corner to corner.
	l := SolveLinearLine(100, 100, 45)
	if !pointsEqual(l.Start(), Pt(0, 100), 1e-9) || !pointsEqual(l.End(), Pt(100, 0), 1e-9) {
		t.Errorf("line %v → %v, want (0,100) → (100,0)", l.Start(), l.End())
	}
	if math.Abs(l.Length-100*math.Sqrt2) > 1e-9 {
		t.Errorf("Length = %v, want %v", l.Length, 100*math.Sqrt2)
	}
}

func TestSolveLinearLine_CornerCoverage(t *testing.T) {
	boxes := []Box{{1, 1}, {400, 300}, {300, 400}, {1000, 10}, {7, 913}, {0.5, 2}}
	for _, box := range boxes {
		for angle := 0.0; angle < 360; angle += 7.5 {
			l := SolveLinearLine(box.Width, box.Height, angle)
			dir := cssDirection(angle)
			center := box.Center()
			minProj := l.Start().Sub(center).Dot(dir)
			maxProj := l.End().Sub(center).Dot(dir)

			if math.Abs((maxProj-minProj)-l.Length) > 1e-9 {
				t.Errorf("%v @ %v: endpoints span %v, Length %v", box, angle, maxProj-minProj, l.Length)
			}
			for _, c := range boxCorners(box.Width, box.Height) {
				proj := c.Dot(dir)
				if proj < minProj-1e-9 || proj > maxProj+1e-9 {
					t.Errorf("%v @ %v: corner %v projects to %v outside [%v, %v]",
						box, angle, c, proj, minProj, maxProj)
				}
			}
		}
	}
}

func TestSolveLinearLine_ZeroBox(t *testing.T) {
	for _, box := range []Box{{0, 0}, {0, 100}, {100, 0}} {
		l := SolveLinearLine(box.Width, box.Height, 30)
		for _, v := range []float64{l.X1, l.Y1, l.X2, l.Y2, l.Length} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("%v: non-finite line %+v", box, l)
			}
		}
	}
	if l := SolveLinearLine(0, 0, 30); l.Length != 0 {
		t.Errorf("empty box Length = %v, want 0", l.Length)
	}
	if _, ok := SolveLinearLine(0, 0, 30).Position(Pt(0, 0)); ok {
		t.Error("Position on a zero-length line should report !ok")
	}
}

func TestGradientLine_Position(t *testing.T) {
	l := SolveLinearLine(200, 100, 90)
	for _, tc := range []struct {
		p    Point
		want float64
	}{
		{Pt(0, 50), 0},
		{Pt(100, 0), 0.5},
		{Pt(200, 100), 1},
		{Pt(300, 50), 1.5},
	} {
		got, ok := l.Position(tc.p)
		if !ok || math.Abs(got-tc.want) > epsilon {
			t.Errorf("Position(%v) = %v, %v; want %v", tc.p, got, ok, tc.want)
		}
	}
}

// --- Angle Tests ---

func TestAngleFromPoints(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		want   float64
	}{
		{"up", Pt(0, 0), Pt(0, -1), 0},
		{"right", Pt(0, 0), Pt(1, 0), 90},
		{"down", Pt(0, 0), Pt(0, 1), 180},
		{"left", Pt(0, 0), Pt(-1, 0), 270},
		{"up-left", Pt(0, 0), Pt(-1, -1), 315},
		{"coincident", Pt(3, 3), Pt(3, 3), 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngleFromPoints(tt.p1, tt.p2)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AngleFromPoints(%v, %v) = %v, want %v", tt.p1, tt.p2, got, tt.want)
			}
			if got < 0 || got >= 360 {
				t.Errorf("angle %v outside [0, 360)", got)
			}
		})
	}
}

func TestAngleFromPoints_InvertsSolver(t *testing.T) {
	for angle := 0.0; angle < 360; angle += 15 {
		l := SolveLinearLine(640, 480, angle)
		got := AngleFromPoints(l.Start(), l.End())
		diff := math.Abs(got - angle)
		if diff > 1e-9 && math.Abs(diff-360) > 1e-9 {
			t.Errorf("angle %v: recovered %v", angle, got)
		}
	}
}

// --- Radial Line Tests ---

func TestSolveRadialLine(t *testing.T) {
	l := SolveRadialLine(200, 100)
	if l.Start() != Pt(100, 50) {
		t.Errorf("center = %v, want (100, 50)", l.Start())
	}
	if !pointsEqual(l.End(), Pt(100, 5), epsilon) {
		t.Errorf("handle = %v, want (100, 5)", l.End())
	}
	if math.Abs(l.Length-45) > epsilon {
		t.Errorf("Length = %v, want 45", l.Length)
	}
	if z := SolveRadialLine(0, 50); z.Length != 0 {
		t.Errorf("zero box Length = %v, want 0", z.Length)
	}
}
