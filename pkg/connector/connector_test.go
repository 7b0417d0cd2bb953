package connector

import (
	"math"
	"testing"
)

func TestCurveDescriptorPointAt(t *testing.T) {
	d := CurveDescriptor{
		X1: 55, Y1: 35,
		X2: -5, Y2: -5,
		CP1X: 25, CP1Y: 15,
		CP2X: 25, CP2Y: 15,
	}

	// Endpoints at t=0 and t=1
	if p := d.PointAt(0); p.X != 55 || p.Y != 35 {
		t.Errorf("PointAt(0) = (%v,%v), want (55,35)", p.X, p.Y)
	}
	if p := d.PointAt(1); p.X != -5 || p.Y != -5 {
		t.Errorf("PointAt(1) = (%v,%v), want (-5,-5)", p.X, p.Y)
	}

	// Control point equals the straight-line midpoint here, so the
	// curve is the straight segment and t=0.5 lands halfway.
	if p := d.PointAt(0.5); math.Abs(p.X-25) > 1e-9 || math.Abs(p.Y-15) > 1e-9 {
		t.Errorf("PointAt(0.5) = (%v,%v), want (25,15)", p.X, p.Y)
	}
}

func TestCurveDescriptorTangentAt(t *testing.T) {
	// Straight horizontal curve from (0,0) to (100,0)
	d := CurveDescriptor{
		X1: 0, Y1: 0, X2: 100, Y2: 0,
		CP1X: 50, CP1Y: 0, CP2X: 50, CP2Y: 0,
	}

	for _, tv := range []float64{0, 0.25, 0.5, 0.75, 1} {
		tan := d.TangentAt(tv)
		if tan.X <= 0 || math.Abs(tan.Y) > 1e-9 {
			t.Errorf("TangentAt(%v) = (%v,%v), want positive x and zero y", tv, tan.X, tan.Y)
		}
	}
}

func TestCurveDescriptorLength(t *testing.T) {
	// Degenerate quadratic: length equals the endpoint distance.
	d := CurveDescriptor{
		X1: 0, Y1: 0, X2: 30, Y2: 40,
		CP1X: 15, CP1Y: 20, CP2X: 15, CP2Y: 20,
	}
	if l := d.Length(); math.Abs(l-50) > 0.1 {
		t.Errorf("Length() = %v, want ~50", l)
	}

	// A curved one must be longer than the chord.
	curved := CurveDescriptor{
		X1: 0, Y1: 0, X2: 100, Y2: 0,
		CP1X: 50, CP1Y: 40, CP2X: 50, CP2Y: 40,
	}
	if l := curved.Length(); l <= 100 {
		t.Errorf("curved Length() = %v, should exceed chord length 100", l)
	}
}

func TestCurveDescriptorControlPoint(t *testing.T) {
	d := CurveDescriptor{CP1X: 110, CP1Y: 65, CP2X: 110, CP2Y: 65}
	if cp := d.ControlPoint(); cp.X != 110 || cp.Y != 65 {
		t.Errorf("ControlPoint() = (%v,%v), want (110,65)", cp.X, cp.Y)
	}
}
