package connector

import "math"

// Straight is the degenerate connector shape: the control point is
// always the midpoint, so the curve renders as a straight line. It
// shares the corner derivation and margin handling of the state
// machine shape, which keeps the two interchangeable per link.
type Straight struct {
	cfg Config
}

// NewStraight returns a straight connector with the given tunables.
// Curviness and ProximityLimit are ignored by this shape.
func NewStraight(cfg Config) Straight {
	return Straight{cfg: cfg}
}

// Kind returns the registered name of the shape.
func (c Straight) Kind() string { return KindStraight }

// Compute derives a degenerate quadratic whose control point is the
// midpoint of the two margin-adjusted corners.
func (c Straight) Compute(src, tgt AnchorPosition, boxWidth, boxHeight float64) CurveDescriptor {
	w := math.Abs(boxWidth)
	h := math.Abs(boxHeight)

	var sx, sy, tx, ty float64
	if src.X < tgt.X {
		tx = w
	} else {
		sx = w
	}
	if src.Y < tgt.Y {
		ty = h
	} else {
		sy = h
	}

	sx, sy = AdjustForMargin(sx, sy, src, c.cfg.Margin)
	tx, ty = AdjustForMargin(tx, ty, tgt, c.cfg.Margin)

	mid := Point{(sx + tx) / 2, (sy + ty) / 2}

	return CurveDescriptor{
		X1: tx, Y1: ty,
		X2: sx, Y2: sy,
		CP1X: mid.X, CP1Y: mid.Y,
		CP2X: mid.X, CP2Y: mid.Y,
	}
}
