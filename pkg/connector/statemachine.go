// State machine connector: a quadratic curve with a single control
// point, biased to look organic rather than mechanical. The control
// point is chosen from a per-segment rule table keyed on which faces
// the two anchors occupy.

package connector

import "math"

// StateMachine is the curved connector shape. The zero value is
// usable but draws with zero curviness and margin; most callers start
// from DefaultConfig.
type StateMachine struct {
	cfg Config
}

// NewStateMachine returns a state machine connector with the given
// tunables.
func NewStateMachine(cfg Config) StateMachine {
	return StateMachine{cfg: cfg}
}

// Kind returns the registered name of the shape.
func (c StateMachine) Kind() string { return KindStateMachine }

// Config returns the connector's tunables.
func (c StateMachine) Config() Config { return c.cfg }

// Compute derives the quadratic curve joining the two anchors.
//
// The corners are box-local: each axis takes 0 or the box dimension
// depending on the relative ordering of the anchors' absolute
// coordinates, then gets margin-adjusted. The emitted descriptor puts
// the target corner first.
func (c StateMachine) Compute(src, tgt AnchorPosition, boxWidth, boxHeight float64) CurveDescriptor {
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
	seg := ClassifySegment(sx, sy, tx, ty)
	distance := math.Hypot(tx-sx, ty-sy)

	cp := FindControlPoint(mid, seg, src, tgt,
		c.cfg.Curviness, c.cfg.Curviness, distance, c.cfg.ProximityLimit)

	return CurveDescriptor{
		X1: tx, Y1: ty,
		X2: sx, Y2: sy,
		CP1X: cp.X, CP1Y: cp.Y,
		CP2X: cp.X, CP2Y: cp.Y,
	}
}

// AdjustForMargin shifts a corner coordinate outward from the shape
// when its anchor sits at a face's 0-edge, and inward past the
// opposite edge when it sits at the 1-edge. Only exact face-extreme
// positions match; proportions strictly between 0 and 1, or outside
// [0,1] entirely, pass through unmodified. Callers depend on that
// permissive behaviour, so no validation happens here.
func AdjustForMargin(x, y float64, a AnchorPosition, margin float64) (float64, float64) {
	if a.FaceX == 0 {
		x -= margin
	}
	if a.FaceX == 1 {
		x += margin
	}
	if a.FaceY == 0 {
		y -= margin
	}
	if a.FaceY == 1 {
		y += margin
	}
	return x, y
}

// edgeTest matches two anchors sitting on opposing extreme edges of
// one axis. srcFar selects which extreme the source must occupy: the
// 1-edge when true, the 0-edge when false. The target must occupy the
// opposite extreme.
type edgeTest struct {
	srcFar bool
}

func (e edgeTest) holds(srcProp, tgtProp float64) bool {
	if e.srcFar {
		return srcProp >= 1 && tgtProp <= 0
	}
	return srcProp <= 0 && tgtProp >= 1
}

// controlRule describes how the control point is chosen for one
// segment: two face-alignment tests evaluated in order, then a
// default diagonal offset. Keeping this as a table keeps the rules
// auditable one by one.
type controlRule struct {
	opposedV edgeTest // anchors on opposing top/bottom faces
	opposedH edgeTest // anchors on opposing left/right faces
	defX     float64  // default offset sign along x
	defY     float64  // default offset sign along y
}

var controlRules = map[Segment]controlRule{
	SegmentTopRight:    {edgeTest{false}, edgeTest{true}, -1, -1},
	SegmentBottomRight: {edgeTest{true}, edgeTest{true}, +1, -1},
	SegmentBottomLeft:  {edgeTest{true}, edgeTest{false}, -1, -1},
	SegmentTopLeft:     {edgeTest{false}, edgeTest{false}, +1, -1},
}

// FindControlPoint picks the control point for a curve with the given
// box-local midpoint, segment and anchors. Anchors closer than
// proximityLimit get the plain midpoint, which renders as a straight
// line. Otherwise the segment's rule decides: anchors on opposing
// faces push the point along a single axis, anything else gets the
// diagonal default. dx and dy are the curviness offsets per axis.
//
// The face tests read the anchors' proportional positions, not the
// corner coordinates. Every segment has a default branch, so the
// function is total.
func FindControlPoint(mid Point, seg Segment, src, tgt AnchorPosition, dx, dy, distance, proximityLimit float64) Point {
	if distance <= proximityLimit {
		return mid
	}

	rule := controlRules[seg]
	switch {
	case rule.opposedV.holds(src.FaceY, tgt.FaceY):
		// Opposing top/bottom faces: push sideways only.
		if src.FaceX < 0.5 {
			return Point{mid.X - dx, mid.Y}
		}
		return Point{mid.X + dx, mid.Y}
	case rule.opposedH.holds(src.FaceX, tgt.FaceX):
		// Opposing left/right faces: push vertically only.
		if src.FaceY < 0.5 {
			return Point{mid.X, mid.Y - dy}
		}
		return Point{mid.X, mid.Y + dy}
	default:
		return Point{mid.X + rule.defX*dx, mid.Y + rule.defY*dy}
	}
}
