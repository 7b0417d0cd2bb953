// Package connector computes the shapes of curved connectors drawn
// between anchor points on diagram nodes.
package connector

import "math"

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// AnchorPosition describes where a connector attaches to a node: the
// absolute position of the anchor, plus its proportional position on
// the owning node's faces. FaceX and FaceY are each in [0,1], where 0
// and 1 denote the two extreme edges of that axis.
type AnchorPosition struct {
	X, Y         float64
	FaceX, FaceY float64
}

// Config holds the tunables shared by connector shapes.
//
// Clockwise is accepted as configuration but the state machine control
// point rules do not consult it; see the package tests.
type Config struct {
	Curviness      float64 // maximum control point offset from the midpoint
	Margin         float64 // inset/outset applied at face-extreme anchors
	ProximityLimit float64 // below this distance the connector is straight
	Clockwise      bool
}

// DefaultConfig returns the standard connector tunables.
func DefaultConfig() Config {
	return Config{
		Curviness:      10,
		Margin:         5,
		ProximityLimit: 80,
		Clockwise:      false,
	}
}

// CurveDescriptor is one quadratic Bézier segment in box-local
// coordinates, ready for the painting pipeline. Endpoint 1 is the
// TARGET corner and endpoint 2 the SOURCE corner; the painting
// pipeline depends on that order. Both control handles are set to the
// same point.
type CurveDescriptor struct {
	X1, Y1     float64
	X2, Y2     float64
	CP1X, CP1Y float64
	CP2X, CP2Y float64
}

// ControlPoint returns the shared control handle of the descriptor.
func (d CurveDescriptor) ControlPoint() Point {
	return Point{d.CP1X, d.CP1Y}
}

// PointAt evaluates the curve at parameter t in [0,1]. t=0 is
// endpoint 1 (the target corner), t=1 is endpoint 2.
func (d CurveDescriptor) PointAt(t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*mt*d.X1 + 2*mt*t*d.CP1X + t*t*d.X2,
		Y: mt*mt*d.Y1 + 2*mt*t*d.CP1Y + t*t*d.Y2,
	}
}

// TangentAt returns the curve's derivative at parameter t.
func (d CurveDescriptor) TangentAt(t float64) Point {
	mt := 1 - t
	return Point{
		X: 2*mt*(d.CP1X-d.X1) + 2*t*(d.X2-d.CP1X),
		Y: 2*mt*(d.CP1Y-d.Y1) + 2*t*(d.Y2-d.CP1Y),
	}
}

// Length approximates the arc length of the curve by sampling.
func (d CurveDescriptor) Length() float64 {
	length := 0.0
	numSamples := 100
	prev := d.PointAt(0)

	for i := 1; i <= numSamples; i++ {
		t := float64(i) / float64(numSamples)
		curr := d.PointAt(t)
		length += math.Hypot(curr.X-prev.X, curr.Y-prev.Y)
		prev = curr
	}

	return length
}

// Connector computes the shape of one connector per redraw. Anchors
// and box dimensions come from the surrounding framework; the
// descriptor goes to the painting pipeline. Implementations must be
// pure: identical inputs yield identical descriptors.
type Connector interface {
	// Kind returns the registered name of the connector shape.
	Kind() string

	// Compute derives the box-local curve for one source/target
	// anchor pair and the dimensions of their bounding box.
	Compute(src, tgt AnchorPosition, boxWidth, boxHeight float64) CurveDescriptor
}
