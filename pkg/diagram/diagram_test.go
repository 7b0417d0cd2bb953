package diagram

import (
	"math"
	"testing"

	"github.com/arclink/arclink/pkg/connector"
)

func TestAnchorAt(t *testing.T) {
	n := Node{ID: "a", X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name   string
		face   Face
		pos    float64
		want   connector.AnchorPosition
	}{
		{"Top quarter", FaceTop, 0.25,
			connector.AnchorPosition{X: 35, Y: 20, FaceX: 0.25, FaceY: 0}},
		{"Right middle", FaceRight, 0.5,
			connector.AnchorPosition{X: 110, Y: 45, FaceX: 1, FaceY: 0.5}},
		{"Bottom end", FaceBottom, 1,
			connector.AnchorPosition{X: 110, Y: 70, FaceX: 1, FaceY: 1}},
		{"Left start", FaceLeft, 0,
			connector.AnchorPosition{X: 10, Y: 20, FaceX: 0, FaceY: 0}},
		{"Unknown face anchors at centre", Face(""), 0.5,
			connector.AnchorPosition{X: 60, Y: 45, FaceX: 0.5, FaceY: 0.5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := n.AnchorAt(tc.face, tc.pos)
			if got != tc.want {
				t.Errorf("AnchorAt(%q, %v) = %+v, want %+v", tc.face, tc.pos, got, tc.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	good := Diagram{
		Nodes: []Node{
			{ID: "a", X: 0, Y: 0, Width: 50, Height: 30},
			{ID: "b", X: 100, Y: 100, Width: 50, Height: 30},
		},
		Links: []Link{
			{From: "a", To: "b", FromFace: FaceRight, ToFace: FaceLeft},
		},
	}
	if err := good.Validate(); err != nil {
		t.Errorf("valid diagram rejected: %v", err)
	}

	tests := []struct {
		name string
		d    Diagram
	}{
		{"Empty node id", Diagram{Nodes: []Node{{ID: "", Width: 10, Height: 10}}}},
		{"Duplicate node id", Diagram{Nodes: []Node{
			{ID: "a", Width: 10, Height: 10},
			{ID: "a", Width: 10, Height: 10},
		}}},
		{"Zero width", Diagram{Nodes: []Node{{ID: "a", Width: 0, Height: 10}}}},
		{"Unknown link target", Diagram{
			Nodes: []Node{{ID: "a", Width: 10, Height: 10}},
			Links: []Link{{From: "a", To: "ghost"}},
		}},
		{"Bad face name", Diagram{
			Nodes: []Node{
				{ID: "a", Width: 10, Height: 10},
				{ID: "b", Width: 10, Height: 10},
			},
			Links: []Link{{From: "a", To: "b", FromFace: "diagonal"}},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.d.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestShapeLink(t *testing.T) {
	d := Diagram{
		Nodes: []Node{
			{ID: "a", X: 0, Y: 0, Width: 50, Height: 30},
			{ID: "b", X: 150, Y: 70, Width: 50, Height: 30},
		},
	}
	link := Link{From: "a", To: "b", FromFace: FaceRight, FromT: 0.5, ToFace: FaceLeft, ToT: 0.5}

	shape, err := d.ShapeLink(link, connector.DefaultConfig())
	if err != nil {
		t.Fatalf("ShapeLink failed: %v", err)
	}

	// Box origin is the component-wise minimum of the anchors:
	// a.right midpoint (50,15), b.left midpoint (150,85).
	if shape.OriginX != 50 || shape.OriginY != 15 {
		t.Errorf("origin = (%v,%v), want (50,15)", shape.OriginX, shape.OriginY)
	}

	// Right/left faces oppose horizontally and the source anchor sits
	// at mid-height, so the control point drops curviness below the
	// corner midpoint.
	cp := shape.Curve.ControlPoint()
	if cp.X != 50 || cp.Y != 45 {
		t.Errorf("control point = (%v,%v), want (50,45)", cp.X, cp.Y)
	}

	if shape.Kind != connector.KindStateMachine {
		t.Errorf("default kind = %q, want %q", shape.Kind, connector.KindStateMachine)
	}

	// Absolute evaluation starts at the target corner.
	start := shape.PointAt(0)
	if math.Abs(start.X-145) > 1e-9 || math.Abs(start.Y-85) > 1e-9 {
		t.Errorf("PointAt(0) = (%v,%v), want (145,85)", start.X, start.Y)
	}
}

func TestShapeLinkErrors(t *testing.T) {
	d := Diagram{
		Nodes: []Node{
			{ID: "a", X: 0, Y: 0, Width: 50, Height: 30},
			{ID: "b", X: 150, Y: 70, Width: 50, Height: 30},
		},
	}

	if _, err := d.ShapeLink(Link{From: "ghost", To: "b"}, connector.DefaultConfig()); err == nil {
		t.Error("expected error for unknown source node")
	}
	if _, err := d.ShapeLink(Link{From: "a", To: "b", Kind: "wormhole"}, connector.DefaultConfig()); err == nil {
		t.Error("expected error for unknown connector kind")
	}
}

func TestShapes(t *testing.T) {
	d := Diagram{
		Nodes: []Node{
			{ID: "a", X: 0, Y: 0, Width: 50, Height: 30},
			{ID: "b", X: 150, Y: 70, Width: 50, Height: 30},
			{ID: "c", X: 300, Y: 0, Width: 50, Height: 30},
		},
		Links: []Link{
			{From: "a", To: "b", FromFace: FaceRight, FromT: 0.5, ToFace: FaceLeft, ToT: 0.5},
			{From: "b", To: "c", FromFace: FaceTop, FromT: 0.5, ToFace: FaceBottom, ToT: 0.5, Kind: connector.KindStraight},
		},
	}

	shapes, err := d.Shapes(connector.DefaultConfig())
	if err != nil {
		t.Fatalf("Shapes failed: %v", err)
	}
	if len(shapes) != 2 {
		t.Fatalf("got %d shapes, want 2", len(shapes))
	}
	if shapes[1].Kind != connector.KindStraight {
		t.Errorf("second link kind = %q, want %q", shapes[1].Kind, connector.KindStraight)
	}
}

func TestBounds(t *testing.T) {
	d := Diagram{
		Nodes: []Node{
			{ID: "a", X: 10, Y: 20, Width: 50, Height: 30},
			{ID: "b", X: 200, Y: 120, Width: 60, Height: 40},
		},
	}

	minX, minY, maxX, maxY := d.Bounds(25)
	if minX != -15 || minY != -5 || maxX != 285 || maxY != 185 {
		t.Errorf("Bounds(25) = (%v,%v,%v,%v), want (-15,-5,285,185)", minX, minY, maxX, maxY)
	}
}
