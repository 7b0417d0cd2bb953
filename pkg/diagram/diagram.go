// Package diagram provides the node/link model that feeds the
// connector geometry and the renderers: nodes are axis-aligned boxes,
// links attach to node faces at proportional positions.
package diagram

import (
	"fmt"
	"math"

	"github.com/arclink/arclink/pkg/connector"
)

// Face names one side of a node's bounding box.
type Face string

const (
	FaceTop    Face = "top"
	FaceRight  Face = "right"
	FaceBottom Face = "bottom"
	FaceLeft   Face = "left"
)

// Valid reports whether the face is one of the four sides.
func (f Face) Valid() bool {
	switch f {
	case FaceTop, FaceRight, FaceBottom, FaceLeft:
		return true
	}
	return false
}

// Node is a box in the diagram.
type Node struct {
	ID     string  `json:"id" yaml:"id"`
	Label  string  `json:"label,omitempty" yaml:"label,omitempty"`
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// AnchorAt resolves a face and a position along it (0 to 1) to an
// anchor: absolute coordinates plus the proportional face position
// the connector rules read. An unknown face anchors at the node
// centre, which matches no face-extreme rule and therefore always
// takes the default curve branch.
func (n Node) AnchorAt(face Face, t float64) connector.AnchorPosition {
	switch face {
	case FaceTop:
		return connector.AnchorPosition{X: n.X + t*n.Width, Y: n.Y, FaceX: t, FaceY: 0}
	case FaceRight:
		return connector.AnchorPosition{X: n.X + n.Width, Y: n.Y + t*n.Height, FaceX: 1, FaceY: t}
	case FaceBottom:
		return connector.AnchorPosition{X: n.X + t*n.Width, Y: n.Y + n.Height, FaceX: t, FaceY: 1}
	case FaceLeft:
		return connector.AnchorPosition{X: n.X, Y: n.Y + t*n.Height, FaceX: 0, FaceY: t}
	default:
		return connector.AnchorPosition{
			X: n.X + n.Width/2, Y: n.Y + n.Height/2,
			FaceX: 0.5, FaceY: 0.5,
		}
	}
}

// Center returns the centre point of the node.
func (n Node) Center() connector.Point {
	return connector.Point{X: n.X + n.Width/2, Y: n.Y + n.Height/2}
}

// Link is a directed connector between two nodes.
type Link struct {
	From     string  `json:"from" yaml:"from"`
	To       string  `json:"to" yaml:"to"`
	FromFace Face    `json:"from_face,omitempty" yaml:"from_face,omitempty"`
	FromT    float64 `json:"from_pos" yaml:"from_pos"`
	ToFace   Face    `json:"to_face,omitempty" yaml:"to_face,omitempty"`
	ToT      float64 `json:"to_pos" yaml:"to_pos"`
	Kind     string  `json:"kind,omitempty" yaml:"kind,omitempty"`
	Label    string  `json:"label,omitempty" yaml:"label,omitempty"`
}

// Diagram is a complete set of nodes and links.
type Diagram struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Links []Link `json:"links" yaml:"links"`
}

// NodeByID returns the node with the given ID, or nil.
func (d *Diagram) NodeByID(id string) *Node {
	for i := range d.Nodes {
		if d.Nodes[i].ID == id {
			return &d.Nodes[i]
		}
	}
	return nil
}

// Validate checks structural consistency: unique non-empty node IDs,
// positive node sizes, link endpoints that exist, and recognised face
// names. Face positions outside [0,1] are allowed; the connector
// rules treat them permissively.
func (d *Diagram) Validate() error {
	seen := map[string]bool{}
	for _, n := range d.Nodes {
		if n.ID == "" {
			return fmt.Errorf("diagram: node with empty id")
		}
		if seen[n.ID] {
			return fmt.Errorf("diagram: duplicate node id %q", n.ID)
		}
		seen[n.ID] = true
		if n.Width <= 0 || n.Height <= 0 {
			return fmt.Errorf("diagram: node %q has non-positive size %gx%g", n.ID, n.Width, n.Height)
		}
	}

	for i, l := range d.Links {
		if !seen[l.From] {
			return fmt.Errorf("diagram: link %d references unknown node %q", i, l.From)
		}
		if !seen[l.To] {
			return fmt.Errorf("diagram: link %d references unknown node %q", i, l.To)
		}
		if l.FromFace != "" && !l.FromFace.Valid() {
			return fmt.Errorf("diagram: link %d has unknown face %q", i, l.FromFace)
		}
		if l.ToFace != "" && !l.ToFace.Valid() {
			return fmt.Errorf("diagram: link %d has unknown face %q", i, l.ToFace)
		}
	}
	return nil
}

// LinkShape is one computed connector, ready for painting: the curve
// descriptor in box-local coordinates plus the box origin that places
// it on the canvas.
type LinkShape struct {
	OriginX, OriginY float64
	Curve            connector.CurveDescriptor
	Source, Target   connector.AnchorPosition
	Kind             string
	Label            string
}

// PointAt evaluates the curve at t in absolute canvas coordinates.
func (s LinkShape) PointAt(t float64) connector.Point {
	p := s.Curve.PointAt(t)
	return connector.Point{X: p.X + s.OriginX, Y: p.Y + s.OriginY}
}

// ShapeLink resolves a link's anchors and runs its connector shape.
// The bounding box is spanned by the two anchors' absolute
// coordinates; its origin is the component-wise minimum.
func (d *Diagram) ShapeLink(l Link, cfg connector.Config) (LinkShape, error) {
	from := d.NodeByID(l.From)
	if from == nil {
		return LinkShape{}, fmt.Errorf("diagram: unknown node %q", l.From)
	}
	to := d.NodeByID(l.To)
	if to == nil {
		return LinkShape{}, fmt.Errorf("diagram: unknown node %q", l.To)
	}

	src := from.AnchorAt(l.FromFace, l.FromT)
	tgt := to.AnchorAt(l.ToFace, l.ToT)

	kind := l.Kind
	if kind == "" {
		kind = connector.KindStateMachine
	}
	conn, err := connector.New(kind, cfg)
	if err != nil {
		return LinkShape{}, fmt.Errorf("diagram: link %s->%s: %w", l.From, l.To, err)
	}

	curve := conn.Compute(src, tgt, tgt.X-src.X, tgt.Y-src.Y)

	return LinkShape{
		OriginX: math.Min(src.X, tgt.X),
		OriginY: math.Min(src.Y, tgt.Y),
		Curve:   curve,
		Source:  src,
		Target:  tgt,
		Kind:    kind,
		Label:   l.Label,
	}, nil
}

// Shapes computes every link in the diagram.
func (d *Diagram) Shapes(cfg connector.Config) ([]LinkShape, error) {
	shapes := make([]LinkShape, 0, len(d.Links))
	for _, l := range d.Links {
		s, err := d.ShapeLink(l, cfg)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

// Bounds returns the bounding box of all nodes, with a margin applied
// on every side. An empty diagram yields a zero box.
func (d *Diagram) Bounds(margin float64) (minX, minY, maxX, maxY float64) {
	if len(d.Nodes) == 0 {
		return 0, 0, 0, 0
	}

	first := d.Nodes[0]
	minX, minY = first.X, first.Y
	maxX, maxY = first.X+first.Width, first.Y+first.Height

	for _, n := range d.Nodes[1:] {
		minX = math.Min(minX, n.X)
		minY = math.Min(minY, n.Y)
		maxX = math.Max(maxX, n.X+n.Width)
		maxY = math.Max(maxY, n.Y+n.Height)
	}

	return minX - margin, minY - margin, maxX + margin, maxY + margin
}
