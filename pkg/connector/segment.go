package connector

// Segment classifies where the target corner lies relative to the
// source corner. The numeric encoding (1-4) is part of the contract
// with the control point rules.
type Segment int

const (
	SegmentTopRight    Segment = iota + 1 // target above and to the right
	SegmentBottomRight                    // target below and to the right
	SegmentBottomLeft                     // target below and to the left
	SegmentTopLeft                        // target above and to the left
)

// String returns the string representation of a Segment.
func (s Segment) String() string {
	switch s {
	case SegmentTopRight:
		return "TopRight"
	case SegmentBottomRight:
		return "BottomRight"
	case SegmentBottomLeft:
		return "BottomLeft"
	case SegmentTopLeft:
		return "TopLeft"
	default:
		return "Unknown"
	}
}

// ClassifySegment maps the source corner (x1,y1) and target corner
// (x2,y2) to a Segment. The function is total: every input matches
// exactly one rule, and on boundary coordinates (equal on one axis)
// the first matching rule wins. The precedence is a contract, not a
// geometric choice; callers rely on ties resolving this way.
func ClassifySegment(x1, y1, x2, y2 float64) Segment {
	switch {
	case x1 <= x2 && y2 <= y1:
		return SegmentTopRight
	case x1 <= x2 && y1 <= y2:
		return SegmentBottomRight
	case x2 <= x1 && y2 >= y1:
		return SegmentBottomLeft
	default:
		return SegmentTopLeft
	}
}
