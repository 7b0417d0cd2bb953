package connector

import "testing"

func TestClassifySegment(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		expected       Segment
	}{
		{"Target up and right", 0, 100, 50, 20, SegmentTopRight},
		{"Target down and right", 0, 0, 50, 100, SegmentBottomRight},
		{"Target down and left", 50, 0, 0, 100, SegmentBottomLeft},
		{"Target up and left", 50, 100, 0, 20, SegmentTopLeft},
		{"Negative coordinates", -5, -5, 55, 35, SegmentBottomRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifySegment(tc.x1, tc.y1, tc.x2, tc.y2)
			if got != tc.expected {
				t.Errorf("ClassifySegment(%v,%v,%v,%v) = %v, want %v",
					tc.x1, tc.y1, tc.x2, tc.y2, got, tc.expected)
			}
		})
	}
}

// Boundary coordinates must resolve by rule precedence, not geometry:
// when the corners are equal on an axis, the first matching rule wins.
func TestClassifySegmentBoundaries(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		expected       Segment
	}{
		{"Same x, target above", 10, 50, 10, 0, SegmentTopRight},
		{"Same x, target below", 10, 0, 10, 50, SegmentBottomRight},
		{"Same y, target right", 0, 10, 50, 10, SegmentTopRight},
		{"Same y, target left", 50, 10, 0, 10, SegmentBottomLeft},
		{"Identical corners", 10, 10, 10, 10, SegmentTopRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifySegment(tc.x1, tc.y1, tc.x2, tc.y2)
			if got != tc.expected {
				t.Errorf("ClassifySegment(%v,%v,%v,%v) = %v, want %v",
					tc.x1, tc.y1, tc.x2, tc.y2, got, tc.expected)
			}
		})
	}
}

// Every input must map to exactly one of the four segments.
func TestClassifySegmentTotality(t *testing.T) {
	values := []float64{-100, -5, 0, 0.5, 5, 100}

	for _, x1 := range values {
		for _, y1 := range values {
			for _, x2 := range values {
				for _, y2 := range values {
					seg := ClassifySegment(x1, y1, x2, y2)
					if seg < SegmentTopRight || seg > SegmentTopLeft {
						t.Fatalf("ClassifySegment(%v,%v,%v,%v) = %d, outside 1-4",
							x1, y1, x2, y2, seg)
					}
				}
			}
		}
	}
}

func TestSegmentString(t *testing.T) {
	tests := []struct {
		seg      Segment
		expected string
	}{
		{SegmentTopRight, "TopRight"},
		{SegmentBottomRight, "BottomRight"},
		{SegmentBottomLeft, "BottomLeft"},
		{SegmentTopLeft, "TopLeft"},
		{Segment(0), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.seg.String(); got != tc.expected {
			t.Errorf("Segment(%d).String() = %q, want %q", tc.seg, got, tc.expected)
		}
	}
}
