// Native SVG rendering for diagrams: node boxes plus the quadratic
// connector curves computed by pkg/connector.

package render

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/arclink/arclink/pkg/connector"
	"github.com/arclink/arclink/pkg/diagram"
)

// SVGOptions controls SVG rendering.
type SVGOptions struct {
	Width    int     // canvas width in pixels; 0 sizes to the diagram bounds
	Height   int     // canvas height in pixels; 0 sizes to the diagram bounds
	Padding  float64 // padding around the diagram bounds
	FontSize int     // node label font size
	Title    string  // optional diagram title
}

// DefaultSVGOptions returns sensible defaults.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Padding:  40,
		FontSize: 14,
	}
}

// RenderSVG renders the diagram to an SVG document. Links draw under
// nodes; each link is one quadratic path whose start is the target
// corner of its curve descriptor (the descriptor's endpoint order is
// preserved, so the arrowhead sits at the path start).
func RenderSVG(d *diagram.Diagram, cfg connector.Config, opts SVGOptions) (string, error) {
	if opts.Padding == 0 {
		opts.Padding = 40
	}
	if opts.FontSize == 0 {
		opts.FontSize = 14
	}

	shapes, err := d.Shapes(cfg)
	if err != nil {
		return "", err
	}

	minX, minY, maxX, maxY := d.Bounds(opts.Padding)
	width := opts.Width
	if width == 0 {
		width = int(math.Ceil(maxX - minX))
	}
	height := opts.Height
	if height == 0 {
		height = int(math.Ceil(maxY - minY))
	}
	offX, offY := -minX, -minY

	labelSize := opts.FontSize - 2
	if labelSize < 10 {
		labelSize = 10
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<style>
  .node { fill: white; stroke: #333; stroke-width: 2; }
  .node-label { font-family: sans-serif; font-size: %dpx; text-anchor: middle; dominant-baseline: middle; }
  .link { fill: none; stroke: #333; stroke-width: 1.5; }
  .link-label { font-family: sans-serif; font-size: %dpx; fill: #333; text-anchor: middle; }
  .arrow { fill: #333; }
  .title { font-family: sans-serif; font-size: %dpx; font-weight: bold; text-anchor: middle; }
</style>
`, width, height, width, height, opts.FontSize, labelSize, opts.FontSize+4))

	sb.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="white"/>
`, width, height))

	if opts.Title != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="25" class="title">%s</text>
`, width/2, html.EscapeString(opts.Title)))
	}

	// Links under nodes
	for _, s := range shapes {
		writeLinkSVG(&sb, s, offX, offY)
	}

	// Nodes
	for _, n := range d.Nodes {
		x := n.X + offX
		y := n.Y + offY
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4" class="node"/>
`, x, y, n.Width, n.Height))

		label := n.Label
		if label == "" {
			label = n.ID
		}
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" class="node-label">%s</text>
`, x+n.Width/2, y+n.Height/2, html.EscapeString(label)))
	}

	sb.WriteString("</svg>\n")
	return sb.String(), nil
}

func writeLinkSVG(sb *strings.Builder, s diagram.LinkShape, offX, offY float64) {
	c := s.Curve
	x1 := c.X1 + s.OriginX + offX
	y1 := c.Y1 + s.OriginY + offY
	x2 := c.X2 + s.OriginX + offX
	y2 := c.Y2 + s.OriginY + offY
	cpx := c.CP1X + s.OriginX + offX
	cpy := c.CP1Y + s.OriginY + offY

	fmt.Fprintf(sb, `<path d="M %.1f %.1f Q %.1f %.1f %.1f %.1f" class="link"/>
`, x1, y1, cpx, cpy, x2, y2)

	// Arrowhead at the target corner, pointing against the curve's
	// outgoing tangent there.
	tan := c.TangentAt(0)
	dist := math.Hypot(tan.X, tan.Y)
	if dist >= 1 {
		nx, ny := -tan.X/dist, -tan.Y/dist
		arrowLen, arrowWidth := 9.0, 4.0
		ax1 := x1 - nx*arrowLen + ny*arrowWidth
		ay1 := y1 - ny*arrowLen - nx*arrowWidth
		ax2 := x1 - nx*arrowLen - ny*arrowWidth
		ay2 := y1 - ny*arrowLen + nx*arrowWidth
		fmt.Fprintf(sb, `<polygon points="%.1f %.1f, %.1f %.1f, %.1f %.1f" class="arrow"/>
`, x1, y1, ax1, ay1, ax2, ay2)
	}

	if s.Label != "" {
		mid := s.PointAt(0.5)
		fmt.Fprintf(sb, `<text x="%.1f" y="%.1f" class="link-label">%s</text>
`, mid.X+offX, mid.Y+offY-6, html.EscapeString(s.Label))
	}
}
