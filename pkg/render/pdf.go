// Vector PDF rendering for diagrams via gofpdf. One page sized to the
// diagram bounds, built-in Helvetica for portability.

package render

import (
	"io"
	"math"

	"github.com/jung-kurt/gofpdf"

	"github.com/arclink/arclink/pkg/connector"
	"github.com/arclink/arclink/pkg/diagram"
)

// PDFOptions configures PDF rendering. Units are points (pt).
type PDFOptions struct {
	Padding  float64 // padding around the diagram bounds
	FontSize float64 // node label font size
	Title    string  // document title metadata
}

// DefaultPDFOptions returns sensible defaults.
func DefaultPDFOptions() PDFOptions {
	return PDFOptions{
		Padding:  40,
		FontSize: 12,
	}
}

// RenderPDF renders the diagram to a single-page PDF. The page origin
// is top-left, matching the diagram's coordinate system, so model
// coordinates map 1:1 onto the page after the bounds offset.
func RenderPDF(d *diagram.Diagram, cfg connector.Config, opts PDFOptions, w io.Writer) error {
	if opts.Padding == 0 {
		opts.Padding = 40
	}
	if opts.FontSize == 0 {
		opts.FontSize = 12
	}

	shapes, err := d.Shapes(cfg)
	if err != nil {
		return err
	}

	minX, minY, maxX, maxY := d.Bounds(opts.Padding)
	pageW := math.Max(maxX-minX, 1)
	pageH := math.Max(maxY-minY, 1)
	offX, offY := -minX, -minY

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pageW, Ht: pageH},
		OrientationStr: "",
	})
	if opts.Title != "" {
		pdf.SetTitle(opts.Title, true)
	}
	pdf.SetFont("Helvetica", "", opts.FontSize)
	pdf.AddPageFormat("", gofpdf.SizeType{Wd: pageW, Ht: pageH})

	pdf.SetDrawColor(51, 51, 51)
	pdf.SetFillColor(51, 51, 51)
	pdf.SetLineWidth(1.5)

	for _, s := range shapes {
		drawLinkPDF(pdf, s, offX, offY)
	}

	pdf.SetLineWidth(2)
	for _, n := range d.Nodes {
		x := n.X + offX
		y := n.Y + offY
		pdf.Rect(x, y, n.Width, n.Height, "D")

		label := n.Label
		if label == "" {
			label = n.ID
		}
		tw := pdf.GetStringWidth(label)
		pdf.Text(x+n.Width/2-tw/2, y+n.Height/2+opts.FontSize*0.35, label)
	}

	return pdf.Output(w)
}

func drawLinkPDF(pdf *gofpdf.Fpdf, s diagram.LinkShape, offX, offY float64) {
	c := s.Curve
	x1 := c.X1 + s.OriginX + offX
	y1 := c.Y1 + s.OriginY + offY
	x2 := c.X2 + s.OriginX + offX
	y2 := c.Y2 + s.OriginY + offY
	cpx := c.CP1X + s.OriginX + offX
	cpy := c.CP1Y + s.OriginY + offY

	pdf.Curve(x1, y1, cpx, cpy, x2, y2, "D")

	// Arrowhead at the target corner.
	tx := x1 - cpx
	ty := y1 - cpy
	dist := math.Hypot(tx, ty)
	if dist >= 1 {
		nx, ny := tx/dist, ty/dist
		arrowLen, arrowWidth := 9.0, 4.0
		pdf.Polygon([]gofpdf.PointType{
			{X: x1, Y: y1},
			{X: x1 - nx*arrowLen + ny*arrowWidth, Y: y1 - ny*arrowLen - nx*arrowWidth},
			{X: x1 - nx*arrowLen - ny*arrowWidth, Y: y1 - ny*arrowLen + nx*arrowWidth},
		}, "F")
	}

	if s.Label != "" {
		mid := s.PointAt(0.5)
		tw := pdf.GetStringWidth(s.Label)
		pdf.Text(mid.X+offX-tw/2, mid.Y+offY-5, s.Label)
	}
}
