// Native PNG rendering for diagrams. Mirrors the SVG renderer output
// using Go's image packages, with supersampling for smooth curves.

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/arclink/arclink/pkg/connector"
	"github.com/arclink/arclink/pkg/diagram"
)

// PNGOptions configures PNG rendering.
type PNGOptions struct {
	Width    int     // canvas width in pixels; 0 sizes to the diagram bounds
	Height   int     // canvas height in pixels; 0 sizes to the diagram bounds
	Padding  float64 // padding around the diagram bounds
	FontSize int     // node label font size
}

// DefaultPNGOptions returns sensible defaults for PNG rendering.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		Padding:  40,
		FontSize: 14,
	}
}

var (
	pngWhite = color.RGBA{255, 255, 255, 255}
	pngBlack = color.RGBA{51, 51, 51, 255} // #333
)

// rasterContext holds raster parameters including the supersampling
// scale.
type rasterContext struct {
	img       *image.RGBA
	scale     float64 // multiplier for line thickness and arrow size
	lineWidth float64
	face      font.Face
}

func newRasterContext(img *image.RGBA, scale int, fontSize int) (*rasterContext, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: parse embedded font: %w", err)
	}

	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(fontSize * scale),
		DPI:     72,
		Hinting: font.HintingNone, // supersampling smooths instead
	})
	if err != nil {
		return nil, fmt.Errorf("render: build font face: %w", err)
	}

	return &rasterContext{
		img:       img,
		scale:     float64(scale),
		lineWidth: float64(scale) * 1.5,
		face:      face,
	}, nil
}

// RenderPNG renders the diagram to PNG. Draws at 4x size and
// downsamples for smoother output.
func RenderPNG(d *diagram.Diagram, cfg connector.Config, opts PNGOptions, w io.Writer) error {
	if opts.Padding == 0 {
		opts.Padding = 40
	}
	if opts.FontSize == 0 {
		opts.FontSize = 14
	}

	shapes, err := d.Shapes(cfg)
	if err != nil {
		return err
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
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	scale := 4
	largeImg := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	ctx, err := newRasterContext(largeImg, scale, opts.FontSize)
	if err != nil {
		return err
	}

	// White background
	draw.Draw(largeImg, largeImg.Bounds(), image.NewUniform(pngWhite), image.Point{}, draw.Src)

	// Everything below draws in supersampled canvas coordinates.
	s := float64(scale)
	offX, offY := -minX, -minY

	for _, shape := range shapes {
		drawLinkPNG(ctx, shape, offX, offY, s)
	}

	for _, n := range d.Nodes {
		x := (n.X + offX) * s
		y := (n.Y + offY) * s
		drawRect(ctx, x, y, n.Width*s, n.Height*s, pngWhite, pngBlack)

		label := n.Label
		if label == "" {
			label = n.ID
		}
		drawTextCentered(ctx, int(x+n.Width*s/2), int(y+n.Height*s/2), label, pngBlack)
	}

	finalImg := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(finalImg, finalImg.Bounds(), largeImg, largeImg.Bounds(), draw.Over, nil)

	return png.Encode(w, finalImg)
}

func drawLinkPNG(ctx *rasterContext, shape diagram.LinkShape, offX, offY, s float64) {
	c := shape.Curve
	x1 := (c.X1 + shape.OriginX + offX) * s
	y1 := (c.Y1 + shape.OriginY + offY) * s
	x2 := (c.X2 + shape.OriginX + offX) * s
	y2 := (c.Y2 + shape.OriginY + offY) * s
	cpx := (c.CP1X + shape.OriginX + offX) * s
	cpy := (c.CP1Y + shape.OriginY + offY) * s

	drawQuadBezier(ctx, x1, y1, cpx, cpy, x2, y2, pngBlack)

	// Arrowhead at the target corner, against the outgoing tangent.
	tx := x1 - cpx
	ty := y1 - cpy
	dist := math.Hypot(tx, ty)
	if dist >= 1 {
		nx, ny := tx/dist, ty/dist
		arrowLen := 8.0 * ctx.scale
		arrowWidth := 4.0 * ctx.scale

		ax1 := x1 - nx*arrowLen + ny*arrowWidth
		ay1 := y1 - ny*arrowLen - nx*arrowWidth
		ax2 := x1 - nx*arrowLen - ny*arrowWidth
		ay2 := y1 - ny*arrowLen + nx*arrowWidth

		drawLine(ctx, x1, y1, ax1, ay1, pngBlack)
		drawLine(ctx, x1, y1, ax2, ay2, pngBlack)
		for t := 0.0; t <= 1.0; t += 0.05 {
			mx := ax1 + (ax2-ax1)*t
			my := ay1 + (ay2-ay1)*t
			drawLine(ctx, x1, y1, mx, my, pngBlack)
		}
	}

	if shape.Label != "" {
		mid := shape.PointAt(0.5)
		drawTextCentered(ctx, int((mid.X+offX)*s), int((mid.Y+offY)*s-8*ctx.scale), shape.Label, pngBlack)
	}
}

// drawRect draws a filled rectangle with a thick outline.
func drawRect(ctx *rasterContext, x, y, w, h float64, fill, stroke color.Color) {
	img := ctx.img
	for py := y; py <= y+h; py++ {
		for px := x; px <= x+w; px++ {
			img.Set(int(px), int(py), fill)
		}
	}
	drawLine(ctx, x, y, x+w, y, stroke)
	drawLine(ctx, x+w, y, x+w, y+h, stroke)
	drawLine(ctx, x+w, y+h, x, y+h, stroke)
	drawLine(ctx, x, y+h, x, y, stroke)
}

// drawLine draws a line between two points with thickness from
// context.
func drawLine(ctx *rasterContext, x1, y1, x2, y2 float64, c color.Color) {
	img := ctx.img
	halfThick := ctx.lineWidth / 2

	dx := x2 - x1
	dy := y2 - y1
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		for ty := -halfThick; ty <= halfThick; ty++ {
			for tx := -halfThick; tx <= halfThick; tx++ {
				img.Set(int(x1+tx), int(y1+ty), c)
			}
		}
		return
	}

	steps := math.Max(math.Abs(dx), math.Abs(dy))
	perpX := -dy / dist
	perpY := dx / dist

	for i := 0.0; i <= steps; i++ {
		t := i / steps
		cx := x1 + dx*t
		cy := y1 + dy*t
		for offset := -halfThick; offset <= halfThick; offset += 0.5 {
			img.Set(int(cx+perpX*offset), int(cy+perpY*offset), c)
		}
	}
}

// drawQuadBezier draws a quadratic Bezier curve by flattening it into
// line segments.
func drawQuadBezier(ctx *rasterContext, x1, y1, cx, cy, x2, y2 float64, c color.Color) {
	steps := 100.0
	var prevX, prevY float64

	for i := 0.0; i <= steps; i++ {
		t := i / steps
		x := (1-t)*(1-t)*x1 + 2*(1-t)*t*cx + t*t*x2
		y := (1-t)*(1-t)*y1 + 2*(1-t)*t*cy + t*t*y2

		if i > 0 {
			drawLine(ctx, prevX, prevY, x, y, c)
		}
		prevX, prevY = x, y
	}
}

// drawTextCentered draws text centred at the given position using the
// embedded Go Regular font.
func drawTextCentered(ctx *rasterContext, x, y int, text string, c color.Color) {
	width := font.MeasureString(ctx.face, text).Ceil()
	ascent := ctx.face.Metrics().Ascent.Ceil()

	point := fixed.Point26_6{
		X: fixed.I(x - width/2),
		Y: fixed.I(y + int(float64(ascent)*0.35)),
	}

	drawer := &font.Drawer{
		Dst:  ctx.img,
		Src:  image.NewUniform(c),
		Face: ctx.face,
		Dot:  point,
	}
	drawer.DrawString(text)
}
