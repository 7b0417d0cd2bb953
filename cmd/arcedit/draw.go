package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/arclink/arclink/pkg/connector"
)

// Styles
var (
	styleNode    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleNodeSel = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleCurve   = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleControl = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleHelp    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

func (ed *Editor) draw() {
	ed.screen.Clear()
	w, h := ed.screen.Size()

	ed.drawLinks(w, h)
	ed.drawNodes(w, h)
	ed.drawStatusBar(w, h)
}

// toCell maps model pixels to terminal cells.
func toCell(x, y float64) (int, int) {
	return int(x / cellW), int(y / cellH)
}

func (ed *Editor) drawLinks(w, h int) {
	shapes, err := ed.d.Shapes(ed.cfg)
	if err != nil {
		ed.message = err.Error()
		return
	}

	for _, s := range shapes {
		// Sample densely enough that adjacent cells connect.
		steps := 200
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			p := s.PointAt(t)
			cx, cy := toCell(p.X, p.Y)
			if cx >= 0 && cx < w && cy >= 0 && cy < h-2 {
				ed.screen.SetContent(cx, cy, '·', nil, styleCurve)
			}
		}

		// Arrowhead cell at the target corner (curve start).
		p0 := s.PointAt(0)
		if cx, cy := toCell(p0.X, p0.Y); cx >= 0 && cx < w && cy >= 0 && cy < h-2 {
			ed.screen.SetContent(cx, cy, '◆', nil, styleCurve)
		}

		// Control point marker.
		cp := s.Curve.ControlPoint()
		if cx, cy := toCell(cp.X+s.OriginX, cp.Y+s.OriginY); cx >= 0 && cx < w && cy >= 0 && cy < h-2 {
			ed.screen.SetContent(cx, cy, '+', nil, styleControl)
		}
	}
}

func (ed *Editor) drawNodes(w, h int) {
	for i, n := range ed.d.Nodes {
		style := styleNode
		if i == ed.selected {
			style = styleNodeSel
		}

		x1, y1 := toCell(n.X, n.Y)
		x2, y2 := toCell(n.X+n.Width, n.Y+n.Height)
		if x2 <= x1 {
			x2 = x1 + 1
		}
		if y2 <= y1 {
			y2 = y1 + 1
		}

		drawBox(ed.screen, x1, y1, x2, y2, w, h-2, style)

		label := n.Label
		if label == "" {
			label = n.ID
		}
		lx := x1 + (x2-x1-len(label))/2 + 1
		ly := y1 + (y2-y1)/2
		drawString(ed.screen, lx, ly, label, style)
	}
}

func drawBox(s tcell.Screen, x1, y1, x2, y2, maxW, maxH int, style tcell.Style) {
	set := func(x, y int, r rune) {
		if x >= 0 && x < maxW && y >= 0 && y < maxH {
			s.SetContent(x, y, r, nil, style)
		}
	}

	set(x1, y1, '┌')
	set(x2, y1, '┐')
	set(x1, y2, '└')
	set(x2, y2, '┘')
	for x := x1 + 1; x < x2; x++ {
		set(x, y1, '─')
		set(x, y2, '─')
	}
	for y := y1 + 1; y < y2; y++ {
		set(x1, y, '│')
		set(x2, y, '│')
	}
}

func drawString(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func (ed *Editor) drawStatusBar(w, h int) {
	shapes, _ := ed.d.Shapes(ed.cfg)
	seg := ""
	if len(shapes) > 0 {
		c := shapes[0].Curve
		seg = connector.ClassifySegment(c.X2, c.Y2, c.X1, c.Y1).String()
	}

	status := fmt.Sprintf(" %s | kind=%s segment=%s curviness=%.0f margin=%.0f proximity=%.0f",
		ed.d.Nodes[ed.selected].ID, ed.kinds[ed.kindIdx], seg,
		ed.cfg.Curviness, ed.cfg.Margin, ed.cfg.ProximityLimit)
	if ed.message != "" {
		status += " | " + ed.message
	}
	if len(status) < w {
		status += strings.Repeat(" ", w-len(status))
	}
	drawString(ed.screen, 0, h-2, status, styleStatus)

	help := " arrows move · Tab select · f/F face · k kind · +/- curve · m/M margin · p/P proximity · w svg · q quit"
	drawString(ed.screen, 0, h-1, help, styleHelp)
}
