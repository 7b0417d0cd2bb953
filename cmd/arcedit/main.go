// Command arcedit is a TUI sandbox for the connector geometry: move
// two nodes around, switch anchor faces and tunables, and watch the
// curve recompute on every keystroke.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/arclink/arclink/pkg/connector"
	"github.com/arclink/arclink/pkg/diagram"
	"github.com/arclink/arclink/pkg/render"
)

// Cell size in model pixels. Terminal cells are roughly twice as tall
// as wide, so a cell maps to an 8x16 pixel tile.
const (
	cellW = 8
	cellH = 16
)

var faceCycle = []diagram.Face{
	diagram.FaceRight, diagram.FaceBottom, diagram.FaceLeft, diagram.FaceTop,
}

// Editor holds all sandbox state.
type Editor struct {
	screen   tcell.Screen
	d        *diagram.Diagram
	cfg      connector.Config
	kinds    []string
	kindIdx  int
	selected int // index into d.Nodes
	message  string
}

func newEditor() *Editor {
	return &Editor{
		d: &diagram.Diagram{
			Name: "sandbox",
			Nodes: []diagram.Node{
				{ID: "a", Label: "A", X: 80, Y: 80, Width: 96, Height: 48},
				{ID: "b", Label: "B", X: 400, Y: 240, Width: 96, Height: 48},
			},
			Links: []diagram.Link{
				{From: "a", To: "b",
					FromFace: diagram.FaceRight, FromT: 0.5,
					ToFace: diagram.FaceLeft, ToT: 0.5},
			},
		},
		cfg:   connector.DefaultConfig(),
		kinds: connector.Kinds(),
	}
}

func main() {
	ed := newEditor()

	if len(os.Args) > 1 {
		d, err := diagram.ParseFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", os.Args[1], err)
			os.Exit(1)
		}
		if err := d.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error in %s: %v\n", os.Args[1], err)
			os.Exit(1)
		}
		if len(d.Nodes) == 0 {
			fmt.Fprintf(os.Stderr, "Error: %s has no nodes\n", os.Args[1])
			os.Exit(1)
		}
		ed.d = d
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	ed.screen = screen

	ed.run()

	screen.Fini()
}

func (ed *Editor) run() {
	for {
		ed.draw()
		ed.screen.Show()

		ev := ed.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			ed.screen.Sync()
		case *tcell.EventKey:
			if !ed.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey processes one key event; returns false to quit.
func (ed *Editor) handleKey(ev *tcell.EventKey) bool {
	node := &ed.d.Nodes[ed.selected]
	ed.message = ""

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		ed.selected = (ed.selected + 1) % len(ed.d.Nodes)
		return true
	case tcell.KeyUp:
		node.Y -= cellH
		return true
	case tcell.KeyDown:
		node.Y += cellH
		return true
	case tcell.KeyLeft:
		node.X -= cellW
		return true
	case tcell.KeyRight:
		node.X += cellW
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'f':
		ed.cycleFace(true)
	case 'F':
		ed.cycleFace(false)
	case 'k':
		ed.kindIdx = (ed.kindIdx + 1) % len(ed.kinds)
		for i := range ed.d.Links {
			ed.d.Links[i].Kind = ed.kinds[ed.kindIdx]
		}
	case '+', '=':
		ed.cfg.Curviness += 5
	case '-':
		if ed.cfg.Curviness >= 5 {
			ed.cfg.Curviness -= 5
		}
	case 'm':
		ed.cfg.Margin++
	case 'M':
		if ed.cfg.Margin >= 1 {
			ed.cfg.Margin--
		}
	case 'p':
		ed.cfg.ProximityLimit += 10
	case 'P':
		if ed.cfg.ProximityLimit >= 10 {
			ed.cfg.ProximityLimit -= 10
		}
	case 'w':
		ed.writeSVG("arcedit.svg")
	}
	return true
}

// cycleFace rotates the selected node's side of every attached link.
func (ed *Editor) cycleFace(forward bool) {
	id := ed.d.Nodes[ed.selected].ID
	for i := range ed.d.Links {
		l := &ed.d.Links[i]
		if l.From == id {
			l.FromFace = nextFace(l.FromFace, forward)
		}
		if l.To == id {
			l.ToFace = nextFace(l.ToFace, forward)
		}
	}
}

func nextFace(f diagram.Face, forward bool) diagram.Face {
	for i, c := range faceCycle {
		if c == f {
			if forward {
				return faceCycle[(i+1)%len(faceCycle)]
			}
			return faceCycle[(i+len(faceCycle)-1)%len(faceCycle)]
		}
	}
	return faceCycle[0]
}

func (ed *Editor) writeSVG(path string) {
	svg, err := render.RenderSVG(ed.d, ed.cfg, render.DefaultSVGOptions())
	if err != nil {
		ed.message = fmt.Sprintf("render failed: %v", err)
		return
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		ed.message = fmt.Sprintf("write failed: %v", err)
		return
	}
	ed.message = "wrote " + path
}
