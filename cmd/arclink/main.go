// Command arclink is a CLI tool for rendering diagram connector
// curves.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arclink/arclink/pkg/connector"
	"github.com/arclink/arclink/pkg/diagram"
	"github.com/arclink/arclink/pkg/render"
)

const usage = `arclink - curved connector toolkit

Usage:
  arclink <command> [options]

Commands:
  render     Render a diagram to SVG, PNG or PDF
  info       Show diagram and connector information
  validate   Validate a diagram file

Examples:
  arclink render flow.json -o flow.svg
  arclink render flow.yaml -o flow.png --curviness 20
  arclink info flow.json
  arclink validate flow.json

Use "arclink <command> -h" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "render":
		cmdRender(args)
	case "info":
		cmdInfo(args)
	case "validate":
		cmdValidate(args)
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}

const renderUsage = `Usage: arclink render <diagram> [options]

Options:
  -o, --output <file>    Output file (default: input with new extension)
  --format <fmt>         svg, png or pdf (default: from output extension)
  --connector <kind>     Default connector kind for links without one
  --curviness <n>        Control point offset (default 10)
  --margin <n>           Anchor margin (default 5)
  --proximity <n>        Straight-line distance limit (default 80)
  --title <text>         Diagram title
`

func cmdRender(args []string) {
	if len(args) < 1 || args[0] == "-h" {
		fmt.Fprint(os.Stderr, renderUsage)
		os.Exit(1)
	}

	input := args[0]
	var output, format, title string
	cfg := connector.DefaultConfig()
	kind := ""

	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 < len(args) {
				output = args[i+1]
				i++
			}
		case "--format":
			if i+1 < len(args) {
				format = args[i+1]
				i++
			}
		case "--connector":
			if i+1 < len(args) {
				kind = args[i+1]
				i++
			}
		case "--curviness":
			cfg.Curviness = floatArg(args, &i)
		case "--margin":
			cfg.Margin = floatArg(args, &i)
		case "--proximity":
			cfg.ProximityLimit = floatArg(args, &i)
		case "--title":
			if i+1 < len(args) {
				title = args[i+1]
				i++
			}
		default:
			fmt.Fprintf(os.Stderr, "Unknown option: %s\n", args[i])
			os.Exit(1)
		}
	}

	d := loadDiagram(input)
	if kind != "" {
		for i := range d.Links {
			if d.Links[i].Kind == "" {
				d.Links[i].Kind = kind
			}
		}
	}

	if format == "" {
		if output != "" {
			format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
		} else {
			format = "svg"
		}
	}
	if output == "" {
		ext := filepath.Ext(input)
		output = strings.TrimSuffix(input, ext) + "." + format
	}

	out, err := os.Create(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", output, err)
		os.Exit(1)
	}
	defer out.Close()

	switch format {
	case "svg":
		opts := render.DefaultSVGOptions()
		opts.Title = title
		svg, err := render.RenderSVG(d, cfg, opts)
		if err == nil {
			_, err = out.WriteString(svg)
		}
		exitOnError(err)
	case "png":
		exitOnError(render.RenderPNG(d, cfg, render.DefaultPNGOptions(), out))
	case "pdf":
		opts := render.DefaultPDFOptions()
		opts.Title = title
		exitOnError(render.RenderPDF(d, cfg, opts, out))
	default:
		fmt.Fprintf(os.Stderr, "Unknown format: %s (want svg, png or pdf)\n", format)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s\n", output)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: arclink info <diagram>")
		os.Exit(1)
	}

	d := loadDiagram(args[0])
	cfg := connector.DefaultConfig()

	if d.Name != "" {
		fmt.Printf("Name:   %s\n", d.Name)
	}
	fmt.Printf("Nodes:  %d\n", len(d.Nodes))
	fmt.Printf("Links:  %d\n", len(d.Links))
	fmt.Printf("Shapes: %s\n", strings.Join(connector.Kinds(), ", "))

	for _, l := range d.Links {
		shape, err := d.ShapeLink(l, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error shaping %s->%s: %v\n", l.From, l.To, err)
			os.Exit(1)
		}
		c := shape.Curve
		seg := connector.ClassifySegment(c.X2, c.Y2, c.X1, c.Y1)
		fmt.Printf("  %s -> %s  kind=%s segment=%s control=(%.1f,%.1f) length=%.1f\n",
			l.From, l.To, shape.Kind, seg, c.CP1X, c.CP1Y, c.Length())
	}
}

func cmdValidate(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: arclink validate <diagram>")
		os.Exit(1)
	}

	path := args[0]

	// Schema check first for JSON inputs: shape errors come out with
	// field-level messages before unmarshalling.
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
			os.Exit(1)
		}
		if err := diagram.ValidateSchema(data); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
			os.Exit(1)
		}
	}

	d := loadDiagram(path)
	if err := d.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s: OK (%d nodes, %d links)\n", path, len(d.Nodes), len(d.Links))
}

func loadDiagram(path string) *diagram.Diagram {
	d, err := diagram.ParseFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", path, err)
		os.Exit(1)
	}
	if err := d.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error in %s: %v\n", path, err)
		os.Exit(1)
	}
	return d
}

func floatArg(args []string, i *int) float64 {
	if *i+1 >= len(args) {
		fmt.Fprintf(os.Stderr, "Missing value for %s\n", args[*i])
		os.Exit(1)
	}
	*i++
	v, err := strconv.ParseFloat(args[*i], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad number %q for %s\n", args[*i], args[*i-1])
		os.Exit(1)
	}
	return v
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
