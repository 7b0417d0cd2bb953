package diagram

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// wireLink is the serialized form of a Link. Face positions are
// pointers so an omitted position can default to the face midpoint
// instead of 0.
type wireLink struct {
	From     string   `json:"from" yaml:"from"`
	To       string   `json:"to" yaml:"to"`
	FromFace Face     `json:"from_face,omitempty" yaml:"from_face,omitempty"`
	FromT    *float64 `json:"from_pos,omitempty" yaml:"from_pos,omitempty"`
	ToFace   Face     `json:"to_face,omitempty" yaml:"to_face,omitempty"`
	ToT      *float64 `json:"to_pos,omitempty" yaml:"to_pos,omitempty"`
	Kind     string   `json:"kind,omitempty" yaml:"kind,omitempty"`
	Label    string   `json:"label,omitempty" yaml:"label,omitempty"`
}

type wireDiagram struct {
	Name  string     `json:"name,omitempty" yaml:"name,omitempty"`
	Nodes []Node     `json:"nodes" yaml:"nodes"`
	Links []wireLink `json:"links,omitempty" yaml:"links,omitempty"`
}

func (w wireDiagram) diagram() *Diagram {
	d := &Diagram{Name: w.Name, Nodes: w.Nodes}
	for _, wl := range w.Links {
		l := Link{
			From:     wl.From,
			To:       wl.To,
			FromFace: wl.FromFace,
			FromT:    0.5,
			ToFace:   wl.ToFace,
			ToT:      0.5,
			Kind:     wl.Kind,
			Label:    wl.Label,
		}
		if wl.FromT != nil {
			l.FromT = *wl.FromT
		}
		if wl.ToT != nil {
			l.ToT = *wl.ToT
		}
		d.Links = append(d.Links, l)
	}
	return d
}

func (d *Diagram) wire() wireDiagram {
	w := wireDiagram{Name: d.Name, Nodes: d.Nodes}
	for _, l := range d.Links {
		fromT, toT := l.FromT, l.ToT
		w.Links = append(w.Links, wireLink{
			From:     l.From,
			To:       l.To,
			FromFace: l.FromFace,
			FromT:    &fromT,
			ToFace:   l.ToFace,
			ToT:      &toT,
			Kind:     l.Kind,
			Label:    l.Label,
		})
	}
	return w
}

// ParseJSON parses a diagram from JSON. Omitted face positions
// default to 0.5, the middle of the face.
func ParseJSON(data []byte) (*Diagram, error) {
	var w wireDiagram
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("diagram: parse json: %w", err)
	}
	return w.diagram(), nil
}

// ToJSON serializes the diagram to JSON.
func (d *Diagram) ToJSON(pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(d.wire(), "", "  ")
	}
	return json.Marshal(d.wire())
}

// ParseYAML parses a diagram from YAML, with the same defaults as
// ParseJSON.
func ParseYAML(data []byte) (*Diagram, error) {
	var w wireDiagram
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("diagram: parse yaml: %w", err)
	}
	return w.diagram(), nil
}

// ToYAML serializes the diagram to YAML.
func (d *Diagram) ToYAML() ([]byte, error) {
	return yaml.Marshal(d.wire())
}

// ParseFile loads a diagram from disk, dispatching on the file
// extension: .yaml/.yml parse as YAML, everything else as JSON.
func ParseFile(path string) (*Diagram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}
