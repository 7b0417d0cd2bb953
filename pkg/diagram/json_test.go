package diagram

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleJSON = `{
  "name": "demo",
  "nodes": [
    {"id": "a", "label": "Start", "x": 0, "y": 0, "width": 50, "height": 30},
    {"id": "b", "label": "End", "x": 200, "y": 100, "width": 50, "height": 30}
  ],
  "links": [
    {"from": "a", "to": "b", "from_face": "right", "to_face": "left", "label": "go"}
  ]
}`

func TestParseJSON(t *testing.T) {
	d, err := ParseJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}

	if d.Name != "demo" {
		t.Errorf("name = %q, want %q", d.Name, "demo")
	}
	if len(d.Nodes) != 2 || len(d.Links) != 1 {
		t.Fatalf("got %d nodes / %d links, want 2 / 1", len(d.Nodes), len(d.Links))
	}

	// Omitted positions default to the face midpoint.
	l := d.Links[0]
	if l.FromT != 0.5 || l.ToT != 0.5 {
		t.Errorf("default positions = %v/%v, want 0.5/0.5", l.FromT, l.ToT)
	}
	if l.FromFace != FaceRight || l.ToFace != FaceLeft {
		t.Errorf("faces = %q/%q, want right/left", l.FromFace, l.ToFace)
	}
}

func TestParseJSONExplicitZeroPos(t *testing.T) {
	d, err := ParseJSON([]byte(`{
		"nodes": [
			{"id": "a", "x": 0, "y": 0, "width": 10, "height": 10},
			{"id": "b", "x": 50, "y": 0, "width": 10, "height": 10}
		],
		"links": [{"from": "a", "to": "b", "from_pos": 0, "to_pos": 1}]
	}`))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if d.Links[0].FromT != 0 || d.Links[0].ToT != 1 {
		t.Errorf("explicit positions = %v/%v, want 0/1", d.Links[0].FromT, d.Links[0].ToT)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	orig, err := ParseJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}

	data, err := orig.ToJSON(true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	again, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}

	if diff := cmp.Diff(orig, again); diff != "" {
		t.Errorf("round trip mismatch (-orig +again):\n%s", diff)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	yamlDoc := []byte(`
name: demo
nodes:
  - id: a
    x: 0
    y: 0
    width: 50
    height: 30
  - id: b
    x: 200
    y: 100
    width: 50
    height: 30
links:
  - from: a
    to: b
    from_face: bottom
    to_face: top
    kind: straight
`)

	d, err := ParseYAML(yamlDoc)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if d.Links[0].FromFace != FaceBottom || d.Links[0].Kind != "straight" {
		t.Errorf("parsed link = %+v", d.Links[0])
	}

	out, err := d.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML failed: %v", err)
	}
	again, err := ParseYAML(out)
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	if diff := cmp.Diff(d, again); diff != "" {
		t.Errorf("round trip mismatch (-orig +again):\n%s", diff)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "d.json")
	if err := os.WriteFile(jsonPath, []byte(sampleJSON), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseFile(jsonPath); err != nil {
		t.Errorf("ParseFile(json) failed: %v", err)
	}

	yamlPath := filepath.Join(dir, "d.yaml")
	if err := os.WriteFile(yamlPath, []byte("nodes:\n  - id: a\n    x: 0\n    y: 0\n    width: 10\n    height: 10\n"), 0644); err != nil {
		t.Fatal(err)
	}
	d, err := ParseFile(yamlPath)
	if err != nil {
		t.Fatalf("ParseFile(yaml) failed: %v", err)
	}
	if len(d.Nodes) != 1 || d.Nodes[0].ID != "a" {
		t.Errorf("yaml diagram = %+v", d)
	}

	if _, err := ParseFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
