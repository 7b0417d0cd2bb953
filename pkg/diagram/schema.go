package diagram

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// diagramSchema is the JSON Schema for diagram documents. It mirrors
// Validate but catches shape errors (wrong types, missing fields)
// before unmarshalling ever runs, which gives file authors usable
// messages.
const diagramSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "arclink diagram",
  "type": "object",
  "required": ["nodes"],
  "properties": {
    "name": {"type": "string"},
    "nodes": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "x", "y", "width", "height"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "label": {"type": "string"},
          "x": {"type": "number"},
          "y": {"type": "number"},
          "width": {"type": "number", "exclusiveMinimum": 0},
          "height": {"type": "number", "exclusiveMinimum": 0}
        }
      }
    },
    "links": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["from", "to"],
        "properties": {
          "from": {"type": "string", "minLength": 1},
          "to": {"type": "string", "minLength": 1},
          "from_face": {"enum": ["top", "right", "bottom", "left"]},
          "to_face": {"enum": ["top", "right", "bottom", "left"]},
          "from_pos": {"type": "number"},
          "to_pos": {"type": "number"},
          "kind": {"type": "string"},
          "label": {"type": "string"}
        }
      }
    }
  }
}`

// ValidateSchema checks a raw JSON document against the diagram
// schema and reports every violation in one error.
func ValidateSchema(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(diagramSchema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("diagram: schema validation: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("diagram: document does not match schema: %s",
			strings.Join(msgs, "; "))
	}
	return nil
}
