package design

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidDocument indicates an input document failed schema validation.
var ErrInvalidDocument = errors.New("invalid design document")

// documentSchema is the JSON Schema for on-disk design-tree documents.
// Validation runs before decoding so malformed fixtures fail with a field
// path instead of a zero-valued tree.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "$ref": "#/definitions/node",
  "definitions": {
    "node": {
      "type": "object",
      "required": ["name", "kind"],
      "additionalProperties": false,
      "properties": {
        "name": {"type": "string"},
        "kind": {
          "type": "string",
          "enum": [
            "FRAME", "GROUP", "COMPONENT", "COMPONENT_SET", "INSTANCE",
            "TEXT", "VECTOR", "RECTANGLE", "ELLIPSE", "LINE",
            "BOOLEAN_OPERATION", "SECTION"
          ]
        },
        "children": {"type": "array", "items": {"$ref": "#/definitions/node"}},
        "layoutAxis": {"type": "string", "enum": ["NONE", "HORIZONTAL", "VERTICAL"]},
        "size": {
          "type": "object",
          "required": ["w", "h"],
          "additionalProperties": false,
          "properties": {
            "w": {"type": "number", "minimum": 0},
            "h": {"type": "number", "minimum": 0}
          }
        },
        "visible": {"type": "boolean"},
        "opacity": {"type": "number", "minimum": 0, "maximum": 1},
        "textContent": {"type": "string"}
      }
    }
  }
}`

// ValidateDocument checks raw JSON against the design-tree document schema.
// Returns ErrInvalidDocument (wrapped with the first few violations) when the
// document does not conform.
func ValidateDocument(raw []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(documentSchema)
	docLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("validate design document: %w", err)
	}

	if result.Valid() {
		return nil
	}

	const maxReported = 5

	msgs := make([]string, 0, maxReported)

	for i, desc := range result.Errors() {
		if i >= maxReported {
			break
		}

		msgs = append(msgs, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}

// nodeJSON mirrors Node with optional presence for fields that carry
// non-zero defaults (visible, opacity).
type nodeJSON struct {
	Name        string      `json:"name"`
	Kind        Kind        `json:"kind"`
	Children    []*nodeJSON `json:"children,omitempty"`
	LayoutAxis  LayoutAxis  `json:"layoutAxis,omitempty"`
	Size        *Size       `json:"size,omitempty"`
	Visible     *bool       `json:"visible,omitempty"`
	Opacity     *float64    `json:"opacity,omitempty"`
	TextContent string      `json:"textContent,omitempty"`
}

func (raw *nodeJSON) toNode() *Node {
	n := &Node{
		Name:        raw.Name,
		Kind:        raw.Kind,
		LayoutAxis:  raw.LayoutAxis,
		Size:        raw.Size,
		Visible:     true,
		Opacity:     1,
		TextContent: raw.TextContent,
	}

	if raw.Visible != nil {
		n.Visible = *raw.Visible
	}

	if raw.Opacity != nil {
		n.Opacity = *raw.Opacity
	}

	if len(raw.Children) > 0 {
		n.Children = make([]*Node, 0, len(raw.Children))
		for _, child := range raw.Children {
			n.Children = append(n.Children, child.toNode())
		}
	}

	return n
}

// Decode validates and decodes one design-tree document from r.
func Decode(r io.Reader) (*Node, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read design document: %w", err)
	}

	return DecodeBytes(raw)
}

// DecodeBytes validates and decodes one design-tree document.
func DecodeBytes(raw []byte) (*Node, error) {
	err := ValidateDocument(raw)
	if err != nil {
		return nil, err
	}

	var doc nodeJSON

	err = json.Unmarshal(raw, &doc)
	if err != nil {
		return nil, fmt.Errorf("decode design document: %w", err)
	}

	return doc.toNode(), nil
}
