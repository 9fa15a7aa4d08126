package document

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// DocumentSchema is the JSON Schema a persisted graph document must satisfy
// structurally, ahead of the stricter field-by-field decode Parse performs.
// A host accepting documents from an untrusted source (an upload, an HTTP
// body) can run ValidateSchema first to collect every structural complaint
// at once, rather than Parse's fail-on-first-error decode.
const DocumentSchema = `{
  "type": "object",
  "required": ["nodes", "edges"],
  "properties": {
    "nodes": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["index", "function_name"],
        "properties": {
          "index": {"type": "integer"},
          "function_name": {"type": "string", "minLength": 1},
          "behavior": {"type": "string", "enum": ["", "Passive", "Active"]}
        }
      }
    },
    "edges": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["index", "src_node", "src_output", "dst_node", "dst_input"],
        "properties": {
          "index": {"type": "integer"},
          "src_node": {"type": "integer"},
          "src_output": {"type": "integer"},
          "dst_node": {"type": "integer"},
          "dst_input": {"type": "integer"},
          "behavior": {"type": "string", "enum": ["", "Always", "Once"]}
        }
      }
    }
  }
}`

// ValidationError describes a single JSON Schema violation.
type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// ValidateSchema checks data against schema (typically DocumentSchema) and
// returns every violation found. A nil, empty slice return means data is
// structurally valid; it does not imply Parse will succeed, since Parse also
// enforces referential integrity (ErrDanglingEdge) and registry membership
// (types.ErrUnknownFunction) that a JSON Schema cannot express.
func ValidateSchema(data []byte, schema string) ([]ValidationError, error) {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("document: schema validation failed: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}

	violations := make([]ValidationError, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		violations = append(violations, ValidationError{Field: e.Field(), Description: e.Description()})
	}
	return violations, nil
}

// ValidateDocumentSchema validates a raw value (already unmarshaled, e.g.
// from an HTTP request body) against DocumentSchema by round-tripping it
// through json.Marshal first.
func ValidateDocumentSchema(v interface{}) ([]ValidationError, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("document: failed to marshal value for validation: %w", err)
	}
	return ValidateSchema(data, DocumentSchema)
}
