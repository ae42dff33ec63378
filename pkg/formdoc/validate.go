package formdoc

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

// documentSchema describes the accepted wire shape of a form document. The
// schema is deliberately permissive: unknown properties are allowed so that
// editor-specific metadata (binding ids, extra data bags) survives, while
// structural mistakes (columns as objects, order as string) are rejected
// before the pipeline runs.
const documentSchema = `{
  "type": "object",
  "properties": {
    "sections": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "sectionId": {"type": "string"},
          "order": {"type": "number"},
          "showSection": {"type": "boolean"},
          "sectionTitle": {
            "type": "object",
            "properties": {
              "en": {"type": "string"},
              "es": {"type": "string"}
            }
          },
          "columns": {
            "type": "array",
            "items": {
              "type": "object",
              "properties": {
                "columnId": {"type": "string"},
                "order": {"type": "number"},
                "columnTitle": {
                  "type": "object",
                  "properties": {
                    "en": {"type": "string"},
                    "es": {"type": "string"}
                  }
                },
                "items": {
                  "type": "array",
                  "items": {
                    "type": "object",
                    "properties": {
                      "itemId": {"type": "string"},
                      "type": {"type": "string"},
                      "order": {"type": "number"},
                      "regulation": {"type": "boolean"},
                      "idRegulation": {"type": "string"},
                      "inputSamplePhoto": {"type": "string"},
                      "itemLabel": {
                        "type": "object",
                        "properties": {
                          "en": {"type": "string"},
                          "es": {"type": "string"}
                        }
                      }
                    }
                  }
                }
              }
            }
          }
        }
      }
    }
  }
}`

// Validator checks raw JSON payloads against the form document schema.
type Validator struct {
	once   sync.Once
	schema *openapi3.Schema
	err    error
}

// NewValidator constructs a Validator. Schema compilation is lazy so the
// zero cost falls on the first validation, mirroring how template bundles
// load on demand elsewhere in the module.
func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) load() {
	schema := &openapi3.Schema{}
	if err := schema.UnmarshalJSON([]byte(documentSchema)); err != nil {
		v.err = fmt.Errorf("formdoc: compile document schema: %w", err)
		return
	}
	v.schema = schema
}

// Validate reports whether raw is a structurally valid form document payload.
// Bare section arrays are accepted by wrapping them before validation.
func (v *Validator) Validate(raw []byte) error {
	v.once.Do(v.load)
	if v.err != nil {
		return v.err
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("formdoc: payload is not valid JSON: %w", err)
	}
	if list, ok := value.([]any); ok {
		value = map[string]any{"sections": list}
	}

	if err := v.schema.VisitJSON(value, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("formdoc: payload rejected by schema: %w", err)
	}
	return nil
}
