package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/riks17/Document-OCR/internal/entity"
)

// BuildDocumentJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the field map a rule set may produce. Unknown field
// names are rejected outright; confidences must stay in [0,1].
func BuildDocumentJSONSchema(rs RuleSet) map[string]any {
	fieldProp := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"value":       map[string]any{"type": "string"},
			"confidence":  map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
			"source_page": map[string]any{"type": "integer", "minimum": 0},
			"status": map[string]any{
				"type": "string",
				"enum": []string{
					string(entity.FieldOK),
					string(entity.FieldMissing),
					string(entity.FieldAmbiguous),
					string(entity.FieldInvalid),
				},
			},
		},
		"required":             []string{"confidence", "source_page", "status"},
		"additionalProperties": false,
	}

	props := map[string]any{}
	for _, f := range rs.Fields {
		props[f.Name] = fieldProp
	}
	for _, name := range rs.Derived {
		props[name] = fieldProp
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
