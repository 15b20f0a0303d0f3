package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// recordSchema pairs a schema name with its JSON Schema definition.
type recordSchema struct {
	Name       string
	Definition map[string]any
}

// abQuestionSchema enforces the AB generation contract: exactly the four
// string keys, all non-empty.
var abQuestionSchema = &recordSchema{
	Name: "ab-question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"scenario":      map[string]any{"type": "string", "minLength": 1},
			"weak_prompt":   map[string]any{"type": "string", "minLength": 1},
			"strong_prompt": map[string]any{"type": "string", "minLength": 1},
			"explanation":   map[string]any{"type": "string", "minLength": 1},
		},
		"required":             []any{"scenario", "weak_prompt", "strong_prompt", "explanation"},
		"additionalProperties": false,
	},
}

// challengeSchema enforces the challenge contract. The template asks for
// exactly 4 key elements but the schema deliberately accepts 1-6: a
// near-miss response is still renderable and better than a fallback.
var challengeSchema = &recordSchema{
	Name: "challenge",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":        map[string]any{"type": "string", "minLength": 1},
			"scenario":     map[string]any{"type": "string", "minLength": 1},
			"ideal_prompt": map[string]any{"type": "string", "minLength": 1},
			"key_elements": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 1,
				"maxItems": 6,
			},
		},
		"required":             []any{"title", "scenario", "ideal_prompt", "key_elements"},
		"additionalProperties": false,
	},
}

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateRecord checks parsed JSON against the given record schema.
func validateRecord(schema *recordSchema, parsed any) error {
	compiled, err := getCompiledSchema(schema)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(schema *recordSchema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	// Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
