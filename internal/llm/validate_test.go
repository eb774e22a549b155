package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var personSchema = &Schema{
	Name: "test-person",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"name"},
		"properties": map[string]any{
			"name": map[string]any{"type": "string", "minLength": 1},
			"age":  map[string]any{"type": "integer", "minimum": 0},
		},
	},
}

func TestValidateNilSchemaPasses(t *testing.T) {
	if err := Validate(nil, json.RawMessage(`not even json`)); err != nil {
		t.Errorf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateConformingDocument(t *testing.T) {
	if err := Validate(personSchema, json.RawMessage(`{"name": "Ada", "age": 36}`)); err != nil {
		t.Errorf("conforming document rejected: %v", err)
	}
}

func TestValidateMissingRequiredField(t *testing.T) {
	err := Validate(personSchema, json.RawMessage(`{"age": 36}`))

	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
	if string(invalid.Content) != `{"age": 36}` {
		t.Errorf("error should carry the offending content")
	}
}

func TestValidateWrongType(t *testing.T) {
	err := Validate(personSchema, json.RawMessage(`{"name": "Ada", "age": "old"}`))

	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateMalformedJSON(t *testing.T) {
	err := Validate(personSchema, json.RawMessage(`{"name": `))

	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateCachesCompiledSchema(t *testing.T) {
	doc := json.RawMessage(`{"name": "Ada"}`)
	if err := Validate(personSchema, doc); err != nil {
		t.Fatal(err)
	}
	if _, ok := schemaCache.Load(personSchema.Name); !ok {
		t.Error("compiled schema should be cached by name")
	}
	// Second call hits the cache.
	if err := Validate(personSchema, doc); err != nil {
		t.Fatal(err)
	}
}
