// Package schema checks decoded selfpath.yml documents against the JSON schema
// generated from the config types.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const resourceName = "selfpath.schema.json"

// FieldError is one violated constraint. Pointer is the JSON pointer of the
// offending value ("/" for the document itself).
type FieldError struct {
	Pointer string
	Message string
}

// ValidationError lists every violated constraint, ordered by pointer.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	lines := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		lines[i] = fmt.Sprintf("- %s: %s", f.Pointer, f.Message)
	}
	return "schema validation failed:\n" + strings.Join(lines, "\n")
}

// Pointers returns the pointer of each field error.
func (e *ValidationError) Pointers() []string {
	out := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		out[i] = f.Pointer
	}
	return out
}

// Validator holds a compiled schema. It is safe for concurrent use.
type Validator struct {
	compiled *jsonschema.Schema
}

// NewValidator compiles schemaJSON.
func NewValidator(schemaJSON []byte) (*Validator, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(resourceName, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("load %s: %w", resourceName, err)
	}
	compiled, err := c.Compile(resourceName)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", resourceName, err)
	}
	return &Validator{compiled: compiled}, nil
}

// Validate checks doc, which may come from YAML or TOML. Violations are
// returned as *ValidationError.
func (v *Validator) Validate(doc interface{}) error {
	normalized, err := normalize(doc)
	if err != nil {
		return err
	}

	err = v.compiled.Validate(normalized)
	if err == nil {
		return nil
	}
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("validate: %w", err)
	}

	result := &ValidationError{}
	leaves(verr, func(e *jsonschema.ValidationError) {
		pointer := e.InstanceLocation
		if pointer == "" {
			pointer = "/"
		}
		result.Fields = append(result.Fields, FieldError{Pointer: pointer, Message: e.Message})
	})
	sort.SliceStable(result.Fields, func(i, j int) bool {
		return result.Fields[i].Pointer < result.Fields[j].Pointer
	})
	return result
}

// normalize maps YAML and TOML scalars (int64, uint64, time values, etc.) onto
// the JSON types the validator understands.
func normalize(doc interface{}) (interface{}, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var out interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return out, nil
}

// leaves calls fn for each error without causes; those carry the concrete message.
func leaves(e *jsonschema.ValidationError, fn func(*jsonschema.ValidationError)) {
	if len(e.Causes) == 0 {
		fn(e)
		return
	}
	for _, cause := range e.Causes {
		leaves(cause, fn)
	}
}
