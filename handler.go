package toolgate

import (
	"context"
	"encoding/json"
	"fmt"
)

// NewHandler builds a Handler from a typed function. The call's decoded
// arguments are validated against the JSON Schema generated for T (the same
// schema SchemaFor exports to the LLM), bound onto T, run through
// Validatable if T implements it, and passed to fn. Any failure along the
// way is a handler error: Execute records it as a failed call rather than
// raising.
//
// Returns an error if schema generation fails (e.g. unsupported type).
func NewHandler[T any](fn func(ctx context.Context, args T) (map[string]any, error)) (Handler, error) {
	schemaMap, err := SchemaFor[T](false)
	if err != nil {
		return nil, err
	}
	compiled, err := compileRawSchema(schemaMap)
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, args map[string]any) (map[string]any, error) {
		data, err := json.Marshal(args)
		if err != nil {
			return nil, fmt.Errorf("encode arguments: %w", err)
		}
		if err := validateAgainstSchema(compiled, data); err != nil {
			return nil, err
		}
		var typed T
		if err := json.Unmarshal(data, &typed); err != nil {
			return nil, fmt.Errorf("bind arguments: %w", err)
		}
		if err := runCustomValidation(typed); err != nil {
			return nil, err
		}
		return fn(ctx, typed)
	}, nil
}

// NewHandlerWithSchema wraps a Handler with validation against a
// caller-supplied raw JSON Schema map. Useful when the schema comes from
// runtime configuration rather than a Go struct. The provided map is not
// mutated.
func NewHandlerWithSchema(schemaMap map[string]any, h Handler) (Handler, error) {
	if schemaMap == nil {
		return nil, fmt.Errorf("schema map must not be nil")
	}
	if h == nil {
		return nil, fmt.Errorf("handler must not be nil")
	}
	// Deep copy before stripping $id so the caller's map is never mutated.
	data, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("copy schema map: %w", err)
	}
	var schemaCopy map[string]any
	if err := json.Unmarshal(data, &schemaCopy); err != nil {
		return nil, fmt.Errorf("copy schema map: %w", err)
	}
	stripSchemaIDs(schemaCopy)
	compiled, err := compileRawSchema(schemaCopy)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return func(ctx context.Context, args map[string]any) (map[string]any, error) {
		data, err := json.Marshal(args)
		if err != nil {
			return nil, fmt.Errorf("encode arguments: %w", err)
		}
		if err := validateAgainstSchema(compiled, data); err != nil {
			return nil, err
		}
		return h(ctx, args)
	}, nil
}
