package toolgate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Validatable is implemented by argument structs that need custom business
// validation. Called after schema validation and unmarshaling. A validation
// failure is a handler error: the call ends up StatusFailed, not raised.
type Validatable interface {
	Validate() error
}

// compileRawSchema compiles a raw JSON Schema map into a validator.
// The map is not mutated.
func compileRawSchema(schemaMap map[string]any) (*jsonschema.Schema, error) {
	data, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", doc); err != nil {
		return nil, err
	}
	return c.Compile("schema.json")
}

// validateAgainstSchema validates the JSON-encoded arguments against a
// compiled schema. The instance is re-decoded with the validator's own JSON
// reader so numbers keep full precision.
func validateAgainstSchema(compiled *jsonschema.Schema, argsJSON []byte) error {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(argsJSON))
	if err != nil {
		return err
	}
	if err := compiled.Validate(inst); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// validateCustom runs Validatable.Validate() if args implements it.
func validateCustom(args any) error {
	if v, ok := args.(Validatable); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}
	return nil
}

// runCustomValidation runs Validatable on args; if args does not implement
// it, it tries &args for value types (pointer receiver). Never calls
// Validate twice for the same receiver.
func runCustomValidation[T any](args T) error {
	if err := validateCustom(any(args)); err != nil {
		return err
	}
	if _, ok := any(args).(Validatable); ok {
		return nil
	}
	typ := reflect.TypeOf(args)
	if typ == nil || typ.Kind() == reflect.Pointer {
		return nil
	}
	return validateCustom(any(&args))
}
