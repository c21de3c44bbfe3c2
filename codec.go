package toolgate

import "encoding/json"

// decodeArguments decodes a tool call's raw argument payload into a map.
// The payload must be a JSON object; anything else (invalid JSON, or a valid
// JSON array/scalar) is a *DecodeError carrying the call id. An empty payload
// is treated as "{}" since some providers omit arguments for zero-argument
// tools.
func decodeArguments(callID, raw string) (map[string]any, error) {
	if raw == "" {
		return map[string]any{}, nil
	}
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, &DecodeError{CallID: callID, Err: err}
	}
	args, ok := v.(map[string]any)
	if !ok {
		return nil, &DecodeError{CallID: callID, Err: ErrArgumentDecode}
	}
	return args, nil
}
