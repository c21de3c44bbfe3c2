package toolgate

import (
	"errors"
	"fmt"
)

// Sentinel errors for toolgate. Use errors.Is to check.
//
// The first four are framework errors raised by Execute/Approve/Reject:
// they signal caller misuse or a deployment bug and are always surfaced.
// Handler errors are never raised; Execute converts them into a
// {"success": false, "error": ...} result.
var (
	ErrCallNotFound         = errors.New("tool call not found")
	ErrConfirmationRequired = errors.New("tool call awaits confirmation")
	ErrCallRejected         = errors.New("tool call was rejected")
	ErrUnknownTool          = errors.New("no handler registered for tool")
	ErrMalformedCall        = errors.New("malformed tool call")
	ErrArgumentDecode       = errors.New("tool call arguments are not a JSON object")
	ErrValidation           = errors.New("validation failed")
)

// MalformedCallError is raised by Parse when a descriptor is missing a
// required field or its argument payload cannot be decoded. It aborts the
// whole batch: a partially-parsed turn is worse than a rejected one.
// Err wraps ErrMalformedCall (and, for decode failures, the DecodeError)
// for errors.Is/errors.As.
type MalformedCallError struct {
	CallID string // may be empty when the id itself is missing
	Field  string // the missing field, if any ("id", "function.name")
	Err    error
}

func (e *MalformedCallError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed tool call %q: missing %s", e.CallID, e.Field)
	}
	return fmt.Sprintf("malformed tool call %q: %v", e.CallID, e.Err)
}

// Unwrap supports errors.Is/errors.As on wrapped chains (e.g. reaching the
// underlying DecodeError).
func (e *MalformedCallError) Unwrap() error { return e.Err }

// Is reports ErrMalformedCall so errors.Is works regardless of the wrapped cause.
func (e *MalformedCallError) Is(target error) bool { return target == ErrMalformedCall }

// DecodeError reports an argument payload that is not valid JSON or not a
// JSON object. It carries the offending call id and the parse diagnostic.
type DecodeError struct {
	CallID string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode arguments of call %q: %v", e.CallID, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsMalformedCallError returns true if err is or wraps a MalformedCallError.
func IsMalformedCallError(err error) bool {
	var me *MalformedCallError
	return errors.As(err, &me)
}

// IsDecodeError returns true if err is or wraps a DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// panicError wraps a recovered panic value so Execute can stringify it into
// the failure result.
type panicError struct{ p any }

func (e *panicError) Error() string {
	return "panic: " + fmt.Sprint(e.p)
}
