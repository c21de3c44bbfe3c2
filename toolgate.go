package toolgate

import "context"

// Status is the lifecycle state of a ToolCall. The set is closed: a call is
// born pending or approved (depending on Policy), is gated through
// approve/reject, and ends as executed or failed.
type Status string

const (
	StatusPendingConfirmation Status = "pending_confirmation"
	StatusApproved            Status = "approved"
	StatusRejected            Status = "rejected"
	StatusExecuted            Status = "executed"
	StatusFailed              Status = "failed"
)

// RawToolCall is one tool-call descriptor exactly as emitted by an LLM's
// function-calling feature (OpenAI wire shape). Arguments is a JSON-encoded
// object, not yet decoded.
type RawToolCall struct {
	ID       string      `json:"id"`
	Function RawFunction `json:"function"`
}

// RawFunction is the function part of a RawToolCall.
type RawFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ToolCall is a registered, decoded tool call. ID is supplied by the LLM
// response and is immutable; Status is the only field mutated after creation.
type ToolCall struct {
	ID        string
	Name      string
	Arguments map[string]any
	Status    Status
}

// CallView is the transport-safe projection of a ToolCall, e.g. for sending
// pending calls to a confirmation UI.
type CallView struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
	Status    string         `json:"status"`
}

// View returns the transport-safe projection of the call. The arguments map
// is shared, not copied; callers must not mutate it.
func (c *ToolCall) View() CallView {
	return CallView{
		ID:        c.ID,
		Name:      c.Name,
		Arguments: c.Arguments,
		Status:    string(c.Status),
	}
}

// Handler performs the real side effect behind a tool name (e.g. writing a
// recipe). It receives the call's decoded arguments and returns a
// JSON-compatible result mapping, or an error. Errors (and panics, when
// recovery is enabled) are caught by Execute and turned into a
// {"success": false, "error": ...} result; they never propagate to the
// caller of Execute.
type Handler func(ctx context.Context, args map[string]any) (map[string]any, error)
