// Package toolgate turns an LLM's function-call proposals into gated,
// auditable side effects with a human-in-the-loop confirmation step.
//
// # Overview
//
// LLMs propose tool calls as JSON descriptors. This package parses that
// untrusted output into typed calls, classifies each against a Policy
// (confirmation-required vs read-only), holds gated calls until an explicit
// approve/reject, and dispatches approved calls to registered handlers:
// parse → classify → confirm → execute → executed or failed.
//
// Pipeline: []RawToolCall → Parse (decode + classify + register) → Registry
// (PENDING_CONFIRMATION or APPROVED) → Approve/Reject → Execute (handler
// dispatch) → EXECUTED / FAILED.
//
// # Key concepts
//
//   - Gating: a pending call can never execute; Execute raises
//     ErrConfirmationRequired before any handler is looked up.
//   - Fail-open at parse, fail-closed at execute: a tool name unknown to the
//     Policy parses as approved so it does not block the conversation, but
//     Execute raises ErrUnknownTool for it unless a handler is registered.
//   - Error asymmetry: framework errors (not found, pending, rejected,
//     unknown tool) raise; handler errors become a returned
//     {"success": false, "error": ...} mapping, because one failed tool
//     should not crash the chat turn.
//
// See ToolCall, Status, and Executor for the core types, and NewExecutor /
// NewPolicy for setup.
//
// # Example
//
//	policy := toolgate.NewPolicy().RequireConfirmation("create_recipe")
//	exec := toolgate.NewExecutor(toolgate.WithPolicy(policy))
//	exec.RegisterHandler("create_recipe", func(_ context.Context, args map[string]any) (map[string]any, error) {
//	    return map[string]any{"recipe_id": "r1"}, nil
//	})
//	calls, err := exec.Parse([]toolgate.RawToolCall{{
//	    ID:       "call_1",
//	    Function: toolgate.RawFunction{Name: "create_recipe", Arguments: `{"title": "Soup"}`},
//	}})
//	if err != nil { ... }
//	// ... show exec.Pending() to the user ...
//	if err := exec.Approve("call_1"); err != nil { ... }
//	result, err := exec.Execute(ctx, "call_1")
package toolgate
