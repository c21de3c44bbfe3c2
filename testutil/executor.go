package testutil

import (
	"github.com/recipewise/toolgate"
)

// NewTestExecutor returns an Executor with panic recovery enabled and the
// given tool names marked confirmation-required, suitable for tests.
func NewTestExecutor(confirmationRequired ...string) *toolgate.Executor {
	policy := toolgate.NewPolicy().RequireConfirmation(confirmationRequired...)
	return toolgate.NewExecutor(
		toolgate.WithPolicy(policy),
		toolgate.WithRecoverPanics(true),
	)
}

// Raw builds a RawToolCall descriptor, shortening test setup.
func Raw(id, name, args string) toolgate.RawToolCall {
	return toolgate.RawToolCall{
		ID:       id,
		Function: toolgate.RawFunction{Name: name, Arguments: args},
	}
}
