package toolgate

import (
	"context"
	"log/slog"
	"time"
)

// ExecutorOption configures an Executor (e.g. WithPolicy, WithLogger).
type ExecutorOption func(*executorOptions)

type executorOptions struct {
	policy        *Policy
	registry      *Registry
	logger        *slog.Logger
	recoverPanics bool
	onBefore      func(context.Context, *ToolCall)
	onAfter       func(context.Context, *ToolCall, map[string]any, error, time.Duration)
}

// WithPolicy sets the classification policy used by Parse. Without it every
// tool is auto-approved.
func WithPolicy(p *Policy) ExecutorOption {
	return func(o *executorOptions) {
		o.policy = p
	}
}

// WithRegistry makes the Executor operate on an existing call Registry
// instead of creating its own. Use this when the surrounding application
// owns the per-session Registry.
func WithRegistry(r *Registry) ExecutorOption {
	return func(o *executorOptions) {
		o.registry = r
	}
}

// WithLogger sets the slog logger for execution start/end/failure records.
// Without it the Executor is silent.
func WithLogger(logger *slog.Logger) ExecutorOption {
	return func(o *executorOptions) {
		o.logger = logger
	}
}

// WithRecoverPanics controls panic recovery in Execute. When enabled
// (the default) a panicking handler is recorded as a failed call instead of
// crashing the chat turn.
func WithRecoverPanics(enable bool) ExecutorOption {
	return func(o *executorOptions) {
		o.recoverPanics = enable
	}
}

// WithOnBeforeExecute sets a hook called right before each handler invocation.
func WithOnBeforeExecute(fn func(context.Context, *ToolCall)) ExecutorOption {
	return func(o *executorOptions) {
		o.onBefore = fn
	}
}

// WithOnAfterExecute sets a hook called after each handler invocation with
// the result mapping, the handler error (nil on success), and the duration.
// This is the audit point: the surrounding application exports metrics or
// audit records from here.
func WithOnAfterExecute(fn func(context.Context, *ToolCall, map[string]any, error, time.Duration)) ExecutorOption {
	return func(o *executorOptions) {
		o.onAfter = fn
	}
}
