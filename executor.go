package toolgate

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// Executor turns an LLM's function-call proposals into gated, auditable side
// effects. It owns the handler table and (unless one is supplied via
// WithRegistry) the per-session call Registry.
//
// Lifecycle of a call: Parse registers it as pending or approved per Policy;
// Approve/Reject gate pending calls; Execute dispatches approved calls to
// their handler and finalizes the status as executed or failed.
type Executor struct {
	calls *Registry
	opts  executorOptions

	mu          sync.Mutex
	handlers    map[string]Handler // wrapped with middlewares, used by Execute
	rawHandlers map[string]Handler // unwrapped, used by Use() to re-apply middlewares from scratch
	middlewares []Middleware
}

// NewExecutor creates an Executor with the given options.
func NewExecutor(opts ...ExecutorOption) *Executor {
	o := executorOptions{
		recoverPanics: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.policy == nil {
		o.policy = NewPolicy()
	}
	if o.registry == nil {
		o.registry = NewRegistry()
	}
	return &Executor{
		calls:       o.registry,
		opts:        o,
		handlers:    make(map[string]Handler),
		rawHandlers: make(map[string]Handler),
	}
}

// RegisterHandler adds the handler backing a tool name. Stored middlewares
// (see Use) are applied before registration. Registering the same name again
// replaces the previous handler. Expected to be called once at startup by the
// surrounding application, but safe for concurrent use.
func (e *Executor) RegisterHandler(name string, h Handler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rawHandlers[name] = h
	for i := len(e.middlewares) - 1; i >= 0; i-- {
		h = e.middlewares[i](name, h)
	}
	e.handlers[name] = h
}

// handler returns the (wrapped) handler for a tool name.
func (e *Executor) handler(name string) (Handler, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	h, ok := e.handlers[name]
	return h, ok
}

// Approve marks a pending call as approved. Approving an already-approved or
// terminal call is allowed and idempotent: the only actor invoking this is a
// trusted confirmation UI. Never invokes a handler.
func (e *Executor) Approve(id string) error {
	if err := e.calls.setStatus(id, StatusApproved); err != nil {
		return fmt.Errorf("approve %q: %w", id, err)
	}
	return nil
}

// Reject marks a call as rejected. Same lookup contract as Approve.
func (e *Executor) Reject(id string) error {
	if err := e.calls.setStatus(id, StatusRejected); err != nil {
		return fmt.Errorf("reject %q: %w", id, err)
	}
	return nil
}

// Execute dispatches an approved call to its registered handler.
//
// Framework errors raise: ErrCallNotFound for an unknown id,
// ErrConfirmationRequired for a pending call (the core safety property:
// ungated calls never execute), ErrCallRejected for a rejected one, and
// ErrUnknownTool when no handler backs the tool name.
//
// Handler errors do not raise: the call is marked StatusFailed and Execute
// returns {"success": false, "error": <message>} with a nil error, because a
// failed recipe edit should not crash the chat turn. On success the call is
// marked StatusExecuted and the handler's result mapping is returned
// unchanged.
//
// Concurrent Execute on the same id is a caller error: the handler may run
// twice and the final status write is last-write-wins. Callers are expected
// to serialize execution per call id.
func (e *Executor) Execute(ctx context.Context, id string) (map[string]any, error) {
	call, ok := e.calls.Get(id)
	if !ok {
		return nil, fmt.Errorf("execute %q: %w", id, ErrCallNotFound)
	}
	switch call.Status {
	case StatusPendingConfirmation:
		return nil, fmt.Errorf("execute %q: %w", id, ErrConfirmationRequired)
	case StatusRejected:
		return nil, fmt.Errorf("execute %q: %w", id, ErrCallRejected)
	}
	h, ok := e.handler(call.Name)
	if !ok {
		return nil, fmt.Errorf("execute %q: tool %q: %w", id, call.Name, ErrUnknownTool)
	}

	e.opts.logger.Info("tool start", "tool", call.Name, "call_id", call.ID)
	if e.opts.onBefore != nil {
		e.opts.onBefore(ctx, call)
	}
	start := time.Now()
	result, herr := e.invoke(ctx, h, call.Arguments)
	dur := time.Since(start)
	if herr != nil {
		// The call may have been cleared mid-flight; the result is still returned.
		_ = e.calls.setStatus(id, StatusFailed)
		result = map[string]any{"success": false, "error": herr.Error()}
		e.opts.logger.Error("tool failed", "tool", call.Name, "call_id", call.ID, "duration", dur, "error", herr)
	} else {
		_ = e.calls.setStatus(id, StatusExecuted)
		e.opts.logger.Info("tool end", "tool", call.Name, "call_id", call.ID, "duration", dur)
	}
	if e.opts.onAfter != nil {
		e.opts.onAfter(ctx, call, result, herr, dur)
	}
	return result, nil
}

// invoke runs the handler, optionally converting a panic into a handler error.
func (e *Executor) invoke(ctx context.Context, h Handler, args map[string]any) (result map[string]any, err error) {
	if e.opts.recoverPanics {
		defer func() {
			if p := recover(); p != nil {
				result = nil
				err = &panicError{p: p}
			}
		}()
	}
	return h(ctx, args)
}

// Call returns the registered call with the given id, or (nil, false).
func (e *Executor) Call(id string) (*ToolCall, bool) {
	return e.calls.Get(id)
}

// Pending returns a snapshot of all calls awaiting confirmation.
func (e *Executor) Pending() []*ToolCall {
	return e.calls.Pending()
}

// Clear wipes the call Registry; used to reset a session. Registered
// handlers are kept.
func (e *Executor) Clear() {
	e.calls.Clear()
}
