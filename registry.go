package toolgate

import "sync"

// Registry is the single source of truth for tool-call status within one
// logical session (e.g. one user's chat session). It is entirely in-memory
// and single-process; construct one per session and pass it by reference,
// never share a package-level instance across sessions.
type Registry struct {
	mu    sync.RWMutex
	calls map[string]*ToolCall
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{calls: make(map[string]*ToolCall)}
}

// Upsert stores or replaces the record keyed by call.ID. Re-registering a
// previously seen id overwrites the prior record (last write wins): one LLM
// turn supersedes replayed state. This is documented behavior, not a bug.
func (r *Registry) Upsert(call *ToolCall) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls[call.ID] = call
}

// Get returns the call with the given id, or (nil, false).
func (r *Registry) Get(id string) (*ToolCall, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.calls[id]
	return c, ok
}

// Pending returns a snapshot of all calls with StatusPendingConfirmation.
// Order is unspecified.
func (r *Registry) Pending() []*ToolCall {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*ToolCall, 0)
	for _, c := range r.calls {
		if c.Status == StatusPendingConfirmation {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of registered calls.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.calls)
}

// Clear empties the table; used to reset a session.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.calls)
}

// setStatus mutates the status of the call with the given id.
// Returns ErrCallNotFound if the id is absent.
func (r *Registry) setStatus(id string, s Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.calls[id]
	if !ok {
		return ErrCallNotFound
	}
	c.Status = s
	return nil
}
