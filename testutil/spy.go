// Package testutil provides test helpers for toolgate (e.g. SpyHandler).
package testutil

import (
	"context"
	"sync"

	"github.com/recipewise/toolgate"
)

// SpyHandler is a configurable Handler implementation for tests. It records
// every invocation so tests can assert that gated calls never reach a
// handler.
type SpyHandler struct {
	mu    sync.Mutex
	calls []map[string]any

	// Result and Err are returned from each invocation.
	Result map[string]any
	Err    error
}

// Handler returns the toolgate.Handler backed by this spy.
func (s *SpyHandler) Handler() toolgate.Handler {
	return func(_ context.Context, args map[string]any) (map[string]any, error) {
		s.mu.Lock()
		s.calls = append(s.calls, args)
		s.mu.Unlock()
		return s.Result, s.Err
	}
}

// CallCount returns how many times the handler was invoked.
func (s *SpyHandler) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// LastArgs returns the arguments of the most recent invocation, or nil.
func (s *SpyHandler) LastArgs() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return nil
	}
	return s.calls[len(s.calls)-1]
}
