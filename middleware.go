package toolgate

import (
	"context"
	"log/slog"
	"time"
)

// Middleware wraps a Handler with cross-cutting behavior (logging, timeout).
// It receives the tool name the handler is registered under.
type Middleware func(name string, next Handler) Handler

// WithHandlerLogging returns a middleware that logs start, end, duration,
// and errors of each handler invocation.
func WithHandlerLogging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(name string, next Handler) Handler {
		return func(ctx context.Context, args map[string]any) (map[string]any, error) {
			logger.Info("handler start", "tool", name)
			start := time.Now()
			res, err := next(ctx, args)
			dur := time.Since(start)
			if err != nil {
				logger.Error("handler error", "tool", name, "duration", dur, "error", err)
				return nil, err
			}
			logger.Info("handler end", "tool", name, "duration", dur)
			return res, nil
		}
	}
}

// WithHandlerTimeout returns a middleware that bounds each invocation with a
// per-handler timeout. The Executor itself never applies a timeout; wrapping
// a slow handler is the caller's responsibility, and this middleware is the
// ready-made way to do it. A handler that honors ctx and returns ctx.Err()
// on expiry shows up as a failed call.
func WithHandlerTimeout(d time.Duration) Middleware {
	return func(_ string, next Handler) Handler {
		if d <= 0 {
			return next
		}
		return func(ctx context.Context, args map[string]any) (map[string]any, error) {
			ctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()
			return next(ctx, args)
		}
	}
}

// Use stores the given middlewares and reapplies them from scratch to all
// registered handlers (onion order: first middleware is outermost). Handlers
// registered after Use also get these middlewares. Calling Use again
// replaces the chain and rewraps from raw handlers, avoiding double-wrapping.
func (e *Executor) Use(middlewares ...Middleware) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.middlewares = middlewares
	for name, raw := range e.rawHandlers {
		h := raw
		for i := len(middlewares) - 1; i >= 0; i-- {
			h = middlewares[i](name, h)
		}
		e.handlers[name] = h
	}
}
