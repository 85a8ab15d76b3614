// Package logging defines the structured-logging interface used across the
// finview client. The only implementation ships on top of log/slog, but the
// interface keeps transport, session, and dashboard code decoupled from it.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key–value pairs, e.g.:
//
//	log.Info(ctx, "refresh complete", "status", vm.Status)
type Logger interface {
	// Debug logs fine-grained diagnostics (per-request traces and the like).
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs normal operational events.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
