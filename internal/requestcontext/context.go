// Package requestcontext provides context accessors for per-message values.
//
// The consumer sets the context id (and, on redeliveries, the attempt number)
// when it picks a record off the topic; the processor, API client and logger
// read them back without threading extra parameters through every call. The
// package stays free of Kafka and HTTP dependencies so any layer can import
// it.
package requestcontext

import "context"

type (
	contextIDKey struct{}
	attemptKey   struct{}
)

// ContextID retrieves the delta's context id, the correlation id carried on
// the change-event envelope and forwarded downstream as X-Request-Id.
func ContextID(ctx context.Context) string {
	if id, ok := ctx.Value(contextIDKey{}).(string); ok {
		return id
	}
	return ""
}

// WithContextID injects a context id.
func WithContextID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextIDKey{}, id)
}

// Attempt retrieves the delivery attempt number, zero on first delivery.
func Attempt(ctx context.Context) int {
	if n, ok := ctx.Value(attemptKey{}).(int); ok {
		return n
	}
	return 0
}

// WithAttempt injects the delivery attempt number.
func WithAttempt(ctx context.Context, n int) context.Context {
	return context.WithValue(ctx, attemptKey{}, n)
}
