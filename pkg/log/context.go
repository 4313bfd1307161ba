package log

import "context"

// RequestIDKey is the context key carrying the request ID.
type RequestIDKey struct{}

// WithRequestID attaches a request ID that every log line will carry.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey{}, id)
}
