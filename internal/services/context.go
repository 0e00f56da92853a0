package services

import "context"

type contextKey int

const (
	leadIDKey contextKey = iota
	requestIDKey
)

// WithLeadID stores a lead identifier on the context for logging.
func WithLeadID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, leadIDKey, id)
}

// LeadIDFromContext extracts a lead identifier previously stored with WithLeadID.
func LeadIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(leadIDKey).(int64)
	return id, ok
}

// WithRequestID stores a request correlation identifier on the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts a correlation identifier previously stored
// with WithRequestID.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok && id != ""
}
