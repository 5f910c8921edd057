package observability

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

type contextKey string

const (
	traceIDBytes = 16 // OpenTelemetry trace ID size in bytes
	spanIDBytes  = 8  // OpenTelemetry span ID size in bytes
)

// Context keys, in the order FromContext adds them to log lines.
const (
	TraceIDKey   contextKey = "trace_id"
	SpanIDKey    contextKey = "span_id"
	RequestIDKey contextKey = "request_id"

	// OperationKey names the assistant operation being served (chat,
	// intent, recipe, ...).
	OperationKey contextKey = "operation"

	ProviderKey contextKey = "provider"
	ModelKey    contextKey = "model"
)

var loggedKeys = []contextKey{TraceIDKey, SpanIDKey, RequestIDKey, OperationKey, ProviderKey, ModelKey}

// WithTraceID injects trace ID into context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// WithSpanID injects span ID into context.
func WithSpanID(ctx context.Context, spanID string) context.Context {
	return context.WithValue(ctx, SpanIDKey, spanID)
}

// WithRequestID injects request ID into context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithOperation tags the context with the operation being served. An
// operation already set by an outer caller is kept.
func WithOperation(ctx context.Context, operation string) context.Context {
	if GetOperation(ctx) != "" {
		return ctx
	}
	return context.WithValue(ctx, OperationKey, operation)
}

// WithProvider injects provider name into context.
func WithProvider(ctx context.Context, provider string) context.Context {
	return context.WithValue(ctx, ProviderKey, provider)
}

// WithModel injects model name into context.
func WithModel(ctx context.Context, model string) context.Context {
	return context.WithValue(ctx, ModelKey, model)
}

func GetTraceID(ctx context.Context) string   { return stringValue(ctx, TraceIDKey) }
func GetSpanID(ctx context.Context) string    { return stringValue(ctx, SpanIDKey) }
func GetRequestID(ctx context.Context) string { return stringValue(ctx, RequestIDKey) }
func GetOperation(ctx context.Context) string { return stringValue(ctx, OperationKey) }
func GetProvider(ctx context.Context) string  { return stringValue(ctx, ProviderKey) }
func GetModel(ctx context.Context) string     { return stringValue(ctx, ModelKey) }

func stringValue(ctx context.Context, key contextKey) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}

// GenerateTraceID generates an OpenTelemetry-compatible trace ID (32 hex chars).
func GenerateTraceID() string {
	return randomHex(traceIDBytes)
}

// GenerateSpanID generates an OpenTelemetry-compatible span ID (16 hex chars).
func GenerateSpanID() string {
	return randomHex(spanIDBytes)
}

// GenerateRequestID generates a unique request identifier (UUID).
func GenerateRequestID() string {
	return uuid.NewString()
}

// randomHex falls back to the hex digits of a UUID when the system source
// of randomness fails.
func randomHex(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		id := uuid.New()
		return hex.EncodeToString(append(id[:], id[:]...)[:n])
	}
	return hex.EncodeToString(buf)
}
