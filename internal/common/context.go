package common

import (
	"context"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyOrderID   contextKey = "order_id"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithOrderID adds an order ID to the context
func WithOrderID(ctx context.Context, orderID string) context.Context {
	return context.WithValue(ctx, ContextKeyOrderID, orderID)
}

// OrderIDFromContext extracts the order ID from context
func OrderIDFromContext(ctx context.Context) string {
	if orderID, ok := ctx.Value(ContextKeyOrderID).(string); ok {
		return orderID
	}
	return ""
}
