package appctx

import (
	"context"
)

// Context key for storing the authorized caller
type contextKey string

const CallerContextKey contextKey = "caller"

// Caller identifies the authorized administrator behind a request
type Caller struct {
	Name string
}

// SetCaller adds the authorized caller to the request context
func SetCaller(ctx context.Context, caller *Caller) context.Context {
	return context.WithValue(ctx, CallerContextKey, caller)
}

// GetCaller extracts the authorized caller from the request context
func GetCaller(ctx context.Context) (*Caller, bool) {
	caller, ok := ctx.Value(CallerContextKey).(*Caller)
	return caller, ok
}
