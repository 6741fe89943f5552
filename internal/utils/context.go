// Package utils provides general-purpose helpers used across the relay:
// type-safe context keys, JSON response writing, JSON scalar coercion,
// HTTP client construction, trace id generation and JWT handling.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CallerCtxKey stores the authenticated caller name (the bearer token
// subject) in the request context.
//
//	ctx := context.WithValue(ctx, utils.CallerCtxKey, "tui")
var CallerCtxKey = contextKey("caller")

// GetCallerFromContext retrieves the authenticated caller name.
//
// ok is false when auth is disabled or the value has an unexpected type.
func GetCallerFromContext(ctx context.Context) (string, bool) {
	caller, ok := ctx.Value(CallerCtxKey).(string)
	return caller, ok
}
