// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// session token generation and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/booknotes/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionUserCtxKey is the key used to store the authenticated session user
// in the context. Used together with GetSessionUserFromContext for type-safe
// retrieval of the session payload from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SessionUserCtxKey, sessionUser)
var SessionUserCtxKey = contextKey("sessionUser")

// GetSessionUserFromContext retrieves the session user from the context.
//
// Returns the session payload and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	sessionUser, ok := utils.GetSessionUserFromContext(ctx)
//	if !ok {
//	    // handle missing session in context
//	}
func GetSessionUserFromContext(ctx context.Context) (models.SessionUser, bool) {
	sessionUser, ok := ctx.Value(SessionUserCtxKey).(models.SessionUser)
	return sessionUser, ok
}

// WithSessionUser returns a copy of ctx carrying the given session user.
func WithSessionUser(ctx context.Context, sessionUser models.SessionUser) context.Context {
	return context.WithValue(ctx, SessionUserCtxKey, sessionUser)
}
