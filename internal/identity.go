package internal

import (
	"context"
)

type userKey struct{}

// WithUser returns a copy of ctx carrying the authenticated user identifier.
func WithUser(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userKey{}, id)
}

// UserFromContext returns the user identifier set by WithUser, if any.
func UserFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userKey{}).(string)
	if !ok || id == "" {
		return "", false
	}

	return id, true
}
