package auth

import (
	"context"

	"github.com/simaogato/stocktracker-backend/internal/domain"
)

type userKey struct{}

// WithUser returns a copy of ctx carrying the authenticated user
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext returns the authenticated user, if any
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey{}).(*domain.User)
	return user, ok && user != nil
}
