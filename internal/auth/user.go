package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// User is the authenticated caller attached to a request context by the
// auth middleware.
type User struct {
	ID       uuid.UUID
	Username string
	Roles    []string
}

// InRole reports whether the user carries the named role. Comparison is
// case-insensitive.
func (u *User) InRole(role string) bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}

type contextKey struct{}

// WithUser attaches an authenticated user to the context.
func WithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}

// UserFrom extracts the authenticated user from the context, if any.
func UserFrom(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(contextKey{}).(*User)
	return user, ok && user != nil
}

// Accessor exposes the signed-in and role checks access validators depend
// on. The context-backed implementation below is the default; tests may
// substitute their own.
type Accessor interface {
	IsSignedIn(ctx context.Context) bool
	UserID(ctx context.Context) (uuid.UUID, bool)
	UserInRole(ctx context.Context, role string) bool
}

// ContextAccessor reads the user the auth middleware stored on the request
// context.
type ContextAccessor struct{}

func (ContextAccessor) IsSignedIn(ctx context.Context) bool {
	_, ok := UserFrom(ctx)
	return ok
}

func (ContextAccessor) UserID(ctx context.Context) (uuid.UUID, bool) {
	user, ok := UserFrom(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return user.ID, true
}

func (ContextAccessor) UserInRole(ctx context.Context, role string) bool {
	user, ok := UserFrom(ctx)
	return ok && user.InRole(role)
}
