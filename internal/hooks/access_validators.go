package hooks

import (
	"context"

	"crudkit/internal/auth"
	"crudkit/internal/domain"
)

// SignedInAccessValidator approves any signed-in caller.
type SignedInAccessValidator[T any] struct {
	Accessor auth.Accessor
}

func (v SignedInAccessValidator[T]) Validate(ctx context.Context, access *domain.AccessContext, _ domain.ActionType, _ T) error {
	if v.Accessor.IsSignedIn(ctx) {
		access.Approve()
	}
	return nil
}

// RoleAccessValidator approves callers carrying the configured role.
type RoleAccessValidator[T any] struct {
	Accessor auth.Accessor
	Role     string
}

func (v RoleAccessValidator[T]) Validate(ctx context.Context, access *domain.AccessContext, _ domain.ActionType, _ T) error {
	if v.Accessor.UserInRole(ctx, v.Role) {
		access.Approve()
	}
	return nil
}
