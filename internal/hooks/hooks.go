package hooks

import (
	"context"

	"crudkit/internal/domain"
)

// AccessValidator decides whether the current caller may perform an action
// against an entity or request. Granting access means calling
// access.Approve(); doing nothing leaves the default denial in place.
type AccessValidator[T any] interface {
	Validate(ctx context.Context, access *domain.AccessContext, action domain.ActionType, input T) error
}

// StateValidator verifies that an entity or request does not violate
// application state prior to executing an operation (for example, checking
// a field for uniqueness against the database).
type StateValidator[T any] interface {
	Validate(ctx context.Context, input T, action domain.ActionType) (domain.Status, error)
}

// BeforeHook performs side effects before the core operation runs, such as
// stamping fields the operation depends on.
type BeforeHook[T any] interface {
	Handle(ctx context.Context, input T, action domain.ActionType) error
}

// AfterHook performs best-effort side effects once the core operation has
// already committed.
type AfterHook[T any] interface {
	Handle(ctx context.Context, input T, action domain.ActionType) error
}

// Function adapters so simple hooks don't need a named type.

type AccessValidatorFunc[T any] func(ctx context.Context, access *domain.AccessContext, action domain.ActionType, input T) error

func (f AccessValidatorFunc[T]) Validate(ctx context.Context, access *domain.AccessContext, action domain.ActionType, input T) error {
	return f(ctx, access, action, input)
}

type StateValidatorFunc[T any] func(ctx context.Context, input T, action domain.ActionType) (domain.Status, error)

func (f StateValidatorFunc[T]) Validate(ctx context.Context, input T, action domain.ActionType) (domain.Status, error) {
	return f(ctx, input, action)
}

type BeforeHookFunc[T any] func(ctx context.Context, input T, action domain.ActionType) error

func (f BeforeHookFunc[T]) Handle(ctx context.Context, input T, action domain.ActionType) error {
	return f(ctx, input, action)
}

type AfterHookFunc[T any] func(ctx context.Context, input T, action domain.ActionType) error

func (f AfterHookFunc[T]) Handle(ctx context.Context, input T, action domain.ActionType) error {
	return f(ctx, input, action)
}
