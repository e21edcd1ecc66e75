package hooks

import (
	"context"
	"log"

	"crudkit/internal/domain"
)

// AccessValidatorService runs every registered access validator against a
// fresh AccessContext. An entity with no access rules is public: if zero
// validators are registered, access is granted. Once configured, access is
// denied unless a validator explicitly approves.
type AccessValidatorService[T any] struct {
	validators []AccessValidator[T]
}

func NewAccessValidatorService[T any](validators ...AccessValidator[T]) *AccessValidatorService[T] {
	return &AccessValidatorService[T]{validators: validators}
}

// Validate runs the validators in registration order. Approval is additive,
// so later validators still run after one approves. A validator returning
// an error denies everything: the error is logged and the overall result is
// Unknown rather than a silent grant.
func (s *AccessValidatorService[T]) Validate(ctx context.Context, input T, action domain.ActionType) domain.Result[bool] {
	access := &domain.AccessContext{}

	for _, validator := range s.validators {
		if err := validator.Validate(ctx, access, action, input); err != nil {
			log.Printf("[HOOKS] action=%s msg=access validator failed to run: %v", action, err)
			return domain.NewResult(domain.Unknown, false, domain.MsgInvalidState)
		}
	}

	if len(s.validators) == 0 || access.CanAccess() {
		return domain.Ok(true)
	}
	return domain.NewResult(domain.Forbidden, false, "")
}

// StateValidatorService runs every registered state validator and requires
// all of them to report Success. Validators are not short-circuited on
// failure, so each can emit its own notification; the last non-success
// status is the one surfaced, which keeps Concurrency distinguishable from
// a generic state failure.
type StateValidatorService[T any] struct {
	validators []StateValidator[T]
}

func NewStateValidatorService[T any](validators ...StateValidator[T]) *StateValidatorService[T] {
	return &StateValidatorService[T]{validators: validators}
}

func (s *StateValidatorService[T]) Validate(ctx context.Context, input T, action domain.ActionType) domain.Result[bool] {
	failed := false
	failStatus := domain.Unprocessable

	for _, validator := range s.validators {
		status, err := validator.Validate(ctx, input, action)
		if err != nil {
			log.Printf("[HOOKS] action=%s msg=state validator failed to run: %v", action, err)
			return domain.NewResult(domain.Unprocessable, false, domain.MsgInvalidState)
		}
		if status != domain.Success {
			failed = true
			failStatus = status
		}
	}

	if failed {
		return domain.NewResult(failStatus, false, "")
	}
	return domain.Ok(true)
}

// BeforeHookService runs before-hooks in order, aborting on the first
// failure. Before-hooks have side effects that may depend on one another,
// so continuing after a failure is unsafe.
type BeforeHookService[T any] struct {
	hooks []BeforeHook[T]
}

func NewBeforeHookService[T any](hooks ...BeforeHook[T]) *BeforeHookService[T] {
	return &BeforeHookService[T]{hooks: hooks}
}

func (s *BeforeHookService[T]) Run(ctx context.Context, input T, action domain.ActionType) domain.Result[bool] {
	for _, hook := range s.hooks {
		if err := hook.Handle(ctx, input, action); err != nil {
			log.Printf("[HOOKS] action=%s msg=before hook failed to run: %v", action, err)
			return domain.NewResult(domain.Unknown, false, domain.MsgBeforeHookFailure)
		}
	}
	return domain.Ok(true)
}

// AfterHookService runs after-hooks in order. After-hooks fire once the
// primary operation has already committed, so each failure is logged and
// swallowed rather than hiding the committed result or stopping later
// hooks.
type AfterHookService[T any] struct {
	hooks []AfterHook[T]
}

func NewAfterHookService[T any](hooks ...AfterHook[T]) *AfterHookService[T] {
	return &AfterHookService[T]{hooks: hooks}
}

func (s *AfterHookService[T]) Run(ctx context.Context, input T, action domain.ActionType) {
	for _, hook := range s.hooks {
		if err := hook.Handle(ctx, input, action); err != nil {
			log.Printf("[HOOKS] action=%s msg=after hook failed to run: %v", action, err)
		}
	}
}
