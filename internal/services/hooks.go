package services

import (
	"context"

	"crudkit/internal/domain"
	"crudkit/internal/hooks"
)

// EntityHooks bundles the four hook runners for one input type. Hooks are
// registered once at startup; the bundle is read-only during request
// processing.
type EntityHooks[T any] struct {
	Access *hooks.AccessValidatorService[T]
	State  *hooks.StateValidatorService[T]
	Before *hooks.BeforeHookService[T]
	After  *hooks.AfterHookService[T]
}

// NewEntityHooks returns a bundle with no hooks registered. An empty bundle
// approves access and validates every input.
func NewEntityHooks[T any]() *EntityHooks[T] {
	return &EntityHooks[T]{
		Access: hooks.NewAccessValidatorService[T](),
		State:  hooks.NewStateValidatorService[T](),
		Before: hooks.NewBeforeHookService[T](),
		After:  hooks.NewAfterHookService[T](),
	}
}

func (h *EntityHooks[T]) orEmpty() *EntityHooks[T] {
	if h == nil {
		return NewEntityHooks[T]()
	}
	out := *h
	if out.Access == nil {
		out.Access = hooks.NewAccessValidatorService[T]()
	}
	if out.State == nil {
		out.State = hooks.NewStateValidatorService[T]()
	}
	if out.Before == nil {
		out.Before = hooks.NewBeforeHookService[T]()
	}
	if out.After == nil {
		out.After = hooks.NewAfterHookService[T]()
	}
	return &out
}

// requestPipeline is the shared pre-operation stage chain. The body stages
// (state validation and before-hooks) only apply when the call carries a
// request body.
type requestPipeline[T any] struct {
	hooks    *EntityHooks[T]
	action   domain.ActionType
	hasBody  bool
	deniedBy func() string
}

// check runs the pre-operation stages in order and reports the first
// failure. fail-fast applies to before-hooks; validators aggregate
// internally.
func (p requestPipeline[T]) check(ctx context.Context, input T) (domain.Status, string, bool) {
	if res := p.hooks.Access.Validate(ctx, input, p.action); !res.Succeeded() {
		message := res.Message
		if p.deniedBy != nil && res.Status == domain.Forbidden {
			message = p.deniedBy()
		}
		return res.Status, message, false
	}

	if !p.hasBody {
		return domain.Success, "", true
	}

	if res := p.hooks.State.Validate(ctx, input, p.action); !res.Succeeded() {
		return res.Status, res.Message, false
	}
	if res := p.hooks.Before.Run(ctx, input, p.action); !res.Succeeded() {
		return res.Status, res.Message, false
	}
	return domain.Success, "", true
}
