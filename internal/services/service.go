package services

import (
	"context"
	"log"

	"crudkit/internal/domain"
)

// Processor is the injected application logic for a Service. Expected
// business outcomes come back as the Result; a returned error is an
// unexpected failure and is never surfaced to the caller verbatim.
type Processor[TRequest, TResult any] interface {
	Process(ctx context.Context, request TRequest) (domain.Result[TResult], error)
}

// ProcessorFunc adapts a function to the Processor interface.
type ProcessorFunc[TRequest, TResult any] func(ctx context.Context, request TRequest) (domain.Result[TResult], error)

func (f ProcessorFunc[TRequest, TResult]) Process(ctx context.Context, request TRequest) (domain.Result[TResult], error) {
	return f(ctx, request)
}

// ResultProcessor produces a result without a request body.
type ResultProcessor[TResult any] interface {
	Process(ctx context.Context) (domain.Result[TResult], error)
}

type ResultProcessorFunc[TResult any] func(ctx context.Context) (domain.Result[TResult], error)

func (f ResultProcessorFunc[TResult]) Process(ctx context.Context) (domain.Result[TResult], error) {
	return f(ctx)
}

// Service runs arbitrary application logic through the same stage chain as
// an entity write: access validation, state validation, before-hooks, the
// processor, then after-hooks on the request when the processor succeeded.
type Service[TRequest, TResult any] struct {
	processor Processor[TRequest, TResult]
	hooks     *EntityHooks[TRequest]
	notifier  domain.Notifier
	action    domain.ActionType
}

func NewService[TRequest, TResult any](processor Processor[TRequest, TResult], h *EntityHooks[TRequest], notifier domain.Notifier) *Service[TRequest, TResult] {
	return &Service[TRequest, TResult]{
		processor: processor,
		hooks:     h.orEmpty(),
		notifier:  notifier,
		action:    domain.ActionGeneral,
	}
}

func (s *Service[TRequest, TResult]) Execute(ctx context.Context, request TRequest) domain.Result[TResult] {
	ctx = domain.WithNotifier(ctx, s.notifier)

	pipeline := requestPipeline[TRequest]{hooks: s.hooks, action: s.action, hasBody: true}
	if status, message, ok := pipeline.check(ctx, request); !ok {
		s.notifier.Error(message)
		return domain.Fail[TResult](status, message)
	}

	res, err := s.processor.Process(ctx, request)
	if err != nil {
		log.Printf("[SERVICES] action=%s msg=processor failed: %v", s.action, err)
		s.notifier.Error(domain.MsgUnknown)
		return domain.Fail[TResult](domain.Unknown, domain.MsgUnknown)
	}

	if res.Succeeded() {
		s.hooks.After.Run(ctx, request, s.action)
	} else {
		s.notifier.Error(res.Message)
	}
	return res
}

// StatusService is a Service whose processor reports only success or
// failure.
type StatusService[TRequest any] struct {
	*Service[TRequest, bool]
}

func NewStatusService[TRequest any](processor Processor[TRequest, bool], h *EntityHooks[TRequest], notifier domain.Notifier) *StatusService[TRequest] {
	inner := NewService(processor, h, notifier)
	inner.action = domain.ActionStatus
	return &StatusService[TRequest]{Service: inner}
}

// ResultService produces a value with no request input. Without a body
// there is nothing to state-validate or pre-process, so only access
// validation, the processor, and after-hooks over the produced result run.
type ResultService[TResult any] struct {
	processor ResultProcessor[TResult]
	hooks     *EntityHooks[TResult]
	notifier  domain.Notifier
}

func NewResultService[TResult any](processor ResultProcessor[TResult], h *EntityHooks[TResult], notifier domain.Notifier) *ResultService[TResult] {
	return &ResultService[TResult]{processor: processor, hooks: h.orEmpty(), notifier: notifier}
}

func (s *ResultService[TResult]) Execute(ctx context.Context) domain.Result[TResult] {
	ctx = domain.WithNotifier(ctx, s.notifier)

	var zero TResult
	pipeline := requestPipeline[TResult]{hooks: s.hooks, action: domain.ActionResult, hasBody: false}
	if status, message, ok := pipeline.check(ctx, zero); !ok {
		s.notifier.Error(message)
		return domain.Fail[TResult](status, message)
	}

	res, err := s.processor.Process(ctx)
	if err != nil {
		log.Printf("[SERVICES] action=%s msg=processor failed: %v", domain.ActionResult, err)
		s.notifier.Error(domain.MsgUnknown)
		return domain.Fail[TResult](domain.Unknown, domain.MsgUnknown)
	}

	if res.Succeeded() {
		s.hooks.After.Run(ctx, res.Value, domain.ActionResult)
	} else {
		s.notifier.Error(res.Message)
	}
	return res
}
