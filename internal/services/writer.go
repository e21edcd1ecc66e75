package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"crudkit/internal/domain"
	"crudkit/internal/repositories"
)

// Writer persists entities through the full pipeline: access validation,
// state validation, before-hooks, the repository write, then after-hooks.
// A failing stage short-circuits with that stage's status and message.
type Writer[T domain.Entity] struct {
	repo     repositories.Repository[T]
	name     domain.EntityName
	hooks    *EntityHooks[T]
	notifier domain.Notifier
}

func NewWriter[T domain.Entity](repo repositories.Repository[T], name domain.EntityName, h *EntityHooks[T], notifier domain.Notifier) *Writer[T] {
	return &Writer[T]{repo: repo, name: name, hooks: h.orEmpty(), notifier: notifier}
}

func (s *Writer[T]) pipeline(action domain.ActionType) requestPipeline[T] {
	return requestPipeline[T]{
		hooks:    s.hooks,
		action:   action,
		hasBody:  true,
		deniedBy: s.name.NoPermission,
	}
}

func (s *Writer[T]) Create(ctx context.Context, entity T) domain.Result[uuid.UUID] {
	ctx = domain.WithNotifier(ctx, s.notifier)

	if status, message, ok := s.pipeline(domain.ActionCreate).check(ctx, entity); !ok {
		s.notifier.Error(message)
		return domain.Fail[uuid.UUID](status, message)
	}

	id, err := s.repo.Create(ctx, entity)
	if err != nil {
		log.Printf("[SERVICES] action=%s msg=failed to create %s: %v", domain.ActionCreate, s.name.Singular, err)
		message := s.name.CreateFailed()
		s.notifier.Error(message)
		return domain.Fail[uuid.UUID](repositories.FailureStatus(err), message)
	}

	s.hooks.After.Run(ctx, entity, domain.ActionCreate)
	s.notifier.Success(s.name.CreateSuccessful())
	return domain.Ok(id)
}

func (s *Writer[T]) Update(ctx context.Context, entity T) domain.Result[bool] {
	ctx = domain.WithNotifier(ctx, s.notifier)

	if status, message, ok := s.pipeline(domain.ActionUpdate).check(ctx, entity); !ok {
		s.notifier.Error(message)
		return domain.Fail[bool](status, message)
	}

	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		log.Printf("[SERVICES] action=%s msg=failed to update %s: %v", domain.ActionUpdate, s.name.Singular, err)
		message := s.name.UpdateFailed()
		s.notifier.Error(message)
		return domain.Fail[bool](repositories.FailureStatus(err), message)
	}
	if !updated {
		message := s.name.NotFoundByID(entity.GetID())
		s.notifier.Error(message)
		return domain.Fail[bool](domain.NotFound, message)
	}

	s.hooks.After.Run(ctx, entity, domain.ActionUpdate)
	s.notifier.Success(s.name.UpdateSuccessful())
	return domain.Ok(true)
}
