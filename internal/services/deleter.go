package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"crudkit/internal/domain"
	"crudkit/internal/repositories"
)

// Deleter removes entities through the pipeline. The entity is loaded
// first so validators and hooks receive full entity state, not the bare
// id; the delete is never attempted for an id that does not exist.
type Deleter[T domain.Entity] struct {
	repo     repositories.Repository[T]
	name     domain.EntityName
	hooks    *EntityHooks[T]
	notifier domain.Notifier
}

func NewDeleter[T domain.Entity](repo repositories.Repository[T], name domain.EntityName, h *EntityHooks[T], notifier domain.Notifier) *Deleter[T] {
	return &Deleter[T]{repo: repo, name: name, hooks: h.orEmpty(), notifier: notifier}
}

func (s *Deleter[T]) Delete(ctx context.Context, id uuid.UUID) domain.Result[bool] {
	ctx = domain.WithNotifier(ctx, s.notifier)

	entity, err := s.repo.Read(ctx, id, nil)
	if err != nil {
		if repositories.IsNotFound(err) {
			message := s.name.NotFoundByID(id)
			s.notifier.Error(message)
			return domain.Fail[bool](domain.NotFound, message)
		}
		log.Printf("[SERVICES] action=%s msg=failed to load %s: %v", domain.ActionDelete, s.name.Singular, err)
		message := s.name.DeleteFailed()
		s.notifier.Error(message)
		return domain.Fail[bool](repositories.FailureStatus(err), message)
	}

	pipeline := requestPipeline[T]{
		hooks:    s.hooks,
		action:   domain.ActionDelete,
		hasBody:  true,
		deniedBy: s.name.NoPermission,
	}
	if status, message, ok := pipeline.check(ctx, entity); !ok {
		s.notifier.Error(message)
		return domain.Fail[bool](status, message)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Printf("[SERVICES] action=%s msg=failed to delete %s: %v", domain.ActionDelete, s.name.Singular, err)
		message := s.name.DeleteFailed()
		s.notifier.Error(message)
		return domain.Fail[bool](repositories.FailureStatus(err), message)
	}
	if !deleted {
		message := s.name.NotFoundByID(id)
		s.notifier.Error(message)
		return domain.Fail[bool](domain.NotFound, message)
	}

	s.hooks.After.Run(ctx, entity, domain.ActionDelete)
	s.notifier.Success(s.name.DeleteSuccessful())
	return domain.Ok(true)
}
