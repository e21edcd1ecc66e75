package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"crudkit/internal/domain"
	"crudkit/internal/repositories"
)

// Reader loads entities through the hook pipeline. Single reads enforce
// per-entity access; collection reads do not filter items by access and
// only run the after-hooks over each item.
type Reader[T domain.Entity] struct {
	repo     repositories.Repository[T]
	name     domain.EntityName
	hooks    *EntityHooks[T]
	notifier domain.Notifier
}

func NewReader[T domain.Entity](repo repositories.Repository[T], name domain.EntityName, h *EntityHooks[T], notifier domain.Notifier) *Reader[T] {
	return &Reader[T]{repo: repo, name: name, hooks: h.orEmpty(), notifier: notifier}
}

func (s *Reader[T]) Read(ctx context.Context, id uuid.UUID, filter *domain.Filter) domain.Result[T] {
	ctx = domain.WithNotifier(ctx, s.notifier)

	entity, err := s.repo.Read(ctx, id, filter)
	if err != nil {
		if repositories.IsNotFound(err) {
			message := s.name.NotFoundByID(id)
			s.notifier.Error(message)
			return domain.Fail[T](domain.NotFound, message)
		}
		log.Printf("[SERVICES] action=%s msg=failed to read %s: %v", domain.ActionRead, s.name.Singular, err)
		message := s.name.ReadSingleFailed()
		s.notifier.Error(message)
		return domain.Fail[T](repositories.FailureStatus(err), message)
	}

	if res := s.hooks.Access.Validate(ctx, entity, domain.ActionRead); !res.Succeeded() {
		message := res.Message
		if res.Status == domain.Forbidden {
			message = s.name.NoPermission()
		}
		s.notifier.Error(message)
		return domain.Fail[T](res.Status, message)
	}

	s.hooks.After.Run(ctx, entity, domain.ActionRead)
	return domain.Ok(entity)
}

func (s *Reader[T]) ReadAll(ctx context.Context, filter *domain.Filter) domain.Result[*domain.PagedQuery[T]] {
	ctx = domain.WithNotifier(ctx, s.notifier)

	page, err := s.repo.ReadAll(ctx, filter)
	if err != nil {
		log.Printf("[SERVICES] action=%s msg=failed to read %s: %v", domain.ActionReadAll, s.name.Plural, err)
		message := s.name.ReadMultipleFailed()
		s.notifier.Error(message)
		return domain.Fail[*domain.PagedQuery[T]](repositories.FailureStatus(err), message)
	}

	for _, item := range page.Items {
		s.hooks.After.Run(ctx, item, domain.ActionReadAll)
	}
	return domain.Ok(page)
}
