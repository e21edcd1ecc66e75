package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"crudkit/internal/domain"
)

// ConcurrencyStampHook regenerates the entity's concurrency stamp before a
// create or update. The stamp is server-authoritative: any client-supplied
// value is overwritten unconditionally.
type ConcurrencyStampHook[T domain.Entity] struct{}

func (ConcurrencyStampHook[T]) Handle(_ context.Context, entity T, action domain.ActionType) error {
	if action == domain.ActionCreate || action == domain.ActionUpdate {
		entity.SetConcurrencyStamp(uuid.New())
	}
	return nil
}

// ConcurrencyStampValidator implements optimistic concurrency control on
// updates: the incoming entity's stamp must match the currently persisted
// one. Concurrent editors race; the loser is rejected with status
// Concurrency instead of silently overwriting.
type ConcurrencyStampValidator[T domain.Entity] struct {
	Repo Repository[T]
	Name domain.EntityName
}

func (v ConcurrencyStampValidator[T]) Validate(ctx context.Context, entity T, action domain.ActionType) (domain.Status, error) {
	if action != domain.ActionUpdate {
		return domain.Success, nil
	}

	stamp, err := v.Repo.ReadConcurrencyStamp(ctx, entity.GetID())
	if err != nil && !IsNotFound(err) {
		return domain.Unknown, err
	}

	// A missing row reads as the zero stamp, which never matches.
	if stamp == uuid.Nil || stamp != entity.GetConcurrencyStamp() {
		domain.NotifierFrom(ctx).Error(fmt.Sprintf(
			"Unable to update %s: the entity has been updated by another user.",
			v.name()))
		return domain.Concurrency, nil
	}

	return domain.Success, nil
}

func (v ConcurrencyStampValidator[T]) name() string {
	if v.Name.Singular != "" {
		return v.Name.Singular
	}
	return "record"
}
