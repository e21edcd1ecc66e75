package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"crudkit/internal/domain"
)

type stampRepo struct {
	Repository[*widget]
	stamps map[uuid.UUID]uuid.UUID
}

func (r stampRepo) ReadConcurrencyStamp(_ context.Context, id uuid.UUID) (uuid.UUID, error) {
	stamp, ok := r.stamps[id]
	if !ok {
		return uuid.Nil, ErrNotFound
	}
	return stamp, nil
}

func TestStampHookRegeneratesOnWrites(t *testing.T) {
	hook := ConcurrencyStampHook[*widget]{}

	for _, action := range []domain.ActionType{domain.ActionCreate, domain.ActionUpdate} {
		w := &widget{}
		w.ConcurrencyStamp = uuid.New()
		before := w.ConcurrencyStamp

		if err := hook.Handle(context.Background(), w, action); err != nil {
			t.Fatalf("hook failed: %v", err)
		}
		if w.ConcurrencyStamp == before {
			t.Fatalf("stamp not regenerated for %s", action)
		}
	}

	w := &widget{}
	w.ConcurrencyStamp = uuid.New()
	before := w.ConcurrencyStamp
	if err := hook.Handle(context.Background(), w, domain.ActionRead); err != nil {
		t.Fatalf("hook failed: %v", err)
	}
	if w.ConcurrencyStamp != before {
		t.Fatalf("stamp must not change outside create/update")
	}
}

func TestStampValidatorRejectsMismatch(t *testing.T) {
	id := uuid.New()
	persisted := uuid.New()
	validator := ConcurrencyStampValidator[*widget]{
		Repo: stampRepo{stamps: map[uuid.UUID]uuid.UUID{id: persisted}},
		Name: domain.EntityName{Singular: "widget"},
	}

	w := &widget{}
	w.ID = id
	w.ConcurrencyStamp = uuid.New()

	notifier := domain.NewCollector()
	ctx := domain.WithNotifier(context.Background(), notifier)

	status, err := validator.Validate(ctx, w, domain.ActionUpdate)
	if err != nil {
		t.Fatalf("validator returned error: %v", err)
	}
	if status != domain.Concurrency {
		t.Fatalf("status = %s, want %s", status, domain.Concurrency)
	}
	if len(notifier.Notifications()) != 1 {
		t.Fatalf("expected an error notification, got %v", notifier.Notifications())
	}
}

func TestStampValidatorAcceptsMatch(t *testing.T) {
	id := uuid.New()
	persisted := uuid.New()
	validator := ConcurrencyStampValidator[*widget]{
		Repo: stampRepo{stamps: map[uuid.UUID]uuid.UUID{id: persisted}},
	}

	w := &widget{}
	w.ID = id
	w.ConcurrencyStamp = persisted

	status, err := validator.Validate(context.Background(), w, domain.ActionUpdate)
	if err != nil {
		t.Fatalf("validator returned error: %v", err)
	}
	if status != domain.Success {
		t.Fatalf("status = %s, want %s", status, domain.Success)
	}
}

func TestStampValidatorMissingEntityIsConcurrency(t *testing.T) {
	validator := ConcurrencyStampValidator[*widget]{
		Repo: stampRepo{stamps: map[uuid.UUID]uuid.UUID{}},
	}

	w := &widget{}
	w.ID = uuid.New()
	w.ConcurrencyStamp = uuid.New()

	status, err := validator.Validate(context.Background(), w, domain.ActionUpdate)
	if err != nil {
		t.Fatalf("validator returned error: %v", err)
	}
	if status != domain.Concurrency {
		t.Fatalf("status = %s, want %s", status, domain.Concurrency)
	}
}

func TestStampValidatorIgnoresOtherActions(t *testing.T) {
	validator := ConcurrencyStampValidator[*widget]{Repo: stampRepo{}}

	w := &widget{}
	status, err := validator.Validate(context.Background(), w, domain.ActionCreate)
	if err != nil {
		t.Fatalf("validator returned error: %v", err)
	}
	if status != domain.Success {
		t.Fatalf("status = %s, want %s", status, domain.Success)
	}
}
