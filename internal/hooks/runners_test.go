package hooks

import (
	"context"
	"errors"
	"testing"

	"crudkit/internal/domain"
)

func TestAccessEmptySetApproves(t *testing.T) {
	svc := NewAccessValidatorService[string]()
	res := svc.Validate(context.Background(), "input", domain.ActionRead)
	if !res.Succeeded() {
		t.Fatalf("empty validator set should approve, got %+v", res)
	}
}

func TestAccessDeniesWhenNobodyApproves(t *testing.T) {
	noop := AccessValidatorFunc[string](func(context.Context, *domain.AccessContext, domain.ActionType, string) error {
		return nil
	})

	svc := NewAccessValidatorService[string](noop, noop)
	res := svc.Validate(context.Background(), "input", domain.ActionCreate)
	if res.Succeeded() {
		t.Fatalf("non-approving validators should deny")
	}
	if res.Status != domain.Forbidden {
		t.Fatalf("status = %s, want %s", res.Status, domain.Forbidden)
	}
}

func TestAccessApprovalDoesNotShortCircuit(t *testing.T) {
	var ran []int
	approve := AccessValidatorFunc[string](func(_ context.Context, access *domain.AccessContext, _ domain.ActionType, _ string) error {
		ran = append(ran, 1)
		access.Approve()
		return nil
	})
	witness := AccessValidatorFunc[string](func(context.Context, *domain.AccessContext, domain.ActionType, string) error {
		ran = append(ran, 2)
		return nil
	})

	svc := NewAccessValidatorService[string](approve, witness)
	res := svc.Validate(context.Background(), "input", domain.ActionUpdate)
	if !res.Succeeded() {
		t.Fatalf("expected approval, got %+v", res)
	}
	if len(ran) != 2 {
		t.Fatalf("expected both validators to run, ran %v", ran)
	}
}

func TestAccessValidatorErrorDenies(t *testing.T) {
	boom := AccessValidatorFunc[string](func(context.Context, *domain.AccessContext, domain.ActionType, string) error {
		return errors.New("boom")
	})

	svc := NewAccessValidatorService[string](boom)
	res := svc.Validate(context.Background(), "input", domain.ActionRead)
	if res.Succeeded() {
		t.Fatalf("erroring validator should deny")
	}
	if res.Status != domain.Unknown {
		t.Fatalf("status = %s, want %s", res.Status, domain.Unknown)
	}
}

func TestStateValidatorsAllRun(t *testing.T) {
	var ran []int
	fail := StateValidatorFunc[string](func(context.Context, string, domain.ActionType) (domain.Status, error) {
		ran = append(ran, 1)
		return domain.Unprocessable, nil
	})
	witness := StateValidatorFunc[string](func(context.Context, string, domain.ActionType) (domain.Status, error) {
		ran = append(ran, 2)
		return domain.Success, nil
	})

	svc := NewStateValidatorService[string](fail, witness)
	res := svc.Validate(context.Background(), "input", domain.ActionCreate)
	if res.Succeeded() {
		t.Fatalf("failing validator should fail the set")
	}
	if res.Status != domain.Unprocessable {
		t.Fatalf("status = %s, want %s", res.Status, domain.Unprocessable)
	}
	if len(ran) != 2 {
		t.Fatalf("failure should not short-circuit later validators, ran %v", ran)
	}
}

func TestStateValidatorConcurrencyStatusSurfaces(t *testing.T) {
	okFirst := StateValidatorFunc[string](func(context.Context, string, domain.ActionType) (domain.Status, error) {
		return domain.Success, nil
	})
	concurrency := StateValidatorFunc[string](func(context.Context, string, domain.ActionType) (domain.Status, error) {
		return domain.Concurrency, nil
	})

	svc := NewStateValidatorService[string](okFirst, concurrency)
	res := svc.Validate(context.Background(), "input", domain.ActionUpdate)
	if res.Status != domain.Concurrency {
		t.Fatalf("status = %s, want %s", res.Status, domain.Concurrency)
	}
}

func TestStateValidatorErrorMapsToUnprocessable(t *testing.T) {
	boom := StateValidatorFunc[string](func(context.Context, string, domain.ActionType) (domain.Status, error) {
		return domain.Unknown, errors.New("boom")
	})

	svc := NewStateValidatorService[string](boom)
	res := svc.Validate(context.Background(), "input", domain.ActionCreate)
	if res.Status != domain.Unprocessable {
		t.Fatalf("status = %s, want %s", res.Status, domain.Unprocessable)
	}
	if res.Message != domain.MsgInvalidState {
		t.Fatalf("message = %q, want %q", res.Message, domain.MsgInvalidState)
	}
}

func TestBeforeHooksFailFast(t *testing.T) {
	var ran []int
	boom := BeforeHookFunc[string](func(context.Context, string, domain.ActionType) error {
		ran = append(ran, 1)
		return errors.New("boom")
	})
	witness := BeforeHookFunc[string](func(context.Context, string, domain.ActionType) error {
		ran = append(ran, 2)
		return nil
	})

	svc := NewBeforeHookService[string](boom, witness)
	res := svc.Run(context.Background(), "input", domain.ActionCreate)
	if res.Succeeded() {
		t.Fatalf("failing before-hook should abort")
	}
	if res.Status != domain.Unknown || res.Message != domain.MsgBeforeHookFailure {
		t.Fatalf("unexpected failure result: %+v", res)
	}
	if len(ran) != 1 {
		t.Fatalf("later before-hooks should not run after a failure, ran %v", ran)
	}
}

func TestAfterHooksFailSoft(t *testing.T) {
	var ran []int
	boom := AfterHookFunc[string](func(context.Context, string, domain.ActionType) error {
		ran = append(ran, 1)
		return errors.New("boom")
	})
	witness := AfterHookFunc[string](func(context.Context, string, domain.ActionType) error {
		ran = append(ran, 2)
		return nil
	})

	svc := NewAfterHookService[string](boom, witness)
	svc.Run(context.Background(), "input", domain.ActionDelete)
	if len(ran) != 2 {
		t.Fatalf("after-hook failure should not stop later hooks, ran %v", ran)
	}
}
