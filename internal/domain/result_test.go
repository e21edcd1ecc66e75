package domain

import (
	"net/http"
	"testing"
)

func TestStatusHTTPMapping(t *testing.T) {
	cases := []struct {
		status Status
		want   int
	}{
		{Success, http.StatusOK},
		{NotFound, http.StatusNotFound},
		{Unauthorized, http.StatusUnauthorized},
		{Forbidden, http.StatusForbidden},
		{Unprocessable, http.StatusUnprocessableEntity},
		{Conflict, http.StatusConflict},
		{Concurrency, http.StatusConflict},
		{Unknown, http.StatusInternalServerError},
		{Status(99), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := tc.status.HTTPStatus(); got != tc.want {
			t.Fatalf("HTTPStatus(%s) = %d, want %d", tc.status, got, tc.want)
		}
	}
}

func TestNewResultFillsDefaultMessage(t *testing.T) {
	res := NewResult(NotFound, false, "")
	if res.Message != MsgNotFound {
		t.Fatalf("expected default message %q, got %q", MsgNotFound, res.Message)
	}

	res = NewResult(NotFound, false, "custom")
	if res.Message != "custom" {
		t.Fatalf("expected explicit message to win, got %q", res.Message)
	}
}

func TestOkAndFail(t *testing.T) {
	ok := Ok(42)
	if !ok.Succeeded() || ok.Value != 42 {
		t.Fatalf("Ok result not successful: %+v", ok)
	}

	fail := Fail[int](Concurrency, "")
	if fail.Succeeded() {
		t.Fatalf("Fail result reported success")
	}
	if fail.Message != MsgConcurrency {
		t.Fatalf("expected concurrency message, got %q", fail.Message)
	}
}

func TestFilterNormalPage(t *testing.T) {
	var nilFilter *Filter
	if got := nilFilter.NormalPage(); got != 1 {
		t.Fatalf("nil filter page = %d, want 1", got)
	}
	if got := (&Filter{Page: 0}).NormalPage(); got != 1 {
		t.Fatalf("zero page = %d, want 1", got)
	}
	if got := (&Filter{Page: 3}).NormalPage(); got != 3 {
		t.Fatalf("page = %d, want 3", got)
	}
}

func TestCollectorSkipsEmptyMessages(t *testing.T) {
	c := NewCollector()
	c.Success("")
	c.Error("boom")

	got := c.Notifications()
	if len(got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(got))
	}
	if got[0].Type != NotifyError || got[0].Message != "boom" {
		t.Fatalf("unexpected notification: %+v", got[0])
	}
}

func TestAccessContextDefaultsToDenied(t *testing.T) {
	access := &AccessContext{}
	if access.CanAccess() {
		t.Fatalf("fresh access context should deny")
	}
	access.Approve()
	if !access.CanAccess() {
		t.Fatalf("approved access context should allow")
	}
}
