package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crudkit/internal/domain"
)

type pingResponse struct {
	Message string `json:"message"`
}

func TestSendRefreshesOnceOn401(t *testing.T) {
	attempts := 0
	var authHeaders []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		authHeaders = append(authHeaders, r.Header.Get("Authorization"))
		if attempts == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"pong"}`))
	}))
	defer server.Close()

	auth := NewTokenAuth("stale", func(context.Context) (string, error) {
		return "fresh", nil
	})
	client := NewClient(Config{BaseURL: server.URL}, nil, auth)

	res := Get[pingResponse](context.Background(), client, "/ping", nil)
	require.True(t, res.Succeeded(), "result: %+v", res)
	assert.Equal(t, "pong", res.Value.Message)
	assert.Equal(t, 2, attempts, "a refreshed 401 retries exactly once")
	assert.Equal(t, []string{"Bearer stale", "Bearer fresh"}, authHeaders)
}

func TestSendReturns401WhenRefreshFails(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	auth := NewTokenAuth("stale", func(context.Context) (string, error) {
		return "", nil
	})
	client := NewClient(Config{BaseURL: server.URL}, nil, auth)

	res := Get[pingResponse](context.Background(), client, "/ping", nil)
	assert.Equal(t, domain.Unauthorized, res.Status)
	assert.Equal(t, domain.MsgUnauthorized, res.Message)
	assert.Equal(t, 1, attempts, "a failed refresh must not retry")
}

func TestSendNeverRetriesTwice(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	auth := NewTokenAuth("stale", func(context.Context) (string, error) {
		return "still-bad", nil
	})
	client := NewClient(Config{BaseURL: server.URL}, nil, auth)

	res := Get[pingResponse](context.Background(), client, "/ping", nil)
	assert.Equal(t, domain.Unauthorized, res.Status)
	assert.Equal(t, 2, attempts, "at most one refresh-and-retry cycle")
}

func TestSendNullBodyIsUnknownFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`null`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, nil, nil)
	res := Get[pingResponse](context.Background(), client, "/ping", nil)
	assert.Equal(t, domain.Unknown, res.Status)
	assert.Equal(t, domain.MsgEmptyResponse, res.Message)
	assert.Nil(t, res.Value)
}

func TestSendStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code        int
		wantStatus  domain.Status
		wantMessage string
	}{
		{http.StatusBadRequest, domain.Unprocessable, domain.MsgBadRequest},
		{http.StatusUnprocessableEntity, domain.Unprocessable, domain.MsgUnprocessable},
		{http.StatusServiceUnavailable, domain.Unknown, domain.MsgUnknown},
		{http.StatusNotFound, domain.Unknown, domain.MsgUnknown},
	}

	for _, tc := range cases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.code)
		}))

		client := NewClient(Config{BaseURL: server.URL}, nil, nil)
		res := Get[pingResponse](context.Background(), client, "/ping", nil)
		assert.Equal(t, tc.wantStatus, res.Status, "code %d", tc.code)
		assert.Equal(t, tc.wantMessage, res.Message, "code %d", tc.code)
		server.Close()
	}
}

func TestSendStatusCodeOverride(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	cfg := Config{
		BaseURL:         server.URL,
		FailureStatuses: map[int]domain.Status{http.StatusNotFound: domain.NotFound},
	}
	client := NewClient(cfg, nil, nil)
	res := Get[pingResponse](context.Background(), client, "/ping", nil)
	assert.Equal(t, domain.NotFound, res.Status)
}

func TestObserveResponsePicksUpRotatedTokenOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(RefreshedTokenHeader, "rotated")
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	auth := NewTokenAuth("original", nil)
	client := NewClient(Config{BaseURL: server.URL}, nil, auth)

	res := Get[pingResponse](context.Background(), client, "/ping", nil)
	assert.Equal(t, domain.Unprocessable, res.Status)
	assert.Equal(t, "rotated", auth.Token(), "rotated credentials are observed even on failures")
}

func TestGetZeroValueInputSendsNoQuery(t *testing.T) {
	var rawQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, nil, nil)
	res := Get[pingResponse](context.Background(), client, "/ping", &domain.Filter{})
	require.True(t, res.Succeeded(), "result: %+v", res)
	assert.Empty(t, rawQuery, "an all-default input must append no parameters")
}

func TestGetSparseQuerySerialization(t *testing.T) {
	var rawQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, nil, nil)
	filter := &domain.Filter{SearchTerm: "urgent", Page: 2}
	res := Get[pingResponse](context.Background(), client, "/ping", filter)
	require.True(t, res.Succeeded(), "result: %+v", res)
	assert.Equal(t, "page=2&searchTerm=urgent", rawQuery)
}
