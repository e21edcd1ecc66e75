package rest

import (
	"context"
	"net/http"
	"sync"
)

// RefreshedTokenHeader is the response header a server may use to rotate a
// caller's bearer token mid-session.
const RefreshedTokenHeader = "X-Refreshed-Token"

// TokenAuth is an AuthProvider that attaches a bearer token and refreshes
// it through a caller-supplied function, typically a login or token
// endpoint.
type TokenAuth struct {
	mu      sync.Mutex
	token   string
	refresh func(ctx context.Context) (string, error)
}

// NewTokenAuth creates a TokenAuth with an initial token (may be empty)
// and an optional refresh function.
func NewTokenAuth(token string, refresh func(ctx context.Context) (string, error)) *TokenAuth {
	return &TokenAuth{token: token, refresh: refresh}
}

// Token returns the current bearer token.
func (a *TokenAuth) Token() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token
}

func (a *TokenAuth) Authorize(_ context.Context, req *http.Request) error {
	if token := a.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}

func (a *TokenAuth) Refresh(ctx context.Context) (bool, error) {
	if a.refresh == nil {
		return false, nil
	}
	token, err := a.refresh(ctx)
	if err != nil || token == "" {
		return false, err
	}
	a.mu.Lock()
	a.token = token
	a.mu.Unlock()
	return true, nil
}

// ObserveResponse picks up a rotated token when the server sends one, even
// on failure responses.
func (a *TokenAuth) ObserveResponse(_ context.Context, resp *http.Response) {
	if resp == nil {
		return
	}
	if token := resp.Header.Get(RefreshedTokenHeader); token != "" {
		a.mu.Lock()
		a.token = token
		a.mu.Unlock()
	}
}
