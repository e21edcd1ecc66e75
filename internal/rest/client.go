package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strings"

	"crudkit/internal/domain"
)

// AuthProvider supplies credentials for outgoing requests and reacts to
// authorization failures and rotations.
type AuthProvider interface {
	// Authorize attaches the current credentials to the request.
	Authorize(ctx context.Context, req *http.Request) error
	// Refresh attempts to obtain fresh credentials after a 401. It returns
	// false when no new credentials could be issued.
	Refresh(ctx context.Context) (bool, error)
	// ObserveResponse inspects a response for rotated credentials. It runs
	// after the final response on every path, including failures.
	ObserveResponse(ctx context.Context, resp *http.Response)
}

// NoAuth is an AuthProvider for unauthenticated APIs.
type NoAuth struct{}

func (NoAuth) Authorize(context.Context, *http.Request) error { return nil }
func (NoAuth) Refresh(context.Context) (bool, error)          { return false, nil }
func (NoAuth) ObserveResponse(context.Context, *http.Response) {}

// Config carries the client's explicit settings. There is no process-wide
// base path; every client gets its own.
type Config struct {
	// BaseURL is prefixed to relative endpoints.
	BaseURL string
	// FailureStatuses overrides the default HTTP-status → operation-status
	// mapping for non-2xx responses. 401 is always Unauthorized and is not
	// consulted here.
	FailureStatuses map[int]domain.Status
}

// Client is the resilient HTTP transport used by the REST-backed
// repository. Its only retry behavior is a single refresh-and-retry cycle
// on 401; everything else is one attempt.
type Client struct {
	HTTP *http.Client
	Auth AuthProvider
	cfg  Config
}

func NewClient(cfg Config, httpClient *http.Client, auth AuthProvider) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if auth == nil {
		auth = NoAuth{}
	}
	return &Client{HTTP: httpClient, Auth: auth, cfg: cfg}
}

func (c *Client) url(endpoint string) string {
	if c.cfg.BaseURL == "" || strings.Contains(endpoint, "://") {
		return endpoint
	}
	return strings.TrimSuffix(c.cfg.BaseURL, "/") + "/" + strings.TrimPrefix(endpoint, "/")
}

// SendRaw builds a request, attaches authorization and sends it. On a 401
// it asks the auth provider to refresh once; if refresh succeeds the
// request is retried exactly once more, otherwise the original 401 is
// returned as-is. The auth provider observes the final response on every
// path so rotated credentials are picked up even on failures.
func (c *Client) SendRaw(ctx context.Context, method, endpoint string, input any) (*http.Response, error) {
	var resp *http.Response
	tries := 1

	for {
		req, err := c.newRequest(ctx, method, endpoint, input)
		if err != nil {
			return nil, err
		}
		if err := c.Auth.Authorize(ctx, req); err != nil {
			return nil, err
		}

		resp, err = c.HTTP.Do(req)
		if err != nil {
			return nil, err
		}

		if tries > 1 || resp.StatusCode != http.StatusUnauthorized {
			break
		}

		refreshed, err := c.Auth.Refresh(ctx)
		if err != nil || !refreshed {
			break
		}

		// Retry once with fresh credentials.
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		tries++
	}

	c.Auth.ObserveResponse(ctx, resp)
	return resp, nil
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, input any) (*http.Request, error) {
	url := c.url(endpoint)

	if input != nil && method == http.MethodGet {
		if query := EncodeQuery(input); query != "" {
			url += "?" + query
		}
		input = nil
	}

	var body io.Reader
	if input != nil {
		payload, err := json.Marshal(input)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// Send wraps SendRaw and parses the JSON response. A 2xx response whose
// body decodes to null is an Unknown failure, not a success with a nil
// value: a caller of Send always expects a payload.
func Send[T any](ctx context.Context, c *Client, method, endpoint string, input any) domain.Result[*T] {
	resp, err := c.SendRaw(ctx, method, endpoint, input)
	if err != nil {
		return transportFailure[T](err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return transportFailure[T](err)
		}

		var value *T
		if len(bytes.TrimSpace(body)) > 0 {
			if err := json.Unmarshal(body, &value); err != nil {
				log.Printf("[REST] method=%s endpoint=%s msg=response parse failed: %v", method, endpoint, err)
				value = nil
			}
		}
		if value == nil {
			return domain.Fail[*T](domain.Unknown, domain.MsgEmptyResponse)
		}
		return domain.Ok(value)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return domain.Fail[*T](domain.Unauthorized, domain.MsgUnauthorized)
	}

	return failureResult[T](c, method, endpoint, resp.StatusCode)
}

// Get sends an HTTP GET request. A non-nil input is serialized into the
// query string, skipping fields equal to their type's zero value.
func Get[T any](ctx context.Context, c *Client, endpoint string, input any) domain.Result[*T] {
	return Send[T](ctx, c, http.MethodGet, endpoint, input)
}

// Post sends an HTTP POST request with a JSON body.
func Post[T any](ctx context.Context, c *Client, endpoint string, input any) domain.Result[*T] {
	return Send[T](ctx, c, http.MethodPost, endpoint, input)
}

// Put sends an HTTP PUT request with a JSON body.
func Put[T any](ctx context.Context, c *Client, endpoint string, input any) domain.Result[*T] {
	return Send[T](ctx, c, http.MethodPut, endpoint, input)
}

// Delete sends an HTTP DELETE request.
func Delete[T any](ctx context.Context, c *Client, endpoint string, input any) domain.Result[*T] {
	return Send[T](ctx, c, http.MethodDelete, endpoint, input)
}

// failureResult maps a non-2xx, non-401 status code to an operation
// status. Only 400 and 422 carry distinct messages; everything else
// collapses to Unknown unless the client was configured with an override.
func failureResult[T any](c *Client, method, endpoint string, statusCode int) domain.Result[*T] {
	if status, ok := c.cfg.FailureStatuses[statusCode]; ok {
		log.Printf("[REST] method=%s endpoint=%s status=%d", method, endpoint, statusCode)
		return domain.Fail[*T](status, "")
	}

	var (
		status  = domain.Unknown
		logMsg  string
		message string
	)
	switch statusCode {
	case http.StatusBadRequest:
		status = domain.Unprocessable
		logMsg = "the request payload was not understood"
		message = domain.MsgBadRequest
	case http.StatusUnprocessableEntity:
		status = domain.Unprocessable
		logMsg = "there was a problem with the request data"
		message = domain.MsgUnprocessable
	default:
		logMsg = "request failed"
		message = domain.MsgUnknown
	}

	log.Printf("[REST] method=%s endpoint=%s status=%d msg=%s", method, endpoint, statusCode, logMsg)
	return domain.Fail[*T](status, message)
}

// transportFailure maps a transport-level error to an Unknown result.
// Timeouts get their own user message; network and everything else share
// the generic ones.
func transportFailure[T any](err error) domain.Result[*T] {
	var (
		logMsg  string
		message string
	)

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		logMsg = "network request timed out"
		message = domain.MsgNetworkTimeout
	case isNetworkError(err):
		logMsg = "network error"
		message = domain.MsgNetworkFailed
	default:
		logMsg = "request failed"
		message = domain.MsgUnknown
	}

	log.Printf("[REST] msg=%s: %v", logMsg, err)
	return domain.Fail[*T](domain.Unknown, message)
}

func isNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
