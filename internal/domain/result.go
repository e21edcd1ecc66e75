package domain

import "net/http"

// Status represents the outcome of a hookable operation. Expected failures
// (not found, forbidden, conflict and friends) are normal return values,
// never errors.
type Status int

const (
	// Success indicates that a hook or operation was successful.
	Success Status = iota
	// NotFound indicates that the operation failed due to a missing entity.
	NotFound
	// Unauthorized indicates that the operation failed because the user was
	// not logged in.
	Unauthorized
	// Forbidden indicates that the operation failed because the user was not
	// allowed to perform it.
	Forbidden
	// Unprocessable indicates that the operation failed due to the entity or
	// request state.
	Unprocessable
	// Conflict indicates that the operation failed due to a datastore
	// conflict.
	Conflict
	// Concurrency indicates that the operation failed because the entity was
	// modified by someone else first.
	Concurrency
	// Unknown indicates that the operation failed for unknown reasons.
	Unknown
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case NotFound:
		return "not_found"
	case Unauthorized:
		return "unauthorized"
	case Forbidden:
		return "forbidden"
	case Unprocessable:
		return "unprocessable"
	case Conflict:
		return "conflict"
	case Concurrency:
		return "concurrency"
	default:
		return "unknown"
	}
}

// HTTPStatus maps an operation status to its transport-level status code.
// Concurrency and Conflict both surface as 409.
func (s Status) HTTPStatus() int {
	switch s {
	case Success:
		return http.StatusOK
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict, Concurrency:
		return http.StatusConflict
	case Unprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// DefaultMessage returns the user-facing message used when an operation
// completes with this status and no more specific message was supplied.
func (s Status) DefaultMessage() string {
	switch s {
	case Success:
		return MsgSuccessful
	case NotFound:
		return MsgNotFound
	case Unauthorized:
		return MsgUnauthorized
	case Forbidden:
		return MsgForbidden
	case Unprocessable:
		return MsgUnprocessable
	case Conflict:
		return MsgConflict
	case Concurrency:
		return MsgConcurrency
	default:
		return MsgUnknown
	}
}

// Result is the tri-state envelope returned by every pipeline stage and
// every public operation: a status, an optional value and a human-readable
// message. The message always falls back to the status default, so a
// non-success result is never silently empty.
type Result[T any] struct {
	Status  Status `json:"status"`
	Value   T      `json:"value"`
	Message string `json:"message"`
}

// NewResult builds a result from its three parts. An empty message falls
// back to the status default.
func NewResult[T any](status Status, value T, message string) Result[T] {
	if message == "" {
		message = status.DefaultMessage()
	}
	return Result[T]{Status: status, Value: value, Message: message}
}

// Ok wraps a value in a successful result.
func Ok[T any](value T) Result[T] {
	return NewResult(Success, value, "")
}

// Fail builds a failed result carrying no value.
func Fail[T any](status Status, message string) Result[T] {
	var zero T
	return NewResult(status, zero, message)
}

// Succeeded reports whether the operation completed with status Success.
func (r Result[T]) Succeeded() bool { return r.Status == Success }
