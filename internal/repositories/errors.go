package repositories

import (
	"errors"
	"fmt"

	"crudkit/internal/domain"
)

// ErrNotFound reports that no entity exists under the requested ID. It is
// an expected outcome; pipelines map it to status NotFound.
var ErrNotFound = errors.New("entity not found")

// StatusError carries an operation status across the repository boundary.
// The REST-backed repository uses it so a remote failure keeps its status
// instead of collapsing to Unknown.
type StatusError struct {
	Status  domain.Status
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Status, e.Message)
	}
	return e.Status.String()
}

// IsNotFound reports whether err represents a missing entity.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var se *StatusError
	return errors.As(err, &se) && se.Status == domain.NotFound
}

// FailureStatus extracts the operation status carried by err, defaulting to
// Unknown for unexpected errors.
func FailureStatus(err error) domain.Status {
	if IsNotFound(err) {
		return domain.NotFound
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return domain.Unknown
}
