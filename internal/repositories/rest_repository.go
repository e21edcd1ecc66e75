package repositories

import (
	"context"
	"net/http"
	"reflect"
	"strings"

	"github.com/google/uuid"

	"crudkit/internal/domain"
	"crudkit/internal/rest"
)

// URLProvider constructs the CRUD endpoints for one entity type. Create and
// update receive the full entity so implementations can derive
// parent-resource paths from its fields.
type URLProvider[T domain.Entity] interface {
	ReadURL(id uuid.UUID) string
	ListURL() string
	CreateURL(entity T) string
	UpdateURL(entity T) string
	DeleteURL(id uuid.UUID) string
}

// EndpointProvider is the common-case URLProvider: every endpoint hangs off
// a single resource path, e.g. "/api/tasks".
type EndpointProvider[T domain.Entity] struct {
	Path string
}

func (p EndpointProvider[T]) base() string { return strings.TrimSuffix(p.Path, "/") }

func (p EndpointProvider[T]) ReadURL(id uuid.UUID) string { return p.base() + "/" + id.String() }
func (p EndpointProvider[T]) ListURL() string             { return p.base() }
func (p EndpointProvider[T]) CreateURL(T) string          { return p.base() }
func (p EndpointProvider[T]) UpdateURL(entity T) string {
	return p.base() + "/" + entity.GetID().String()
}
func (p EndpointProvider[T]) DeleteURL(id uuid.UUID) string { return p.base() + "/" + id.String() }

// RestRepository is a Repository backed by a remote REST API. Each call
// maps to one HTTP verb; the response envelope's notifications are replayed
// into the local sink, and a missing envelope on an otherwise-successful
// response is a failure because callers always expect a value.
type RestRepository[T domain.Entity] struct {
	Client   *rest.Client
	URLs     URLProvider[T]
	Notifier domain.Notifier
}

func NewRestRepository[T domain.Entity](client *rest.Client, urls URLProvider[T], notifier domain.Notifier) *RestRepository[T] {
	return &RestRepository[T]{Client: client, URLs: urls, Notifier: notifier}
}

func (r *RestRepository[T]) Read(ctx context.Context, id uuid.UUID, filter *domain.Filter) (T, error) {
	var zero T
	entity, err := call[T](ctx, r.Client, r.Notifier, http.MethodGet, r.URLs.ReadURL(id), filter)
	if err != nil {
		return zero, err
	}
	if isNilEntity(entity) {
		return zero, ErrNotFound
	}
	return entity, nil
}

func (r *RestRepository[T]) ReadAll(ctx context.Context, filter *domain.Filter) (*domain.PagedQuery[T], error) {
	page, err := call[*domain.PagedQuery[T]](ctx, r.Client, r.Notifier, http.MethodGet, r.URLs.ListURL(), filter)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return domain.NewPagedQuery[T](nil, 0), nil
	}
	return page, nil
}

func (r *RestRepository[T]) Create(ctx context.Context, entity T) (uuid.UUID, error) {
	return call[uuid.UUID](ctx, r.Client, r.Notifier, http.MethodPost, r.URLs.CreateURL(entity), entity)
}

func (r *RestRepository[T]) Update(ctx context.Context, entity T) (bool, error) {
	return call[bool](ctx, r.Client, r.Notifier, http.MethodPut, r.URLs.UpdateURL(entity), entity)
}

func (r *RestRepository[T]) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return call[bool](ctx, r.Client, r.Notifier, http.MethodDelete, r.URLs.DeleteURL(id), nil)
}

func (r *RestRepository[T]) ReadConcurrencyStamp(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	entity, err := r.Read(ctx, id, nil)
	if err != nil {
		return uuid.Nil, err
	}
	return entity.GetConcurrencyStamp(), nil
}

// call performs one envelope round trip: send, replay notifications, unwrap
// the typed result. A nil envelope maps to a StatusError carrying the
// transport-derived status so pipelines keep the distinction.
func call[X any](ctx context.Context, client *rest.Client, notifier domain.Notifier, method, url string, input any) (X, error) {
	var zero X
	res := rest.Send[domain.WebResult[X]](ctx, client, method, url, input)

	envelope := res.Value
	if envelope == nil {
		status := res.Status
		message := envelopeFailureMessage(status)
		if status == domain.Success {
			// A successful transport response with no envelope is itself a
			// failure: callers always expect a payload.
			status = domain.Unknown
		}
		if notifier != nil {
			notifier.Error(message)
		}
		return zero, &StatusError{Status: status, Message: message}
	}

	if notifier != nil {
		domain.Replay(notifier, envelope.Notifications)
	}
	return envelope.Result, nil
}

func envelopeFailureMessage(status domain.Status) string {
	switch status {
	case domain.Success:
		return domain.MsgServerNoPayload
	case domain.NotFound, domain.Unauthorized, domain.Forbidden, domain.Unprocessable, domain.Conflict, domain.Concurrency:
		return status.DefaultMessage()
	default:
		return domain.MsgUnknown
	}
}

// isNilEntity reports whether a generically-typed entity is a nil pointer.
// Entities are pointer types, so a JSON null decodes to one.
func isNilEntity(v any) bool {
	rv := reflect.ValueOf(v)
	return !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil())
}
