package repositories

import (
	"context"

	"github.com/google/uuid"

	"crudkit/internal/domain"
)

// Repository stores, updates and retrieves entities. Both the SQL-backed
// and the REST-backed implementations satisfy this contract with identical
// semantics, so the same pipeline runs against either.
//
// Read and ReadConcurrencyStamp return ErrNotFound when no entity exists
// under the given ID; other errors are unexpected failures.
type Repository[T domain.Entity] interface {
	Read(ctx context.Context, id uuid.UUID, filter *domain.Filter) (T, error)
	ReadAll(ctx context.Context, filter *domain.Filter) (*domain.PagedQuery[T], error)
	Create(ctx context.Context, entity T) (uuid.UUID, error)
	Update(ctx context.Context, entity T) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ReadConcurrencyStamp(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}

// FilterProcessor translates the filter contract into SQL fragments for one
// entity type. Implementations own the column whitelist, so user-supplied
// sort/search input never reaches the query text directly.
type FilterProcessor interface {
	// Search returns a WHERE fragment and its arguments for a free-text
	// term, or an empty clause to skip search filtering.
	Search(term string) (clause string, args []any)
	// SortColumn maps a requested sort name to a real column. Unknown or
	// empty names map to the default sort column.
	SortColumn(name string) string
	// Joins returns the JOIN clauses needed to eagerly load the named
	// relations, or an empty string.
	Joins(includes []string) string
	// ModifyFilter rewrites the filter for the given action before the
	// query is built. Most implementations return it unchanged.
	ModifyFilter(filter *domain.Filter, action domain.ActionType) *domain.Filter
}

// BaseFilterProcessor is an embeddable FilterProcessor with inert defaults:
// no search, no joins, no rewriting, and sorting by id. Entity processors
// embed it and override what they need.
type BaseFilterProcessor struct{}

func (BaseFilterProcessor) Search(string) (string, []any) { return "", nil }

func (BaseFilterProcessor) SortColumn(string) string { return "id" }

func (BaseFilterProcessor) Joins([]string) string { return "" }

func (BaseFilterProcessor) ModifyFilter(filter *domain.Filter, _ domain.ActionType) *domain.Filter {
	return filter
}

// EntityMapper binds an entity type to its table. By convention Columns()
// starts with "id" followed by "concurrency_stamp", and Values returns the
// entity's fields in the same order Columns declares them.
type EntityMapper[T domain.Entity] interface {
	Table() string
	Columns() []string
	Values(entity T) []any
	// Scan builds an entity from a row. The scan argument is row.Scan or
	// rows.Scan with destinations matching Columns order.
	Scan(scan func(dest ...any) error) (T, error)
}
