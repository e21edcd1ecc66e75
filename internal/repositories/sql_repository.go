package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"crudkit/internal/domain"
)

// SQLRepository is a Repository backed by a relational database through
// database/sql. Query translation for search, sort and eager includes is
// delegated to the entity's FilterProcessor; row mapping to its
// EntityMapper.
type SQLRepository[T domain.Entity] struct {
	DB      *sql.DB
	Mapper  EntityMapper[T]
	Filters FilterProcessor
}

func NewSQLRepository[T domain.Entity](db *sql.DB, mapper EntityMapper[T], filters FilterProcessor) *SQLRepository[T] {
	if filters == nil {
		filters = BaseFilterProcessor{}
	}
	return &SQLRepository[T]{DB: db, Mapper: mapper, Filters: filters}
}

func (r *SQLRepository[T]) selectColumns() string {
	return strings.Join(r.Mapper.Columns(), ", ")
}

// Read loads a single entity by ID. The filter only contributes eager
// includes on this path.
func (r *SQLRepository[T]) Read(ctx context.Context, id uuid.UUID, filter *domain.Filter) (T, error) {
	var zero T
	filter = r.Filters.ModifyFilter(filter, domain.ActionRead)

	query := fmt.Sprintf("SELECT %s FROM %s", r.selectColumns(), r.Mapper.Table())
	if filter != nil && len(filter.Includes) > 0 {
		if joins := r.Filters.Joins(filter.Includes); joins != "" {
			query += " " + joins
		}
	}
	query += " WHERE id = ?"

	row := r.DB.QueryRowContext(ctx, query, id)
	entity, err := r.Mapper.Scan(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, err
	}
	return entity, nil
}

// ReadAll loads a page of entities. Stages apply in order: search
// predicate, includes, sort, offset, limit. The total count ignores paging
// but keeps the search predicate, and a page size of zero disables paging
// entirely.
func (r *SQLRepository[T]) ReadAll(ctx context.Context, filter *domain.Filter) (*domain.PagedQuery[T], error) {
	filter = r.Filters.ModifyFilter(filter, domain.ActionReadAll)

	var (
		where string
		args  []any
	)
	if filter != nil && filter.SearchTerm != "" {
		if clause, clauseArgs := r.Filters.Search(filter.SearchTerm); clause != "" {
			where = " WHERE " + clause
			args = clauseArgs
		}
	}

	query := fmt.Sprintf("SELECT %s FROM %s", r.selectColumns(), r.Mapper.Table())
	if filter != nil {
		if joins := r.Filters.Joins(filter.Includes); joins != "" {
			query += " " + joins
		}
	}
	query += where

	if filter != nil {
		column := r.Filters.SortColumn(filter.SortName)
		direction := "ASC"
		if filter.SortDescending {
			direction = "DESC"
		}
		query += fmt.Sprintf(" ORDER BY %s %s", column, direction)

		if filter.PageSize > 0 {
			offset := (filter.NormalPage() - 1) * filter.PageSize
			query += fmt.Sprintf(" LIMIT %d OFFSET %d", filter.PageSize, offset)
		}
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		entity, err := r.Mapper.Scan(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", r.Mapper.Table(), where)
	var total int
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, err
	}

	return domain.NewPagedQuery(items, total), nil
}

// Create inserts the entity, assigning a fresh ID when none is set, and
// returns the primary key.
func (r *SQLRepository[T]) Create(ctx context.Context, entity T) (uuid.UUID, error) {
	if entity.GetID() == uuid.Nil {
		entity.SetID(uuid.New())
	}

	columns := r.Mapper.Columns()
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		r.Mapper.Table(), strings.Join(columns, ", "), placeholders,
	)

	if _, err := r.DB.ExecContext(ctx, query, r.Mapper.Values(entity)...); err != nil {
		return uuid.Nil, err
	}
	return entity.GetID(), nil
}

// Update rewrites every mapped column except the primary key. Returns false
// when no row matched the entity's ID.
func (r *SQLRepository[T]) Update(ctx context.Context, entity T) (bool, error) {
	columns := r.Mapper.Columns()
	values := r.Mapper.Values(entity)
	if len(columns) < 2 || columns[0] != "id" {
		return false, fmt.Errorf("mapper for %s must declare id as its first column", r.Mapper.Table())
	}

	assignments := make([]string, 0, len(columns)-1)
	for _, column := range columns[1:] {
		assignments = append(assignments, column+" = ?")
	}
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = ?",
		r.Mapper.Table(), strings.Join(assignments, ", "),
	)

	args := append(append([]any{}, values[1:]...), values[0])
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Delete removes the entity with the given ID. Returns false when no row
// matched.
func (r *SQLRepository[T]) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", r.Mapper.Table())
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ReadConcurrencyStamp reads the currently persisted stamp for the entity.
func (r *SQLRepository[T]) ReadConcurrencyStamp(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	query := fmt.Sprintf("SELECT concurrency_stamp FROM %s WHERE id = ?", r.Mapper.Table())
	var stamp uuid.UUID
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&stamp); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, ErrNotFound
		}
		return uuid.Nil, err
	}
	return stamp, nil
}
