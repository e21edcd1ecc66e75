package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"crudkit/internal/db"
	"crudkit/internal/domain"
	"crudkit/internal/repositories"
)

// Task is a unit of work tracked by the demo application.
type Task struct {
	domain.EntityFields
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Done        bool       `json:"done"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

var TaskName = domain.EntityName{Singular: "task", Plural: "tasks"}

// TaskMapper binds Task to the tasks table.
type TaskMapper struct{}

func (TaskMapper) Table() string { return "tasks" }

func (TaskMapper) Columns() []string {
	return []string{"id", "concurrency_stamp", "title", "description", "done", "due_date", "created_at"}
}

func (TaskMapper) Values(task *Task) []any {
	var dueDate any
	if task.DueDate != nil {
		dueDate = *task.DueDate
	}
	createdAt := task.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return []any{
		task.ID.String(),
		task.ConcurrencyStamp.String(),
		task.Title,
		db.NullIfEmpty(task.Description),
		task.Done,
		dueDate,
		createdAt,
	}
}

func (TaskMapper) Scan(scan func(dest ...any) error) (*Task, error) {
	var (
		task        Task
		id          string
		stamp       string
		description sql.NullString
		dueDate     sql.NullTime
	)
	if err := scan(&id, &stamp, &task.Title, &description, &task.Done, &dueDate, &task.CreatedAt); err != nil {
		return nil, err
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	task.ID = parsedID
	if parsedStamp, err := uuid.Parse(stamp); err == nil {
		task.ConcurrencyStamp = parsedStamp
	}
	task.Description = description.String
	if dueDate.Valid {
		due := dueDate.Time
		task.DueDate = &due
	}
	return &task, nil
}

// TaskFilters searches titles and descriptions and sorts by a small column
// whitelist.
type TaskFilters struct {
	repositories.BaseFilterProcessor
}

func (TaskFilters) Search(term string) (string, []any) {
	like := "%" + term + "%"
	return "(title LIKE ? OR description LIKE ?)", []any{like, like}
}

func (TaskFilters) SortColumn(name string) string {
	switch name {
	case "title":
		return "title"
	case "dueDate":
		return "due_date"
	case "createdAt":
		return "created_at"
	default:
		return "created_at"
	}
}
