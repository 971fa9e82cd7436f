package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sanLimbu/taskphotos/internal"
	"github.com/sanLimbu/taskphotos/internal/postgresql/db"
)

// Task represents the repository used for interacting with Task records.
type Task struct {
	q *db.Queries
}

// NewTask instantiates the Task repository.
func NewTask(d db.DBTX) *Task {
	return &Task{
		q: db.New(d),
	}
}

// Create inserts a new task record, created_at is assigned by the database.
func (t *Task) Create(ctx context.Context, params internal.CreateParams) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Create").End()

	photos := params.Photos
	if photos == nil {
		photos = []string{}
	}

	row, err := t.q.InsertTask(ctx, db.InsertTaskParams{
		Title:       params.Title,
		Description: params.Description,
		Priority:    newPriority(params.Priority),
		Status:      string(params.Status),
		Photos:      photos,
		CreatedBy:   newText(params.CreatedBy),
	})
	if err != nil {
		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "insert task")
	}

	return convertTask(db.Task{
		ID:          row.ID,
		Title:       params.Title,
		Description: params.Description,
		Priority:    newPriority(params.Priority),
		Status:      string(params.Status),
		Photos:      photos,
		CreatedBy:   newText(params.CreatedBy),
		CreatedAt:   row.CreatedAt,
	})
}

// Find returns the requested task by searching its id.
func (t *Task) Find(ctx context.Context, id string) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Find").End()

	val, err := newUUID(id)
	if err != nil {
		return internal.Task{}, err
	}

	res, err := t.q.SelectTask(ctx, val)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeNotFound, "task not found")
		}

		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "select task")
	}

	return convertTask(res)
}

// CreatedBetween returns the tasks created in [start, end), the range is evaluated by the database.
func (t *Task) CreatedBetween(ctx context.Context, start, end time.Time) ([]internal.Task, error) {
	defer newOTELSpan(ctx, "Task.CreatedBetween").End()

	rows, err := t.q.SelectTasksCreatedBetween(ctx, db.SelectTasksCreatedBetweenParams{
		StartAt: newTimestamp(start),
		EndAt:   newTimestamp(end),
	})
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "select tasks")
	}

	res := make([]internal.Task, 0, len(rows))

	for _, row := range rows {
		task, err := convertTask(row)
		if err != nil {
			return nil, err
		}

		res = append(res, task)
	}

	return res, nil
}
