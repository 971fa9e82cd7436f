package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sanLimbu/taskphotos/internal"
)

// Task represents the repository used for interacting with Task records stored in SQLite.
type Task struct {
	db *sql.DB
}

// NewTask instantiates the Task repository.
func NewTask(db *sql.DB) *Task {
	return &Task{
		db: db,
	}
}

// Create inserts a new record, created_at is assigned by SQLite.
func (t *Task) Create(ctx context.Context, params internal.CreateParams) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Create").End()

	photos := params.Photos
	if photos == nil {
		photos = []string{}
	}

	b, err := json.Marshal(photos)
	if err != nil {
		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "json.Marshal")
	}

	id := uuid.NewString()

	var createdAt string

	err = t.db.QueryRowContext(ctx,
		`INSERT INTO tasks (id, title, description, priority, status, photos, created_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 RETURNING created_at`,
		id,
		params.Title,
		params.Description,
		params.Priority.String(),
		string(params.Status),
		string(b),
		params.CreatedBy,
	).Scan(&createdAt)
	if err != nil {
		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "insert task")
	}

	res := internal.Task{
		ID:          id,
		Title:       params.Title,
		Description: params.Description,
		Priority:    params.Priority,
		Status:      params.Status,
		Photos:      photos,
		CreatedBy:   params.CreatedBy,
	}

	res.CreatedAt, _ = internal.ParseCreatedAt(createdAt)

	return res, nil
}

// Find returns the requested task by searching its id.
func (t *Task) Find(ctx context.Context, id string) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Find").End()

	row := t.db.QueryRowContext(ctx,
		`SELECT id, title, description, priority, status, photos, created_by, created_at
		 FROM tasks WHERE id = ?`, id)

	res, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeNotFound, "task not found")
		}

		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "select task")
	}

	return res, nil
}

// CreatedBetween returns the tasks created in [start, end). created_at is compared through julianday
// so rows written as "YYYY-MM-DD HH:MM:SS" match as well, rows it can't read are never returned.
func (t *Task) CreatedBetween(ctx context.Context, start, end time.Time) ([]internal.Task, error) {
	defer newOTELSpan(ctx, "Task.CreatedBetween").End()

	rows, err := t.db.QueryContext(ctx,
		`SELECT id, title, description, priority, status, photos, created_by, created_at
		 FROM tasks
		 WHERE julianday(created_at) >= julianday(?) AND julianday(created_at) < julianday(?)
		 ORDER BY julianday(created_at), id`,
		start.UTC().Format(createdAtLayout),
		end.UTC().Format(createdAtLayout),
	)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "select tasks")
	}
	defer rows.Close()

	var res []internal.Task

	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "scan task")
		}

		res = append(res, task)
	}

	if err := rows.Err(); err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "rows.Err")
	}

	return res, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(s scanner) (internal.Task, error) {
	var (
		res       internal.Task
		priority  string
		status    string
		photos    string
		createdBy sql.NullString
		createdAt sql.NullString
	)

	if err := s.Scan(&res.ID, &res.Title, &res.Description, &priority, &status, &photos, &createdBy, &createdAt); err != nil {
		return internal.Task{}, err
	}

	// Values written by other clients may be outside the enum, they read as PriorityNone.
	res.Priority, _ = internal.ParsePriority(priority)
	res.Status = internal.Status(status)

	if err := json.Unmarshal([]byte(photos), &res.Photos); err != nil || res.Photos == nil {
		res.Photos = []string{}
	}

	if createdBy.Valid {
		res.CreatedBy = &createdBy.String
	}

	// Undated rows keep a zero CreatedAt and are left out of reports.
	res.CreatedAt, _ = internal.ParseCreatedAt(createdAt.String)

	return res, nil
}
