package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"

	"github.com/sanLimbu/taskphotos/internal"
)

// Task defines the application service in charge of reading Tasks.
type Task struct {
	repo TaskRepository
}

// NewTask ...
func NewTask(repo TaskRepository) *Task {
	return &Task{
		repo: repo,
	}
}

// Task gets an existing Task from the datastore.
func (t *Task) Task(ctx context.Context, id string) (internal.Task, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.Task")
	defer span.End()

	task, err := t.repo.Find(ctx, id)
	if err != nil {
		return internal.Task{}, fmt.Errorf("repo find: %w", err)
	}

	return task, nil
}
