package memcached

import (
	"context"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"go.uber.org/zap"

	"github.com/sanLimbu/taskphotos/internal"
)

// Task caches Task documents in front of a TaskStore.
type Task struct {
	client     *memcache.Client
	orig       TaskStore
	expiration time.Duration
	logger     *zap.Logger
}

// TaskStore is the decorated store.
type TaskStore interface {
	Create(ctx context.Context, params internal.CreateParams) (internal.Task, error)
	Find(ctx context.Context, id string) (internal.Task, error)
}

// NewTask instantiates the caching Task repository.
func NewTask(client *memcache.Client, orig TaskStore, logger *zap.Logger) *Task {
	return &Task{
		client:     client,
		orig:       orig,
		expiration: 15 * time.Minute,
		logger:     logger,
	}
}

// Create writes through to the store and primes the cache.
func (t *Task) Create(ctx context.Context, params internal.CreateParams) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Create").End()

	task, err := t.orig.Create(ctx, params)
	if err != nil {
		return internal.Task{}, err
	}

	if err := setTask(ctx, t.client, cacheKey(task.ID), &task, t.expiration); err != nil {
		t.logger.Warn("Couldn't cache task", zap.String("task", task.ID), zap.Error(err))
	}

	return task, nil
}

// Find reads through the cache.
func (t *Task) Find(ctx context.Context, id string) (internal.Task, error) {
	defer newOTELSpan(ctx, "Task.Find").End()

	var res internal.Task

	if err := getTask(ctx, t.client, cacheKey(id), &res); err == nil {
		return res, nil
	}

	res, err := t.orig.Find(ctx, id)
	if err != nil {
		return internal.Task{}, err
	}

	if err := setTask(ctx, t.client, cacheKey(res.ID), &res, t.expiration); err != nil {
		t.logger.Warn("Couldn't cache task", zap.String("task", res.ID), zap.Error(err))
	}

	return res, nil
}

func cacheKey(id string) string {
	return "task:" + id
}
