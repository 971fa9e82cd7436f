package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/sanLimbu/taskphotos/internal"
)

const otelName = "github.com/sanLimbu/taskphotos/internal/redis"

// DefaultGateTTL bounds how long a crashed save keeps its draft locked.
const DefaultGateTTL = 2 * time.Minute

// SaveGate prevents the same draft from being saved concurrently by different processes.
type SaveGate struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewSaveGate instantiates the SaveGate, a non positive ttl uses DefaultGateTTL.
func NewSaveGate(client *redis.Client, ttl time.Duration) *SaveGate {
	if ttl <= 0 {
		ttl = DefaultGateTTL
	}

	return &SaveGate{
		client: client,
		prefix: "taskphotos:save:",
		ttl:    ttl,
	}
}

// Acquire returns false when the key is already held.
func (g *SaveGate) Acquire(ctx context.Context, key string) (bool, error) {
	defer newOTELSpan(ctx, "SaveGate.Acquire").End()

	ok, err := g.client.SetNX(ctx, g.prefix+key, time.Now().UnixMilli(), g.ttl).Result()
	if err != nil {
		return false, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "client.SetNX")
	}

	return ok, nil
}

// Release frees the key.
func (g *SaveGate) Release(ctx context.Context, key string) error {
	defer newOTELSpan(ctx, "SaveGate.Release").End()

	if err := g.client.Del(ctx, g.prefix+key).Err(); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "client.Del")
	}

	return nil
}

func newOTELSpan(ctx context.Context, name string) trace.Span {
	_, span := otel.Tracer(otelName).Start(ctx, name)

	span.SetAttributes(semconv.DBSystemRedis)

	return span
}
