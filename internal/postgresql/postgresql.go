package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/sanLimbu/taskphotos/internal"
	"github.com/sanLimbu/taskphotos/internal/postgresql/db"
)

//go:generate sqlc generate

const otelName = "github.com/sanLimbu/taskphotos/internal/postgresql"

func convertPriority(p db.Priority) (internal.Priority, error) {
	switch p {
	case db.PriorityLow:
		return internal.PriorityLow, nil
	case db.PriorityMedium:
		return internal.PriorityMedium, nil
	case db.PriorityHigh:
		return internal.PriorityHigh, nil
	}

	return internal.PriorityNone, fmt.Errorf("unknown value: %s", p)
}

func newPriority(p internal.Priority) db.Priority {
	switch p {
	case internal.PriorityLow:
		return db.PriorityLow
	case internal.PriorityMedium:
		return db.PriorityMedium
	case internal.PriorityHigh:
		return db.PriorityHigh
	}

	return "invalid"
}

func newTimestamp(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{
		Time:  t,
		Valid: !t.IsZero(),
	}
}

func newText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}

	return pgtype.Text{String: *s, Valid: true}
}

func newUUID(id string) (pgtype.UUID, error) {
	val, err := uuid.Parse(id)
	if err != nil {
		return pgtype.UUID{}, internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "uuid.Parse")
	}

	return pgtype.UUID{Bytes: val, Valid: true}, nil
}

func convertTask(row db.Task) (internal.Task, error) {
	priority, err := convertPriority(row.Priority)
	if err != nil {
		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "convert priority")
	}

	res := internal.Task{
		ID:          uuid.UUID(row.ID.Bytes).String(),
		Title:       row.Title,
		Description: row.Description,
		Priority:    priority,
		Status:      internal.Status(row.Status),
		Photos:      row.Photos,
	}

	if res.Photos == nil {
		res.Photos = []string{}
	}

	if row.CreatedBy.Valid {
		createdBy := row.CreatedBy.String
		res.CreatedBy = &createdBy
	}

	if row.CreatedAt.Valid {
		res.CreatedAt = row.CreatedAt.Time
	}

	return res, nil
}

func newOTELSpan(ctx context.Context, name string) trace.Span {
	_, span := otel.Tracer(otelName).Start(ctx, name)

	span.SetAttributes(semconv.DBSystemPostgreSQL)

	return span
}
