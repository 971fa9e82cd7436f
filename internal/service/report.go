package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/sanLimbu/taskphotos/internal"
)

// Report defines the application service computing completion statistics.
type Report struct {
	logger *zap.Logger
	repo   TaskReportRepository
	now    func() time.Time
}

// NewReport instantiates the Report service, a nil now means time.Now.
func NewReport(logger *zap.Logger, repo TaskReportRepository, now func() time.Time) *Report {
	if now == nil {
		now = time.Now
	}

	return &Report{
		logger: logger,
		repo:   repo,
		now:    now,
	}
}

// Monthly summarizes the tasks created during the current calendar month. The month is derived from
// the local clock, never the store's.
func (r *Report) Monthly(ctx context.Context) (internal.MonthlyReport, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Report.Monthly")
	defer span.End()

	start, end := internal.MonthWindow(r.now())

	tasks, err := r.repo.CreatedBetween(ctx, start, end)
	if err != nil {
		return internal.MonthlyReport{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "repo.CreatedBetween")
	}

	// Stores may hand back rows they could not date, those are dropped here.
	res := internal.Aggregate(tasks, start, end)

	if dropped := len(tasks) - res.Total; dropped > 0 {
		r.logger.Info("Skipped tasks outside the month", zap.Int("count", dropped))
	}

	span.SetAttributes(
		attribute.Int("report.total", res.Total),
		attribute.Int("report.finished", res.Finished),
	)

	return res, nil
}
