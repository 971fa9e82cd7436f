package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sanLimbu/taskphotos/internal"
	"github.com/sanLimbu/taskphotos/internal/service"
	"github.com/sanLimbu/taskphotos/internal/service/servicetesting"
)

func TestReport_Monthly(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.February, 15, 18, 0, 0, 0, time.UTC)
	at := func(m time.Month, d int) time.Time { return time.Date(2024, m, d, 8, 0, 0, 0, time.UTC) }

	t.Run("OK", func(t *testing.T) {
		t.Parallel()

		repo := &servicetesting.FakeTaskReportRepository{}
		repo.CreatedBetweenReturns([]internal.Task{
			{ID: "jan", Status: internal.StatusFinished, CreatedAt: at(time.January, 15)},
			{ID: "feb-1", Status: internal.StatusFinished, CreatedAt: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "feb-28", Status: "finished", CreatedAt: at(time.February, 28)},
			{ID: "mar", Status: internal.StatusFinished, CreatedAt: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "undated", Status: internal.StatusFinished},
		}, nil)

		svc := service.NewReport(zap.NewNop(), repo, func() time.Time { return now })

		res, err := svc.Monthly(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 2, res.Total)
		assert.Equal(t, 1, res.Finished)
		assert.Equal(t, 50, res.Rate)

		require.Equal(t, 1, repo.CreatedBetweenCallCount())
		_, start, end := repo.CreatedBetweenArgsForCall(0)
		assert.True(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC).Equal(start))
		assert.True(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC).Equal(end))
		assert.True(t, start.Equal(res.Start))
		assert.True(t, end.Equal(res.End))
	})

	t.Run("OK: empty month", func(t *testing.T) {
		t.Parallel()

		repo := &servicetesting.FakeTaskReportRepository{}

		res, err := service.NewReport(zap.NewNop(), repo, func() time.Time { return now }).Monthly(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, res.Total)
		assert.Equal(t, 0, res.Rate)
	})

	t.Run("ERR", func(t *testing.T) {
		t.Parallel()

		repo := &servicetesting.FakeTaskReportRepository{}
		repo.CreatedBetweenReturns(nil, errors.New("connection refused"))

		_, err := service.NewReport(zap.NewNop(), repo, nil).Monthly(context.Background())
		requireCode(t, err, internal.ErrorCodeUnknown)
	})
}

func TestTask_Task(t *testing.T) {
	t.Parallel()

	repo := &servicetesting.FakeTaskRepository{}
	repo.FindReturns(internal.Task{ID: "abc", Title: "Water plants"}, nil)

	task, err := service.NewTask(repo).Task(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "Water plants", task.Title)

	repo.FindReturns(internal.Task{}, internal.NewErrorf(internal.ErrorCodeNotFound, "not found"))

	_, err = service.NewTask(repo).Task(context.Background(), "zzz")
	requireCode(t, err, internal.ErrorCodeNotFound)
}
