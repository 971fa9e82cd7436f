package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/global"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/sanLimbu/taskphotos/internal"
)

// Not parallel: the meter provider is process wide.
func TestSubmission_Metrics(t *testing.T) {
	reader := metric.NewManualReader()
	global.SetMeterProvider(metric.NewMeterProvider(metric.WithReader(reader)))

	svc, _ := newSubmission(t)

	draft := &internal.Draft{Title: "Inspect roof", Priority: "High"}
	draft.AddImages(imageRefs(2)...)

	_, err := svc.SaveTask(context.Background(), draft)
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	sums := map[string]int64{}

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}

			for _, dp := range sum.DataPoints {
				sums[m.Name] += dp.Value
			}
		}
	}

	assert.Equal(t, int64(2), sums["taskphotos.photos.uploaded"])
	assert.Equal(t, int64(1), sums["taskphotos.tasks.created"])
}
