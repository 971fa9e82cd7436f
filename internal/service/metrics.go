package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric/global"
	"go.opentelemetry.io/otel/metric/instrument"
)

type counter struct {
	c instrument.Int64Counter
}

func newCounter(name, description string) counter {
	c, err := global.Meter(otelName).Int64Counter(name, instrument.WithDescription(description))
	if err != nil {
		otel.Handle(err)
		return counter{}
	}

	return counter{c: c}
}

func (c counter) add(ctx context.Context, n int64, attrs ...attribute.KeyValue) {
	if c.c == nil {
		return
	}

	c.c.Add(ctx, n, attrs...)
}
