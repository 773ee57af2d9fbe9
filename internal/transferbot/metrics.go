package transferbot

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/gabapcia/blocktransfer/internal/transferbot"

type metrics struct {
	notifications    metric.Int64Counter
	streamErrors     metric.Int64Counter
	transfers        metric.Int64Counter
	transferDuration metric.Float64Histogram
}

// newMetrics creates the loop instruments. Instrument errors are reported to
// the global OpenTelemetry error handler and a usable instrument is still returned.
func newMetrics(provider metric.MeterProvider) *metrics {
	meter := provider.Meter(meterName)

	notifications, err := meter.Int64Counter("blocktransfer.notifications",
		metric.WithDescription("Block notifications received"))
	if err != nil {
		otel.Handle(err)
	}

	streamErrors, err := meter.Int64Counter("blocktransfer.stream_errors",
		metric.WithDescription("Stream elements that carried an error"))
	if err != nil {
		otel.Handle(err)
	}

	transfers, err := meter.Int64Counter("blocktransfer.transfers",
		metric.WithDescription("Transfer attempts by outcome"))
	if err != nil {
		otel.Handle(err)
	}

	transferDuration, err := meter.Float64Histogram("blocktransfer.transfer.duration",
		metric.WithDescription("Transfer attempt duration"),
		metric.WithUnit("s"))
	if err != nil {
		otel.Handle(err)
	}

	return &metrics{
		notifications:    notifications,
		streamErrors:     streamErrors,
		transfers:        transfers,
		transferDuration: transferDuration,
	}
}

func (m *metrics) recordTransfer(ctx context.Context, failed bool, stage string, elapsed time.Duration) {
	outcome := "success"
	if failed {
		outcome = "failure"
	}

	attrs := metric.WithAttributes(
		attribute.String("outcome", outcome),
		attribute.String("stage", stage),
	)

	m.transfers.Add(ctx, 1, attrs)
	m.transferDuration.Record(ctx, elapsed.Seconds(), attrs)
}
