package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records token store and replacer metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordReset records a store reset with its trigger ("init", "navigation", "manual").
	RecordReset(ctx context.Context, reason string)

	// RecordWrite records a set or clear operation.
	RecordWrite(ctx context.Context, op string, err error)

	// RecordReplace records a replace call with the number of placeholders applied.
	RecordReplace(ctx context.Context, placeholders int, duration time.Duration)

	// RecordSnapshot records a snapshot save.
	RecordSnapshot(ctx context.Context, name string, sizeBytes int64)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	resets         metric.Int64Counter
	writes         metric.Int64Counter
	writeErrors    metric.Int64Counter
	replaceCalls   metric.Int64Counter
	replaceLatency metric.Float64Histogram
	placeholders   metric.Int64Histogram
	snapshotSize   metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("tokens")

	resets, err := meter.Int64Counter("tokens.store.resets",
		metric.WithDescription("Number of token store resets"),
	)
	if err != nil {
		return nil, err
	}

	writes, err := meter.Int64Counter("tokens.store.writes",
		metric.WithDescription("Number of token set and clear operations"),
	)
	if err != nil {
		return nil, err
	}

	writeErrors, err := meter.Int64Counter("tokens.store.write_errors",
		metric.WithDescription("Number of rejected token writes"),
	)
	if err != nil {
		return nil, err
	}

	replaceCalls, err := meter.Int64Counter("tokens.replace.calls",
		metric.WithDescription("Number of replace calls"),
	)
	if err != nil {
		return nil, err
	}

	replaceLatency, err := meter.Float64Histogram("tokens.replace.latency_ms",
		metric.WithDescription("Replace latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	placeholders, err := meter.Int64Histogram("tokens.replace.placeholders",
		metric.WithDescription("Number of placeholders available per replace call"),
	)
	if err != nil {
		return nil, err
	}

	snapshotSize, err := meter.Int64Histogram("tokens.snapshot.size_bytes",
		metric.WithDescription("Token snapshot size in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		resets:         resets,
		writes:         writes,
		writeErrors:    writeErrors,
		replaceCalls:   replaceCalls,
		replaceLatency: replaceLatency,
		placeholders:   placeholders,
		snapshotSize:   snapshotSize,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordReset records a store reset.
func (m *otelMetrics) RecordReset(ctx context.Context, reason string) {
	m.resets.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

// RecordWrite records a set or clear.
func (m *otelMetrics) RecordWrite(ctx context.Context, op string, err error) {
	attrs := metric.WithAttributes(attribute.String("op", op))
	if err != nil {
		m.writeErrors.Add(ctx, 1, attrs)
		return
	}
	m.writes.Add(ctx, 1, attrs)
}

// RecordReplace records a replace call.
func (m *otelMetrics) RecordReplace(ctx context.Context, placeholders int, duration time.Duration) {
	m.replaceCalls.Add(ctx, 1)
	m.replaceLatency.Record(ctx, float64(duration.Microseconds())/1000)
	m.placeholders.Record(ctx, int64(placeholders))
}

// RecordSnapshot records a snapshot save.
func (m *otelMetrics) RecordSnapshot(ctx context.Context, name string, sizeBytes int64) {
	m.snapshotSize.Record(ctx, sizeBytes, metric.WithAttributes(attribute.String("snapshot", name)))
}
