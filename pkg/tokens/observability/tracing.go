package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer uses the global OTel tracer provider.
var tracer = otel.Tracer("tokens")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartReplaceSpan starts a span for a replace call.
	StartReplaceSpan(ctx context.Context, inputKind string, placeholders int) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct {
	tracer trace.Tracer
}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager takes its tracer from the global OTel tracer provider when
// it is created. Configure the provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{tracer: otel.Tracer("tokens")}
}

// StartReplaceSpan starts a span for a replace call.
func (m *otelSpanManager) StartReplaceSpan(ctx context.Context, inputKind string, placeholders int) (context.Context, trace.Span) {
	return startReplaceSpan(ctx, m.tracer, inputKind, placeholders)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	EndSpanWithError(span, err)
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	AddSpanEvent(ctx, name, attrs...)
}

// StartReplaceSpan starts a span for a replace call.
// Uses the global OTel tracer.
func StartReplaceSpan(ctx context.Context, inputKind string, placeholders int) (context.Context, trace.Span) {
	return startReplaceSpan(ctx, tracer, inputKind, placeholders)
}

func startReplaceSpan(ctx context.Context, t trace.Tracer, inputKind string, placeholders int) (context.Context, trace.Span) {
	return t.Start(ctx, "tokens.replace",
		trace.WithAttributes(
			attribute.String("input.kind", inputKind),
			attribute.Int("placeholders", placeholders),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span in context.
func AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
