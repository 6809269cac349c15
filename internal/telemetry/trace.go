package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "productos-admin"

// StartSpan opens an internal span named after the console operation.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	opts := []trace.SpanStartOption{trace.WithSpanKind(trace.SpanKindInternal)}
	if len(attrs) > 0 {
		opts = append(opts, trace.WithAttributes(attrs...))
	}
	return otel.Tracer(tracerName).Start(ctx, name, opts...)
}

// EndSpan records *errPtr (if any) on the span and ends it. Meant to be
// deferred with a pointer to the named error return.
func EndSpan(span trace.Span, errPtr *error) {
	defer span.End()

	if errPtr == nil || *errPtr == nil {
		span.SetStatus(codes.Ok, "")
		return
	}
	span.RecordError(*errPtr)
	span.SetStatus(codes.Error, (*errPtr).Error())
}
