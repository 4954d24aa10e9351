package trace

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// SpanName is the name of the span exported for every drag.
const SpanName = "divider.drag"

// OTLPExporter exports completed gestures to an OTLP endpoint
type OTLPExporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewOTLPExporter creates an OTLP exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set
// Returns nil if endpoint not configured (disabled)
func NewOTLPExporter(ctx context.Context) (*OTLPExporter, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local dev; make configurable
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "panes"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return NewExporter(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

// NewExporter wraps an existing tracer provider.
func NewExporter(provider *sdktrace.TracerProvider) *OTLPExporter {
	return &OTLPExporter{
		provider: provider,
		tracer:   provider.Tracer("panes/gesture"),
	}
}

// ExportGesture exports a completed gesture as a single span. The span's
// IDs are written back to g so the history view shows what the collector
// received.
func (e *OTLPExporter) ExportGesture(ctx context.Context, g *Gesture) error {
	if e == nil || g == nil {
		return nil
	}

	_, span := e.tracer.Start(ctx, SpanName,
		oteltrace.WithTimestamp(g.StartTime),
		oteltrace.WithAttributes(gestureAttributes(g)...),
	)
	span.End(oteltrace.WithTimestamp(g.StartTime.Add(g.Duration)))

	sc := span.SpanContext()
	if sc.IsValid() {
		g.TraceID = sc.TraceID().String()
		g.SpanID = sc.SpanID().String()
	}
	return nil
}

func gestureAttributes(g *Gesture) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("panes.divider", g.Divider),
		attribute.Int("panes.moves", len(g.Moves)),
		attribute.Int("panes.clamped", g.Clamped()),
		attribute.Float64("panes.requested", g.Requested()),
		attribute.Float64("panes.applied", g.Applied()),
		attribute.Float64Slice("panes.sizes.before", g.Before),
		attribute.Float64Slice("panes.sizes.after", g.After),
	}
}

// Shutdown flushes and closes the exporter
func (e *OTLPExporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
