package trace

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func recordingExporter() (*OTLPExporter, *tracetest.SpanRecorder) {
	sr := tracetest.NewSpanRecorder()
	return NewExporter(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))), sr
}

func TestNewOTLPExporter_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	exp, err := NewOTLPExporter(context.Background())
	require.NoError(t, err)
	assert.Nil(t, exp)
	assert.NoError(t, exp.Shutdown(context.Background()), "nil exporter shuts down cleanly")
}

func TestExportGesture_WritesSpan(t *testing.T) {
	exp, sr := recordingExporter()
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	g := &Gesture{
		Divider:   2,
		StartTime: start,
		Duration:  1500 * time.Millisecond,
		Before:    []float64{100, 100},
		After:     []float64{120, 80},
		Moves:     []Move{{Requested: 30, Applied: 20}},
	}

	require.NoError(t, exp.ExportGesture(context.Background(), g))

	spans := sr.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, SpanName, span.Name())
	assert.Equal(t, start, span.StartTime())
	assert.Equal(t, start.Add(1500*time.Millisecond), span.EndTime())
	assert.Equal(t, span.SpanContext().TraceID().String(), g.TraceID)
	assert.Equal(t, span.SpanContext().SpanID().String(), g.SpanID)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, int64(2), attrs["panes.divider"].AsInt64())
	assert.Equal(t, int64(1), attrs["panes.clamped"].AsInt64())
	assert.Equal(t, 30.0, attrs["panes.requested"].AsFloat64())
	assert.Equal(t, 20.0, attrs["panes.applied"].AsFloat64())
	assert.Equal(t, []float64{120, 80}, attrs["panes.sizes.after"].AsFloat64Slice())
}

func TestManager_ExportsOnEnd(t *testing.T) {
	exp, sr := recordingExporter()
	m := NewManager(5, exp)

	m.HandleEvent(Event{Type: EventDragStart, Divider: 0, Sizes: []float64{50, 50}})
	assert.Empty(t, sr.Ended(), "nothing exported while dragging")

	m.HandleEvent(Event{Type: EventDragMove, Divider: 0, Requested: 10, Applied: 10})
	m.HandleEvent(Event{Type: EventDragEnd, Divider: 0, Sizes: []float64{60, 40}})

	require.Len(t, sr.Ended(), 1)
	g, ok := m.Last()
	require.True(t, ok)
	assert.Equal(t, sr.Ended()[0].SpanContext().TraceID().String(), g.TraceID)
	assert.NoError(t, m.Shutdown(context.Background()))
}

func TestExportGesture_NilSafe(t *testing.T) {
	var exp *OTLPExporter
	assert.NoError(t, exp.ExportGesture(context.Background(), &Gesture{}))

	exp, sr := recordingExporter()
	assert.NoError(t, exp.ExportGesture(context.Background(), nil))
	assert.Empty(t, sr.Ended())
}
