package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/framegraph/internal/adapters/telemetry"
	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/core/ports"
)

func setupRecorder(t *testing.T, processors ...sdktrace.SpanProcessor) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	shutdown := telemetry.Setup(append(processors, sr)...)
	t.Cleanup(func() { _ = shutdown(context.Background()) })
	return sr
}

func TestOTelTracer_Attributes(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(context.Background(), "framegraph.rebuild", ports.WithAttribute("slot", 1))
	span.SetAttribute("passes", []string{"geometry", "lighting"})
	span.SetAttribute("extent", domain.Extent2D{Width: 4, Height: 2})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "framegraph.rebuild", spans[0].Name())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.Int("slot", 1),
		attribute.StringSlice("passes", []string{"geometry", "lighting"}),
		attribute.String("extent", "4x2"),
	}, spans[0].Attributes())
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr := setupRecorder(t)
	_, span := telemetry.NewOTelTracer("test").Start(context.Background(), "framegraph.process")
	span.RecordError(nil)
	span.RecordError(errors.New("device lost"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "device lost", spans[0].Status().Description)
}

func TestLogBridge_LogsEndedSpans(t *testing.T) {
	logger := &debugLogger{}
	setupRecorder(t, telemetry.NewLogBridge(logger))

	_, span := otel.Tracer("test").Start(context.Background(), "framegraph.process")
	span.SetAttributes(attribute.Int("frame", 3))
	span.End()

	require.Len(t, logger.lines, 1)
	args := logger.lines[0]
	assert.Equal(t, "span", args[0])
	assert.Equal(t, "framegraph.process", args[1])
	assert.Equal(t, "frame", args[4])
	assert.Equal(t, "3", args[5])
}

type debugLogger struct {
	lines [][]any
}

func (l *debugLogger) Debug(_ string, args ...any) { l.lines = append(l.lines, args) }
func (l *debugLogger) Info(string, ...any)         {}
func (l *debugLogger) Warn(string, ...any)         {}
func (l *debugLogger) Error(error)                 {}

func TestNoOpTracer(t *testing.T) {
	ctx := context.Background()
	got, span := telemetry.NewNoOpTracer().Start(ctx, "span", ports.WithAttribute("k", "v"))
	assert.Equal(t, ctx, got)
	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}
