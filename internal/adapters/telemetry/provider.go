// Package telemetry provides tracing adapters for the invocation pipeline.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/stamp/internal/core/ports"
)

var _ ports.Tracer = (*OTelTracer)(nil)

// OTelTracer implements ports.Tracer on an OpenTelemetry SDK provider whose
// finished spans are reported through the logger.
type OTelTracer struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

// NewOTelTracer creates a tracer that logs completed spans.
func NewOTelTracer(log ports.Logger) *OTelTracer {
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(&logProcessor{log: log}),
	)
	return &OTelTracer{
		provider: provider,
		tracer:   provider.Tracer("stamp"),
	}
}

// Start begins a span with the given name.
func (t *OTelTracer) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &otelSpan{span: span}
}

// Shutdown flushes any pending spans.
func (t *OTelTracer) Shutdown(ctx context.Context) error {
	return t.provider.Shutdown(ctx)
}

type otelSpan struct {
	span trace.Span
}

func (s *otelSpan) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func (s *otelSpan) End() {
	s.span.End()
}

// logProcessor reports finished spans through the logger. Log lines go to
// stderr, which the calling orchestrator only surfaces on failure.
type logProcessor struct {
	log ports.Logger
}

func (p *logProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (p *logProcessor) OnEnd(span sdktrace.ReadOnlySpan) {
	p.log.Info(fmt.Sprintf("%s took %s", span.Name(), span.EndTime().Sub(span.StartTime())))
}

func (p *logProcessor) Shutdown(context.Context) error { return nil }

func (p *logProcessor) ForceFlush(context.Context) error { return nil }
