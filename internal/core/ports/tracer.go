package ports

import "context"

// Tracer creates spans around the phases of an invocation.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start begins a span with the given name.
	Start(ctx context.Context, name string) (context.Context, Span)

	// Shutdown flushes any pending spans.
	Shutdown(ctx context.Context) error
}

// Span is one timed unit of work.
type Span interface {
	// RecordError marks the span as failed.
	RecordError(err error)

	// End completes the span.
	End()
}
