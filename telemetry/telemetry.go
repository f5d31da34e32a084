// Package telemetry provides hierarchical timing collection for the
// extraction phases. Collectors travel through the context so instrumented
// code needs no extra parameters; without a collector in the context every
// call is a no-op.
//
// Example:
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	timer := telemetry.StartTimer(ctx, "parse")
//	// ... work ...
//	timer.End()
//
//	collector.Report(os.Stderr)
package telemetry

import (
	"context"
	"io"
)

type contextKey struct{}

var collectorKey = contextKey{}

// Collector gathers timing data for one run.
type Collector interface {
	// Start begins timing a named operation.
	Start(name string) Timer

	// Report writes the collected timings.
	Report(w io.Writer)
}

// Timer tracks one operation. Timers nest via Child.
type Timer interface {
	End()
	Child(name string) Timer
}

// WithCollector attaches a collector to the context.
func WithCollector(ctx context.Context, c Collector) context.Context {
	return context.WithValue(ctx, collectorKey, c)
}

// FromContext returns the context's collector, or a no-op one.
func FromContext(ctx context.Context) Collector {
	if c, ok := ctx.Value(collectorKey).(Collector); ok {
		return c
	}
	return noOpCollector{}
}

// StartTimer starts a timer on the context's collector. The zero-cost path:
// when no collector is attached the returned timer does nothing.
func StartTimer(ctx context.Context, name string) Timer {
	return FromContext(ctx).Start(name)
}
