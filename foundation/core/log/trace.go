// File: trace.go
// Title: Trace-Derived Correlation IDs
// Description: Lets a logger adopt the OpenTelemetry trace ID of a request so
//              log lines and spans can be joined.
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package log

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// TraceCID returns the trace ID of the span carried by ctx, or "" if there is none
func TraceCID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}

// WithContext returns a copy of the logger whose CID is the trace ID found in ctx.
// The logger itself is returned when ctx carries no trace.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	cid := TraceCID(ctx)
	if cid == "" {
		return l
	}

	clone := l.clone()
	clone.cid = cid
	return clone
}
