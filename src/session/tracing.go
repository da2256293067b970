// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package session

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// startSpan opens a span for an outbound call named after its JSON-RPC
// method. With no tracer configured, s.tracer is a no-op tracer and this
// is a cheap pass-through.
func (s *Session) startSpan(ctx context.Context, method string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "mcp.client/"+method,
		trace.WithAttributes(
			attribute.String("mcp.method", method),
			attribute.String("mcp.session.id", s.id),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

// endSpan records err (if any) on span and closes it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
