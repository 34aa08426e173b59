// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	ics721VersionKey = "ics721.version"
	spanPrefix       = "Contract."
)

// StartOperation starts the span of one contract operation, e.g.
// "Contract.BuildInstantiateMsg". Finish it with [EndOperation].
func StartOperation(
	ctx context.Context,
	tracer oteltrace.Tracer,
	operation string,
	attrs ...attribute.KeyValue,
) (context.Context, oteltrace.Span) {
	return tracer.Start(ctx, spanPrefix+operation,
		oteltrace.WithSpanKind(oteltrace.SpanKindInternal),
		oteltrace.WithAttributes(attrs...),
	)
}

// EndOperation records [err], if any, on [span] and ends it.
func EndOperation(span oteltrace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
