// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"github.com/ava-labs/avalanchego/trace"
	"go.opentelemetry.io/otel/trace/noop"

	oteltrace "go.opentelemetry.io/otel/trace"
)

var _ trace.Tracer = (*noOpTracer)(nil)

// noOpTracer records nothing. Spans it starts are valid but never exported.
type noOpTracer struct {
	oteltrace.Tracer
}

func newNoOp(appName string) trace.Tracer {
	return &noOpTracer{Tracer: noop.NewTracerProvider().Tracer(appName)}
}

func (*noOpTracer) Close() error {
	return nil
}
