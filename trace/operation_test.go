// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestOperationSpans(t *testing.T) {
	require := require.New(t)

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tr := tp.Tracer("test")

	_, span := StartOperation(context.Background(), tr, "BuildInstantiateMsg", attribute.String("classID", "wasm.juno1/channel-0/juno1"))
	EndOperation(span, nil)

	_, span = StartOperation(context.Background(), tr, "GetClassData")
	EndOperation(span, errors.New("query failed"))

	ended := recorder.Ended()
	require.Len(ended, 2)

	require.Equal("Contract.BuildInstantiateMsg", ended[0].Name())
	require.Equal(codes.Unset, ended[0].Status().Code)
	require.Contains(ended[0].Attributes(), attribute.String("classID", "wasm.juno1/channel-0/juno1"))

	require.Equal("Contract.GetClassData", ended[1].Name())
	require.Equal(codes.Error, ended[1].Status().Code)
	require.Equal("query failed", ended[1].Status().Description)
	require.Len(ended[1].Events(), 1)
}

func TestSamplerFollowsParent(t *testing.T) {
	require := require.New(t)

	recorder := tracetest.NewSpanRecorder()
	cfg := &Config{TraceSampleRate: 0}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(recorder),
		sdktrace.WithSampler(cfg.sampler()),
	)
	tr := tp.Tracer("test")

	// root spans are dropped at a zero rate
	_, root := StartOperation(context.Background(), tr, "BuildInstantiateMsg")
	require.False(root.IsRecording())
	EndOperation(root, nil)

	// operations under a sampled host span are kept
	host := sdktrace.NewTracerProvider(sdktrace.WithSampler(sdktrace.AlwaysSample())).Tracer("host")
	ctx, hostSpan := host.Start(context.Background(), "host.tx")
	_, child := StartOperation(ctx, tr, "BuildInstantiateMsg")
	require.True(child.IsRecording())
	EndOperation(child, nil)
	hostSpan.End()

	require.Len(recorder.Ended(), 1)
}

func TestConfigEndpoint(t *testing.T) {
	require := require.New(t)

	require.Equal(DefaultEndpoint, (&Config{}).endpoint())
	require.Equal("http://zipkin:9411/api/v2/spans", (&Config{Endpoint: "http://zipkin:9411/api/v2/spans"}).endpoint())
}
