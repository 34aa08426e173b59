// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	require := require.New(t)

	c, err := New(nil)
	require.NoError(err)
	require.Equal(Default(), c)
	require.Equal("https://arkprotocol.io", c.PlaceholderImage)
	require.Empty(c.DefaultDescription)
	require.Equal(logging.Info, c.LogLevel)
	require.False(c.Trace.Enabled)
}

func TestNewOverrides(t *testing.T) {
	require := require.New(t)

	c, err := New([]byte(`{
		"logLevel": "debug",
		"placeholderImage": "ipfs://placeholder",
		"defaultDescription": "bridged collection",
		"trace": {"enabled": true, "traceSampleRate": 0.5, "endpoint": "http://zipkin:9411/api/v2/spans"}
	}`))
	require.NoError(err)
	require.Equal(logging.Debug, c.LogLevel)
	require.Equal("ipfs://placeholder", c.PlaceholderImage)
	require.Equal("bridged collection", c.DefaultDescription)
	require.True(c.Trace.Enabled)
	require.Equal(0.5, c.Trace.TraceSampleRate)
	require.Equal("http://zipkin:9411/api/v2/spans", c.Trace.Endpoint)
	// untouched fields keep their defaults
	require.Equal("sg_ics721", c.Trace.AppName)
}

func TestNewInvalid(t *testing.T) {
	require := require.New(t)

	_, err := New([]byte(`{"logLevel": "loud"}`))
	require.Error(err)

	_, err = New([]byte(`{`))
	require.Error(err)
}
