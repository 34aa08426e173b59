// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"

	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/stargaze/sg-ics721/consts"
	"github.com/stargaze/sg-ics721/trace"
)

type Config struct {
	LogLevel logging.Level `json:"logLevel"`

	// Collection defaults used when the source chain sends no collection info
	PlaceholderImage   string `json:"placeholderImage"`
	DefaultDescription string `json:"defaultDescription"`

	Trace trace.Config `json:"trace"`
}

func Default() *Config {
	return &Config{
		LogLevel:           logging.Info,
		PlaceholderImage:   consts.PlaceholderImage,
		DefaultDescription: consts.DefaultDescription,
		Trace: trace.Config{
			Enabled:         false,
			TraceSampleRate: 1,
			AppName:         consts.Name,
			Agent:           consts.Name,
		},
	}
}

// New overlays the JSON in [b] on the defaults. Empty input yields the
// defaults.
func New(b []byte) (*Config, error) {
	c := Default()
	if len(b) > 0 {
		if err := json.Unmarshal(b, c); err != nil {
			return nil, err
		}
	}
	return c, nil
}
