// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sgics721

import (
	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stargaze/sg-ics721/config"
	"github.com/stargaze/sg-ics721/ics721"
)

var _ ics721.Execute[SgCollectionData] = (*Contract)(nil)

// Contract is the Stargaze flavour of the ICS-721 contract. It sends
// [SgCollectionData] with outgoing classes and instantiates sg721
// collections for incoming ones.
type Contract struct {
	config  *config.Config
	log     logging.Logger
	tracer  trace.Tracer
	metrics *metrics
	querier ics721.Querier
}

func New(
	cfg *config.Config,
	log logging.Logger,
	tracer trace.Tracer,
	registerer prometheus.Registerer,
	querier ics721.Querier,
) (*Contract, error) {
	m, err := newMetrics(registerer)
	if err != nil {
		return nil, err
	}
	return &Contract{
		config:  cfg,
		log:     log,
		tracer:  tracer,
		metrics: m,
		querier: querier,
	}, nil
}
