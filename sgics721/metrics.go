// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sgics721

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stargaze/sg-ics721/consts"
)

type metrics struct {
	classData prometheus.Counter
	initMsg   prometheus.Counter

	classDataAbsent    prometheus.Counter
	classDataMalformed prometheus.Counter

	ownerConverted prometheus.Counter
	ownerAbsent    prometheus.Counter
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		classData: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: consts.Name,
			Name:      "class_data",
			Help:      "number of class data records composed for outgoing classes",
		}),
		initMsg: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: consts.Name,
			Name:      "init_msg",
			Help:      "number of collection instantiate messages built",
		}),
		classDataAbsent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: consts.Name,
			Name:      "class_data_absent",
			Help:      "number of incoming classes without class data",
		}),
		classDataMalformed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: consts.Name,
			Name:      "class_data_malformed",
			Help:      "number of incoming classes with undecodable class data",
		}),
		ownerConverted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: consts.Name,
			Name:      "owner_converted",
			Help:      "number of source owners converted to a local creator",
		}),
		ownerAbsent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: consts.Name,
			Name:      "owner_absent",
			Help:      "number of decoded class data without a source owner",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.classData),
		r.Register(m.initMsg),

		r.Register(m.classDataAbsent),
		r.Register(m.classDataMalformed),

		r.Register(m.ownerConverted),
		r.Register(m.ownerAbsent),
	)
	return m, errs.Err
}
