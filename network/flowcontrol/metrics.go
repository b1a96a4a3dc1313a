// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package flowcontrol

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/flowcontrol/ids"
	"github.com/ava-labs/flowcontrol/utils/wrappers"
)

const unitLabel = "unit"

var _ Events = (*Metrics)(nil)

// Metrics aggregates the events of every peer connection of a node.
type Metrics struct {
	floodExhausted   prometheus.Counter
	floodReplenished prometheus.Counter
	floodRejected    prometheus.Counter
	outboundResumed  prometheus.Counter
	outboundGranted  *prometheus.CounterVec
}

func NewMetrics(namespace string, registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		floodExhausted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flood_capacity_exhausted",
			Help:      "Number of times a peer used up all of its flood capacity",
		}),
		floodReplenished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flood_capacity_replenished",
			Help:      "Number of times a peer regained flood capacity after exhausting it",
		}),
		floodRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flood_capacity_rejected",
			Help:      "Number of flood messages received from peers that had no flood capacity",
		}),
		outboundResumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbound_capacity_resumed",
			Help:      "Number of times a peer granted outbound capacity after we had none left",
		}),
		outboundGranted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "outbound_capacity_granted",
				Help:      "Outbound capacity granted to us by peers",
			},
			[]string{unitLabel},
		),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.floodExhausted),
		registerer.Register(m.floodReplenished),
		registerer.Register(m.floodRejected),
		registerer.Register(m.outboundResumed),
		registerer.Register(m.outboundGranted),
	)
	return m, errs.Err
}

func (m *Metrics) FloodCapacityExhausted(ids.NodeID) {
	m.floodExhausted.Inc()
}

func (m *Metrics) FloodCapacityReplenished(ids.NodeID, uint64) {
	m.floodReplenished.Inc()
}

func (m *Metrics) FloodCapacityRejected(ids.NodeID) {
	m.floodRejected.Inc()
}

func (m *Metrics) OutboundCapacityGranted(_ ids.NodeID, unit Unit, amount uint64, resumed bool) {
	m.outboundGranted.WithLabelValues(string(unit)).Add(float64(amount))
	if resumed {
		m.outboundResumed.Inc()
	}
}
