// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"crypto/rand"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/flowcontrol/config"
	"github.com/ava-labs/flowcontrol/ids"
	"github.com/ava-labs/flowcontrol/message"
	"github.com/ava-labs/flowcontrol/network/flowcontrol"
	"github.com/ava-labs/flowcontrol/utils/logging"
)

// Length of a compressed secp256k1 public key
const publicKeyLen = 33

// run simulates one peer connection with each tracker variant and returns
// the process exit code.
func run(log logging.Logger, c config.Config) int {
	registry := prometheus.NewRegistry()
	metrics, err := flowcontrol.NewMetrics(c.MetricsNamespace, registry)
	if err != nil {
		log.Error("couldn't register metrics", zap.Error(err))
		return 1
	}

	nodeID, err := newPeerID()
	if err != nil {
		log.Error("couldn't generate peer key", zap.Error(err))
		return 1
	}
	sim := c.SimulationConfig
	log.Info("simulating peer",
		zap.Stringer("nodeID", nodeID),
		zap.Int("messages", sim.Messages),
		zap.Int("messageSize", sim.MessageSize),
		zap.Uint32("remoteVersion", sim.RemoteOverlayProtocolVersion),
	)

	messageCapacity := flowcontrol.NewMessageCapacity(
		log,
		metrics,
		message.DefaultFloodClassifier{},
		nodeID,
		c.FlowControlConfig,
	)
	messageGrant, err := message.NewSendMore(clampUint32(uint64(sim.Messages) / 2))
	if err != nil {
		log.Error("couldn't build grant", zap.Error(err))
		return 1
	}

	byteCapacity := flowcontrol.NewByteCapacity(
		log,
		metrics,
		message.DefaultFloodClassifier{},
		nodeID,
		c.FlowControlConfig,
		sim.RemoteOverlayProtocolVersion,
	)
	byteGrant, err := message.NewSendMoreBytes(clampUint32(uint64(sim.Messages) * uint64(sim.MessageSize) / 2))
	if err != nil {
		log.Error("couldn't build grant", zap.Error(err))
		return 1
	}

	exitCode := 0
	for _, e := range []struct {
		unit      flowcontrol.Unit
		capacity  flowcontrol.Capacity
		grant     *message.Message
		onHalfway func()
	}{
		{
			unit:     flowcontrol.Messages,
			capacity: messageCapacity,
			grant:    messageGrant,
		},
		{
			unit:     flowcontrol.Bytes,
			capacity: byteCapacity,
			grant:    byteGrant,
			onHalfway: func() {
				byteCapacity.HandleTxSizeIncrease(sim.TxSizeIncrease)
			},
		},
	} {
		unitLog := log.With(zap.String("unit", string(e.unit)))
		res, err := exchange(unitLog, e.capacity, sim, e.grant, e.onHalfway)
		if err != nil {
			unitLog.Error("exchange failed", zap.Error(err))
			exitCode = 1
			continue
		}
		unitLog.Info("exchange finished",
			zap.Int("received", res.Received),
			zap.Int("processed", res.Processed),
			zap.Bool("dropped", res.Dropped),
			zap.Int("sent", res.Sent),
			zap.Int("withheld", res.Withheld),
			zap.Uint64("floodCapacity", res.Capacity.Flood),
			zap.Uint64("outboundCapacity", res.Outbound),
		)
	}

	logMetrics(log, registry)
	return exitCode
}

func logMetrics(log logging.Logger, gatherer prometheus.Gatherer) {
	families, err := gatherer.Gather()
	if err != nil {
		log.Warn("couldn't gather metrics", zap.Error(err))
		return
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			fields := []zap.Field{
				zap.String("name", family.GetName()),
				zap.Float64("value", metric.GetCounter().GetValue()),
			}
			for _, label := range metric.GetLabel() {
				fields = append(fields, zap.String(label.GetName(), label.GetValue()))
			}
			log.Info("metric", fields...)
		}
	}
}

// newPeerID returns the id of a peer advertising a freshly generated public
// key.
func newPeerID() (ids.NodeID, error) {
	key := make([]byte, publicKeyLen)
	if _, err := rand.Read(key); err != nil {
		return ids.NodeID{}, err
	}
	return ids.NodeIDFromPublicKey(key), nil
}

func clampUint32(v uint64) uint32 {
	if v > uint64(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(v)
}
