// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package flowcontrol

import (
	"go.uber.org/zap"

	"github.com/ava-labs/flowcontrol/ids"
	"github.com/ava-labs/flowcontrol/message"
	"github.com/ava-labs/flowcontrol/utils/logging"
)

// ByteCapacity counts capacity in serialized bytes. It only enforces a flood
// budget. The budget grows when the network raises its maximum transaction
// size.
type ByteCapacity struct {
	capacity
	limits ReadingCapacity

	// Overlay protocol versions negotiated in the handshake
	remoteVersion uint32
	localVersion  uint32
}

func NewByteCapacity(
	log logging.Logger,
	events Events,
	classifier FloodClassifier,
	nodeID ids.NodeID,
	config Config,
	remoteVersion uint32,
) *ByteCapacity {
	c := &ByteCapacity{
		limits: ReadingCapacity{
			Flood: config.BytesTotal,
		},
		remoteVersion: remoteVersion,
		localVersion:  config.OverlayProtocolVersion,
	}
	c.capacity = newCapacity(log, events, classifier, nodeID, Bytes, c)
	return c
}

// ResourceCount is the size of [msg] as accounted for by the protocol
// versions of both ends of the connection.
func (c *ByteCapacity) ResourceCount(msg *message.Message) uint64 {
	c.assert(c.remoteVersion != 0, "missing remote overlay protocol version")
	size, err := MsgBodySize(msg, c.remoteVersion, c.localVersion)
	c.assertNoError(err, "couldn't size message")
	return size
}

func (c *ByteCapacity) CapacityLimits() ReadingCapacity {
	return c.limits
}

// ReleaseOutboundCapacity credits a SendMoreBytes grant. Any other message is
// a fatal error.
func (c *ByteCapacity) ReleaseOutboundCapacity(grant *message.Message) {
	body, err := message.ParseSendMoreBytes(grant)
	c.assertNoError(err, "invalid byte capacity grant")
	c.releaseOutbound(uint64(body.NumBytes))
}

// CanRead is always true. Messages are only throttled by LockLocalCapacity.
func (c *ByteCapacity) CanRead() bool {
	c.assert(!c.current.HasTotal, "unexpected total capacity")
	return true
}

// HandleTxSizeIncrease grows the flood budget, and its limit, by [increase]
// bytes.
func (c *ByteCapacity) HandleTxSizeIncrease(increase uint32) {
	c.CheckCapacityInvariants()
	c.assert(c.limits.Flood+uint64(increase) >= c.limits.Flood, "flood capacity overflow")
	c.current.Flood += uint64(increase)
	c.limits.Flood += uint64(increase)
	c.log.Debug("increased flood byte capacity",
		zap.Stringer("nodeID", c.nodeID),
		zap.Uint32("increase", increase),
		zap.Uint64("floodLimit", c.limits.Flood),
	)
	c.CheckCapacityInvariants()
}
