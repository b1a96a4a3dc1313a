// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package flowcontrol

import (
	"github.com/ava-labs/flowcontrol/ids"
	"github.com/ava-labs/flowcontrol/message"
	"github.com/ava-labs/flowcontrol/utils/logging"
)

// MessageCapacity counts capacity in messages. It enforces both a flood
// budget and a total budget, and its limits never change.
type MessageCapacity struct {
	capacity
	limits ReadingCapacity
}

func NewMessageCapacity(
	log logging.Logger,
	events Events,
	classifier FloodClassifier,
	nodeID ids.NodeID,
	config Config,
) *MessageCapacity {
	c := &MessageCapacity{
		limits: ReadingCapacity{
			Flood:    config.PeerFloodReadingCapacity,
			Total:    config.PeerReadingCapacity,
			HasTotal: true,
		},
	}
	c.capacity = newCapacity(log, events, classifier, nodeID, Messages, c)
	return c
}

// ResourceCount is 1: every message takes one unit of capacity.
func (*MessageCapacity) ResourceCount(*message.Message) uint64 {
	return 1
}

func (c *MessageCapacity) CapacityLimits() ReadingCapacity {
	return c.limits
}

// ReleaseOutboundCapacity credits a SendMore grant. Any other message is a
// fatal error.
func (c *MessageCapacity) ReleaseOutboundCapacity(grant *message.Message) {
	body, err := message.ParseSendMore(grant)
	c.assertNoError(err, "invalid message capacity grant")
	c.releaseOutbound(uint64(body.NumMessages))
}

// CanRead is false while the peer has no total capacity left.
func (c *MessageCapacity) CanRead() bool {
	c.assert(c.current.HasTotal, "missing total capacity")
	return c.current.Total > 0
}
