// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package flowcontrol

import (
	"go.uber.org/zap"

	"github.com/ava-labs/flowcontrol/ids"
	"github.com/ava-labs/flowcontrol/message"
	"github.com/ava-labs/flowcontrol/utils/logging"
)

var (
	_ Capacity = (*MessageCapacity)(nil)
	_ Capacity = (*ByteCapacity)(nil)

	_ FloodClassifier = message.DefaultFloodClassifier{}
)

// FloodClassifier decides which messages are broadcast-relayed and therefore
// charged against flood capacity.
type FloodClassifier interface {
	IsFloodMessage(msg *message.Message) bool
}

// ReadingCapacity is a snapshot of a capacity budget. Total is only
// meaningful if HasTotal is set.
type ReadingCapacity struct {
	Flood    uint64
	Total    uint64
	HasTotal bool
}

// Capacity tracks the flow control budget of one peer connection.
type Capacity interface {
	// LockLocalCapacity charges [msg], received from the peer, against the
	// peer's budget. Returns false if [msg] is a flood message and the peer
	// has no flood capacity left for it; the peer then violated flow control.
	// The total budget, if any, is charged even when false is returned.
	LockLocalCapacity(msg *message.Message) bool
	// ReleaseLocalCapacity returns the budget taken by a previous successful
	// LockLocalCapacity of [msg] and returns the amount of flood capacity
	// that was freed.
	ReleaseLocalCapacity(msg *message.Message) uint64

	// HasOutboundCapacity reports whether the peer has granted us enough
	// capacity to send [msg].
	HasOutboundCapacity(msg *message.Message) bool
	// LockOutboundCapacity charges [msg], about to be sent to the peer,
	// against the capacity the peer granted us. Must only be called after
	// HasOutboundCapacity returned true.
	LockOutboundCapacity(msg *message.Message)
	// ReleaseOutboundCapacity credits the capacity granted by [grant].
	ReleaseOutboundCapacity(grant *message.Message)

	// CanRead reports whether the next message may be read from the peer.
	CanRead() bool

	// ResourceCount returns the amount of capacity [msg] takes.
	ResourceCount(msg *message.Message) uint64
	// CapacityLimits returns the largest budget the peer may have.
	CapacityLimits() ReadingCapacity
	// Capacity returns the budget the peer currently has left.
	Capacity() ReadingCapacity
	// OutboundCapacity returns the capacity the peer currently grants us.
	OutboundCapacity() uint64

	// CheckCapacityInvariants raises a *FatalError if the current budget
	// is inconsistent with the limits.
	CheckCapacityInvariants()

	NodeID() ids.NodeID
}

// variant is the part of Capacity that depends on the unit being counted.
type variant interface {
	ResourceCount(msg *message.Message) uint64
	CapacityLimits() ReadingCapacity
}

// capacity implements the unit independent part of Capacity.
type capacity struct {
	log        logging.Logger
	events     Events
	classifier FloodClassifier
	nodeID     ids.NodeID
	unit       Unit
	variant    variant

	current ReadingCapacity
	// Capacity the peer granted us that we haven't used yet
	outbound uint64
}

func newCapacity(
	log logging.Logger,
	events Events,
	classifier FloodClassifier,
	nodeID ids.NodeID,
	unit Unit,
	variant variant,
) capacity {
	if events == nil {
		events = NoEvents{}
	}
	return capacity{
		log:        log,
		events:     events,
		classifier: classifier,
		nodeID:     nodeID,
		unit:       unit,
		variant:    variant,
		current:    variant.CapacityLimits(),
	}
}

func (c *capacity) LockLocalCapacity(msg *message.Message) bool {
	c.CheckCapacityInvariants()
	msgResources := c.variant.ResourceCount(msg)

	// The total budget is charged before the flood budget is checked, so a
	// rejected flood message still consumes total capacity.
	if c.current.HasTotal {
		c.assert(c.current.Total >= msgResources, "total capacity underflow")
		c.current.Total -= msgResources
	}

	if c.classifier.IsFloodMessage(msg) {
		if c.current.Flood < msgResources {
			c.events.FloodCapacityRejected(c.nodeID)
			return false
		}

		c.current.Flood -= msgResources
		if c.current.Flood == 0 {
			c.log.Debug("no flood capacity",
				zap.Stringer("nodeID", c.nodeID),
				zap.String("unit", string(c.unit)),
			)
			c.events.FloodCapacityExhausted(c.nodeID)
		}
	}
	return true
}

func (c *capacity) ReleaseLocalCapacity(msg *message.Message) uint64 {
	c.CheckCapacityInvariants()
	releasedFloodCapacity := uint64(0)
	resourcesFreed := c.variant.ResourceCount(msg)
	if c.current.HasTotal {
		c.current.Total += resourcesFreed
	}

	if c.classifier.IsFloodMessage(msg) {
		if c.current.Flood == 0 {
			c.log.Debug("got flood capacity",
				zap.Stringer("nodeID", c.nodeID),
				zap.Uint64("available", resourcesFreed),
				zap.String("unit", string(c.unit)),
			)
			c.events.FloodCapacityReplenished(c.nodeID, resourcesFreed)
		}
		releasedFloodCapacity = resourcesFreed
		c.current.Flood += resourcesFreed
	}
	c.CheckCapacityInvariants()
	return releasedFloodCapacity
}

func (c *capacity) HasOutboundCapacity(msg *message.Message) bool {
	return c.outbound >= c.variant.ResourceCount(msg)
}

func (c *capacity) LockOutboundCapacity(msg *message.Message) {
	c.CheckCapacityInvariants()
	if !c.classifier.IsFloodMessage(msg) {
		return
	}
	msgResources := c.variant.ResourceCount(msg)
	c.assert(c.outbound >= msgResources, "insufficient outbound capacity")
	c.outbound -= msgResources
}

// releaseOutbound credits [amount] granted by the peer.
func (c *capacity) releaseOutbound(amount uint64) {
	c.CheckCapacityInvariants()
	c.assert(c.outbound+amount >= c.outbound, "outbound capacity overflow")
	resumed := c.outbound == 0 && amount != 0
	if resumed {
		c.log.Debug("got outbound capacity",
			zap.Stringer("nodeID", c.nodeID),
			zap.Uint64("amount", amount),
			zap.String("unit", string(c.unit)),
		)
	}
	c.outbound += amount
	c.events.OutboundCapacityGranted(c.nodeID, c.unit, amount, resumed)
}

func (c *capacity) CheckCapacityInvariants() {
	limits := c.variant.CapacityLimits()
	c.assert(limits.Flood >= c.current.Flood, "flood capacity exceeds limit")
	if limits.HasTotal {
		c.assert(c.current.HasTotal, "missing total capacity")
		c.assert(limits.Total >= c.current.Total, "total capacity exceeds limit")
	} else {
		c.assert(!c.current.HasTotal, "unexpected total capacity")
	}
}

func (c *capacity) Capacity() ReadingCapacity {
	return c.current
}

func (c *capacity) OutboundCapacity() uint64 {
	return c.outbound
}

func (c *capacity) NodeID() ids.NodeID {
	return c.nodeID
}

// assert raises a *FatalError if [ok] is false.
func (c *capacity) assert(ok bool, reason string) {
	if ok {
		return
	}
	limits := c.variant.CapacityLimits()
	c.log.Fatal("flow control invariant violated",
		zap.Stringer("nodeID", c.nodeID),
		zap.String("reason", reason),
		zap.String("unit", string(c.unit)),
		zap.Uint64("floodCapacity", c.current.Flood),
		zap.Uint64("floodLimit", limits.Flood),
		zap.Bool("hasTotal", c.current.HasTotal),
		zap.Uint64("totalCapacity", c.current.Total),
		zap.Uint64("totalLimit", limits.Total),
		zap.Uint64("outboundCapacity", c.outbound),
	)
	panic(&FatalError{
		NodeID: c.nodeID,
		Reason: reason,
	})
}

func (c *capacity) assertNoError(err error, reason string) {
	if err != nil {
		c.assert(false, reason+": "+err.Error())
	}
}
