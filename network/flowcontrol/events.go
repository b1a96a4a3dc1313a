// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package flowcontrol

import "github.com/ava-labs/flowcontrol/ids"

// Unit is the quantity capacity is measured in.
type Unit string

const (
	Messages Unit = "messages"
	Bytes    Unit = "bytes"
)

var _ Events = NoEvents{}

// Events is notified of capacity state transitions. It is only used for
// diagnostics; implementations must not call back into the Capacity.
type Events interface {
	// The peer used up the last of its flood capacity.
	FloodCapacityExhausted(nodeID ids.NodeID)
	// Flood capacity of the peer went from zero to [available].
	FloodCapacityReplenished(nodeID ids.NodeID, available uint64)
	// A flood message was refused because the peer had no capacity left.
	FloodCapacityRejected(nodeID ids.NodeID)
	// The peer granted us [amount] more outbound capacity. [resumed] is true
	// if we had no outbound capacity before the grant.
	OutboundCapacityGranted(nodeID ids.NodeID, unit Unit, amount uint64, resumed bool)
}

// NoEvents drops every event.
type NoEvents struct{}

func (NoEvents) FloodCapacityExhausted(ids.NodeID) {}

func (NoEvents) FloodCapacityReplenished(ids.NodeID, uint64) {}

func (NoEvents) FloodCapacityRejected(ids.NodeID) {}

func (NoEvents) OutboundCapacityGranted(ids.NodeID, Unit, uint64, bool) {}
