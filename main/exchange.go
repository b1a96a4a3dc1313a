// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"go.uber.org/zap"

	"github.com/ava-labs/flowcontrol/config"
	"github.com/ava-labs/flowcontrol/message"
	"github.com/ava-labs/flowcontrol/network/flowcontrol"
	"github.com/ava-labs/flowcontrol/utils/logging"
)

// Number of messages received for every message processed
const receivedPerProcessed = 2

type result struct {
	Received  int
	Processed int
	Dropped   bool
	Sent      int
	Withheld  int
	Capacity  flowcontrol.ReadingCapacity
	Outbound  uint64
}

// exchange plays a scripted connection against [c]. The peer first grants us
// [grant], then floods us with messages while we process them at half the
// rate they arrive. Every message received is echoed back to the peer if we
// have outbound capacity for it. [onHalfway], if set, is called once half of
// the messages have been received.
//
// A fatal flow control error is returned. A peer exceeding its flood
// capacity ends the exchange early, as the connection would be dropped.
func exchange(
	log logging.Logger,
	c flowcontrol.Capacity,
	sim config.SimulationConfig,
	grant *message.Message,
	onHalfway func(),
) (result, error) {
	var res result
	err := flowcontrol.Recover(func() {
		c.ReleaseOutboundCapacity(grant)

		var (
			payload     = make([]byte, sim.MessageSize)
			outstanding []*message.Message
		)
		for i := 0; i < sim.Messages; i++ {
			if i == sim.Messages/2 && onHalfway != nil {
				onHalfway()
			}

			for !c.CanRead() && len(outstanding) > 0 {
				c.ReleaseLocalCapacity(outstanding[0])
				outstanding = outstanding[1:]
				res.Processed++
			}

			msg := message.New(message.FloodOps[i%len(message.FloodOps)], payload)
			if !c.LockLocalCapacity(msg) {
				log.Warn("peer exceeded flood capacity, dropping connection",
					zap.Int("received", res.Received),
					zap.Stringer("op", msg.Op),
				)
				res.Dropped = true
				break
			}
			res.Received++
			outstanding = append(outstanding, msg)

			if c.HasOutboundCapacity(msg) {
				c.LockOutboundCapacity(msg)
				res.Sent++
			} else {
				res.Withheld++
			}

			if res.Received%receivedPerProcessed == 0 {
				c.ReleaseLocalCapacity(outstanding[0])
				outstanding = outstanding[1:]
				res.Processed++
			}
			log.Verbo("received message",
				zap.Stringer("msg", msg),
				zap.Uint64("floodCapacity", c.Capacity().Flood),
			)
		}

		if res.Dropped {
			return
		}
		for _, msg := range outstanding {
			c.ReleaseLocalCapacity(msg)
			res.Processed++
		}
		c.CheckCapacityInvariants()
	})
	res.Capacity = c.Capacity()
	res.Outbound = c.OutboundCapacity()
	return res, err
}
