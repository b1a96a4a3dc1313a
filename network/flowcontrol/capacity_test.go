// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package flowcontrol

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/flowcontrol/ids"
	"github.com/ava-labs/flowcontrol/message"
	"github.com/ava-labs/flowcontrol/utils/logging"
)

var (
	floodMsg    = message.New(message.Tx, []byte{1, 2, 3})
	nonFloodMsg = message.New(message.GetPeers, nil)
)

// testVariant charges a fixed cost per message.
type testVariant struct {
	limits ReadingCapacity
	cost   uint64
}

func (v *testVariant) ResourceCount(*message.Message) uint64 {
	return v.cost
}

func (v *testVariant) CapacityLimits() ReadingCapacity {
	return v.limits
}

func newTestCapacity(limits ReadingCapacity, cost uint64) *capacity {
	c := newCapacity(
		logging.NoLog{},
		nil,
		message.DefaultFloodClassifier{},
		ids.GenerateTestNodeID(),
		Messages,
		&testVariant{
			limits: limits,
			cost:   cost,
		},
	)
	return &c
}

// requireFatal runs [f] and returns the *FatalError it must raise.
func requireFatal(t *testing.T, f func()) *FatalError {
	t.Helper()

	err := Recover(f)
	require.ErrorIs(t, err, ErrInvariantViolated)
	var fatal *FatalError
	require.True(t, errors.As(err, &fatal))
	return fatal
}

func TestLockLocalCapacityChargesTotalBeforeFloodCheck(t *testing.T) {
	require := require.New(t)

	c := newTestCapacity(ReadingCapacity{
		Flood:    5,
		Total:    100,
		HasTotal: true,
	}, 10)

	require.False(c.LockLocalCapacity(floodMsg))
	require.Equal(ReadingCapacity{
		Flood:    5,
		Total:    90,
		HasTotal: true,
	}, c.Capacity())
}

func TestLockLocalCapacityNonFloodIgnoresFloodBudget(t *testing.T) {
	require := require.New(t)

	c := newTestCapacity(ReadingCapacity{
		Flood:    5,
		Total:    100,
		HasTotal: true,
	}, 10)

	require.True(c.LockLocalCapacity(nonFloodMsg))
	require.Equal(ReadingCapacity{
		Flood:    5,
		Total:    90,
		HasTotal: true,
	}, c.Capacity())

	require.Zero(c.ReleaseLocalCapacity(nonFloodMsg))
	require.Equal(c.variant.CapacityLimits(), c.Capacity())
}

func TestLockReleaseFloodRoundTrip(t *testing.T) {
	require := require.New(t)

	c := newTestCapacity(ReadingCapacity{
		Flood:    20,
		Total:    100,
		HasTotal: true,
	}, 10)

	require.True(c.LockLocalCapacity(floodMsg))
	require.EqualValues(10, c.Capacity().Flood)
	require.EqualValues(90, c.Capacity().Total)

	require.EqualValues(10, c.ReleaseLocalCapacity(floodMsg))
	require.Equal(ReadingCapacity{
		Flood:    20,
		Total:    100,
		HasTotal: true,
	}, c.Capacity())
}

func TestLockLocalCapacityExactFit(t *testing.T) {
	require := require.New(t)

	c := newTestCapacity(ReadingCapacity{Flood: 10}, 10)
	require.True(c.LockLocalCapacity(floodMsg))
	require.Zero(c.Capacity().Flood)
	require.False(c.LockLocalCapacity(floodMsg))
	require.Zero(c.Capacity().Flood)
}

func TestLockLocalCapacityTotalUnderflow(t *testing.T) {
	c := newTestCapacity(ReadingCapacity{
		Flood:    100,
		Total:    5,
		HasTotal: true,
	}, 10)

	fatal := requireFatal(t, func() {
		c.LockLocalCapacity(nonFloodMsg)
	})
	require.Equal(t, c.NodeID(), fatal.NodeID)
}

func TestCheckCapacityInvariants(t *testing.T) {
	tests := []struct {
		name    string
		limits  ReadingCapacity
		current ReadingCapacity
		fatal   bool
	}{
		{
			name:    "at limits",
			limits:  ReadingCapacity{Flood: 5, Total: 10, HasTotal: true},
			current: ReadingCapacity{Flood: 5, Total: 10, HasTotal: true},
		},
		{
			name:    "below limits",
			limits:  ReadingCapacity{Flood: 5, Total: 10, HasTotal: true},
			current: ReadingCapacity{Flood: 0, Total: 0, HasTotal: true},
		},
		{
			name:    "flood above limit",
			limits:  ReadingCapacity{Flood: 5},
			current: ReadingCapacity{Flood: 6},
			fatal:   true,
		},
		{
			name:    "total above limit",
			limits:  ReadingCapacity{Flood: 5, Total: 10, HasTotal: true},
			current: ReadingCapacity{Flood: 5, Total: 11, HasTotal: true},
			fatal:   true,
		},
		{
			name:    "total missing",
			limits:  ReadingCapacity{Flood: 5, Total: 10, HasTotal: true},
			current: ReadingCapacity{Flood: 5},
			fatal:   true,
		},
		{
			name:    "unexpected total",
			limits:  ReadingCapacity{Flood: 5},
			current: ReadingCapacity{Flood: 5, HasTotal: true},
			fatal:   true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := newTestCapacity(test.limits, 1)
			c.current = test.current

			err := Recover(c.CheckCapacityInvariants)
			if test.fatal {
				require.ErrorIs(t, err, ErrInvariantViolated)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestOutboundCapacity(t *testing.T) {
	require := require.New(t)

	c := newTestCapacity(ReadingCapacity{Flood: 100}, 10)
	require.Zero(c.OutboundCapacity())
	require.False(c.HasOutboundCapacity(floodMsg))

	c.releaseOutbound(25)
	require.EqualValues(25, c.OutboundCapacity())
	require.True(c.HasOutboundCapacity(floodMsg))

	c.LockOutboundCapacity(floodMsg)
	c.LockOutboundCapacity(floodMsg)
	require.EqualValues(5, c.OutboundCapacity())
	require.False(c.HasOutboundCapacity(floodMsg))

	// Only flood messages are charged
	c.LockOutboundCapacity(nonFloodMsg)
	require.EqualValues(5, c.OutboundCapacity())

	requireFatal(t, func() {
		c.LockOutboundCapacity(floodMsg)
	})
}

func TestOutboundOperationsCheckInvariants(t *testing.T) {
	tests := []struct {
		name string
		op   func(c *capacity)
	}{
		{
			name: "lock flood",
			op: func(c *capacity) {
				c.LockOutboundCapacity(floodMsg)
			},
		},
		{
			name: "lock non-flood",
			op: func(c *capacity) {
				c.LockOutboundCapacity(nonFloodMsg)
			},
		},
		{
			name: "release",
			op: func(c *capacity) {
				c.releaseOutbound(10)
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := newTestCapacity(ReadingCapacity{Flood: 5}, 1)
			c.outbound = 100
			c.current.Flood = 6

			requireFatal(t, func() {
				test.op(c)
			})
			require.EqualValues(t, 100, c.OutboundCapacity())
		})
	}
}

func TestReleaseOutboundNeverDecreases(t *testing.T) {
	require := require.New(t)

	c := newTestCapacity(ReadingCapacity{Flood: 100}, 10)
	c.releaseOutbound(0)
	require.Zero(c.OutboundCapacity())
	c.releaseOutbound(7)
	require.EqualValues(7, c.OutboundCapacity())
	c.releaseOutbound(3)
	require.EqualValues(10, c.OutboundCapacity())
}

func TestRecoverPropagatesOtherPanics(t *testing.T) {
	require.PanicsWithValue(t, "boom", func() {
		_ = Recover(func() {
			panic("boom")
		})
	})
}

func TestFatalErrorMessage(t *testing.T) {
	err := &FatalError{
		NodeID: ids.NodeID{'a', 'v', 'a', ' ', 'l', 'a', 'b', 's'},
		Reason: "flood capacity exceeds limit",
	}
	require.Equal(
		t,
		"flow control invariant violated for NodeID-9tLMkeWFhWXd8QZc4rSiS5meuVXF5kRsz: flood capacity exceeds limit",
		err.Error(),
	)
}
