// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package flowcontrol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigVerify(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*Config)
		expectedErr error
	}{
		{
			name:   "default",
			modify: func(*Config) {},
		},
		{
			name: "flood equals reading",
			modify: func(c *Config) {
				c.PeerFloodReadingCapacity = c.PeerReadingCapacity
			},
		},
		{
			name: "zero flood reading capacity",
			modify: func(c *Config) {
				c.PeerFloodReadingCapacity = 0
			},
			expectedErr: errZeroFloodReadingCapacity,
		},
		{
			name: "flood exceeds reading",
			modify: func(c *Config) {
				c.PeerReadingCapacity = c.PeerFloodReadingCapacity - 1
			},
			expectedErr: errFloodExceedsReading,
		},
		{
			name: "zero bytes total",
			modify: func(c *Config) {
				c.BytesTotal = 0
			},
			expectedErr: errZeroBytesTotal,
		},
		{
			name: "bytes total below max tx size",
			modify: func(c *Config) {
				c.BytesTotal = uint64(c.MaxTxSize) - 1
			},
			expectedErr: errBytesTotalBelowMaxTx,
		},
		{
			name: "unsupported version",
			modify: func(c *Config) {
				c.OverlayProtocolVersion = 0
			},
			expectedErr: errIncompatibleVersion,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := DefaultConfig()
			test.modify(&config)
			err := config.Verify()
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}
