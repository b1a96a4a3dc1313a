// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package flowcontrol

import (
	"errors"
	"fmt"

	"github.com/ava-labs/flowcontrol/version"
)

const (
	DefaultPeerFloodReadingCapacity uint64 = 200
	DefaultPeerReadingCapacity      uint64 = 201
	DefaultBytesTotal               uint64 = 300_000
	DefaultMaxTxSize                uint32 = 100 * 1024
)

var (
	errZeroFloodReadingCapacity = errors.New("peer flood reading capacity must be positive")
	errFloodExceedsReading      = errors.New("peer flood reading capacity exceeds peer reading capacity")
	errZeroBytesTotal           = errors.New("flow control byte total must be positive")
	errBytesTotalBelowMaxTx     = errors.New("flow control byte total is smaller than the max transaction size")
	errIncompatibleVersion      = errors.New("local overlay protocol version is not supported")
)

// Config is shared by every peer connection of a node.
type Config struct {
	// Number of flood messages a peer may have outstanding with us.
	PeerFloodReadingCapacity uint64 `json:"peerFloodReadingCapacity"`
	// Number of messages of any kind a peer may have outstanding with us.
	PeerReadingCapacity uint64 `json:"peerReadingCapacity"`
	// Bytes of flood messages a peer may have outstanding with us.
	BytesTotal uint64 `json:"bytesTotal"`
	// Largest transaction the network currently accepts.
	MaxTxSize uint32 `json:"maxTxSize"`
	// Overlay protocol version spoken by this node.
	OverlayProtocolVersion uint32 `json:"overlayProtocolVersion"`
}

func DefaultConfig() Config {
	return Config{
		PeerFloodReadingCapacity: DefaultPeerFloodReadingCapacity,
		PeerReadingCapacity:      DefaultPeerReadingCapacity,
		BytesTotal:               DefaultBytesTotal,
		MaxTxSize:                DefaultMaxTxSize,
		OverlayProtocolVersion:   version.Current,
	}
}

func (c Config) Verify() error {
	switch {
	case c.PeerFloodReadingCapacity == 0:
		return errZeroFloodReadingCapacity
	case c.PeerFloodReadingCapacity > c.PeerReadingCapacity:
		return fmt.Errorf("%w: %d > %d", errFloodExceedsReading, c.PeerFloodReadingCapacity, c.PeerReadingCapacity)
	case c.BytesTotal == 0:
		return errZeroBytesTotal
	case c.BytesTotal < uint64(c.MaxTxSize):
		return fmt.Errorf("%w: %d < %d", errBytesTotalBelowMaxTx, c.BytesTotal, c.MaxTxSize)
	}
	if err := version.Compatible(c.OverlayProtocolVersion); err != nil {
		return fmt.Errorf("%w: %v", errIncompatibleVersion, err)
	}
	return nil
}
