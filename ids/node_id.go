// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"

	"github.com/ava-labs/flowcontrol/utils/formatting"
	"github.com/ava-labs/flowcontrol/utils/hashing"
)

const (
	NodeIDPrefix = "NodeID-"
	NodeIDLen    = hashing.AddrLen
)

var (
	errMissingPrefix = errors.New("missing NodeID prefix")
	errShortNodeID   = errors.New("insufficient NodeID length")
)

// NodeID identifies the remote end of a peer connection.
type NodeID [NodeIDLen]byte

// ToNodeID attempt to convert a byte slice into a node id
func ToNodeID(bytes []byte) (NodeID, error) {
	nodeID := NodeID{}
	if len(bytes) != NodeIDLen {
		return nodeID, fmt.Errorf("%w: expected %d bytes but got %d", errShortNodeID, NodeIDLen, len(bytes))
	}
	copy(nodeID[:], bytes)
	return nodeID, nil
}

// NodeIDFromPublicKey derives the id a peer advertises from its public key.
func NodeIDFromPublicKey(key []byte) NodeID {
	nodeID := NodeID{}
	copy(nodeID[:], hashing.PubkeyBytesToAddress(key))
	return nodeID
}

func (id NodeID) String() string {
	// We assume that the maximum size of a byte slice that
	// can be stringified is at least the length of an ID
	str, _ := formatting.EncodeCB58(id[:])
	return NodeIDPrefix + str
}

// NodeIDFromString is the inverse of NodeID.String()
func NodeIDFromString(nodeIDStr string) (NodeID, error) {
	if !strings.HasPrefix(nodeIDStr, NodeIDPrefix) {
		return NodeID{}, fmt.Errorf("%w: %q", errMissingPrefix, nodeIDStr)
	}
	bytes, err := formatting.DecodeCB58(strings.TrimPrefix(nodeIDStr, NodeIDPrefix))
	if err != nil {
		return NodeID{}, err
	}
	return ToNodeID(bytes)
}

// GenerateTestNodeID returns a new random NodeID. Only meant for tests.
func GenerateTestNodeID() NodeID {
	nodeID := NodeID{}
	_, _ = rand.Read(nodeID[:])
	return nodeID
}
