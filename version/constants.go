// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"errors"
	"fmt"
)

// Overlay protocol versions exchanged in the handshake.
const (
	// Current is the overlay protocol version spoken by this node.
	Current uint32 = 33
	// MinimumCompatible is the oldest overlay protocol version this node will
	// keep a connection open with.
	MinimumCompatible uint32 = 30

	// FirstUpdatedFlowControlAccounting is the first version that stops
	// charging the message type discriminant against byte capacity. It was
	// introduced when large-payload message types made the old accounting
	// double count.
	FirstUpdatedFlowControlAccounting uint32 = 32
)

var errIncompatible = errors.New("peers version is incompatible")

// Compatible returns nil if a peer speaking [remote] may be connected to.
func Compatible(remote uint32) error {
	if remote < MinimumCompatible {
		return fmt.Errorf("%w: remote %d < minimum %d", errIncompatible, remote, MinimumCompatible)
	}
	return nil
}

// UpdatedFlowControlAccounting reports whether both ends of a connection use
// the updated flow control accounting.
func UpdatedFlowControlAccounting(remote, local uint32) bool {
	return remote >= FirstUpdatedFlowControlAccounting &&
		local >= FirstUpdatedFlowControlAccounting
}
