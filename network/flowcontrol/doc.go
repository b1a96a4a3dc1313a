// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package flowcontrol accounts for the flow control capacity of a single peer
// connection.
//
// Inbound, a peer may only have a bounded amount of unprocessed flood traffic
// outstanding with us. The read path calls LockLocalCapacity before handling a
// message and ReleaseLocalCapacity once it is done; the amount returned by the
// release is the credit that may be advertised back to the peer.
//
// Outbound, we may only send the peer as much flood traffic as it has granted
// us. The send path checks HasOutboundCapacity and calls LockOutboundCapacity
// before sending, and ReleaseOutboundCapacity when a grant arrives.
//
// Capacity is counted either in messages (MessageCapacity) or in serialized
// bytes (ByteCapacity). A Capacity is not safe for concurrent use; it is owned
// by the goroutine that services the connection.
//
// Broken invariants are never returned as errors. They are logged as fatal and
// raise a *FatalError panic, which the connection owner may turn back into an
// error with Recover in order to tear the connection down.
package flowcontrol
