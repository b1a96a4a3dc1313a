// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package flowcontrol

import (
	"github.com/ava-labs/flowcontrol/message"
	"github.com/ava-labs/flowcontrol/version"
)

// MsgBodySize returns the number of bytes [msg] is charged on a connection
// between peers speaking [remoteVersion] and [localVersion].
//
// Once both peers use the updated accounting the discriminant of the message
// is not charged. Older peers charge the full serialized size.
func MsgBodySize(msg *message.Message, remoteVersion, localVersion uint32) (uint64, error) {
	size, err := message.Size(msg)
	if err != nil {
		return 0, err
	}
	if !version.UpdatedFlowControlAccounting(remoteVersion, localVersion) {
		return size, nil
	}
	opSize, err := message.OpSize(msg.Op)
	if err != nil {
		return 0, err
	}
	return size - opSize, nil
}
