// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package message

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// MaxMessageSize is the largest encoded message that will be decoded.
const MaxMessageSize = 16 * 1024 * 1024 // 16 MiB

var (
	errMessageTooLarge = errors.New("message exceeds maximum size")
	errUnknownOp       = errors.New("unknown op")

	// Core deterministic encoding: a given message always has exactly one
	// encoding, so its size is reproducible on every node.
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	decMode, err = cbor.DecOptions{
		IndefLength: cbor.IndefLengthForbidden,
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

// wireMessage is the on-wire form of a Message: the op followed by its
// payload, encoded as a two element array.
type wireMessage struct {
	_       struct{} `cbor:",toarray"`
	Op      Op
	Payload []byte
}

// Marshal returns the wire encoding of [msg].
func Marshal(msg *Message) ([]byte, error) {
	return encMode.Marshal(wireMessage{
		Op:      msg.Op,
		Payload: msg.Payload,
	})
}

// Unmarshal parses the wire encoding produced by Marshal.
func Unmarshal(b []byte) (*Message, error) {
	if len(b) > MaxMessageSize {
		return nil, fmt.Errorf("%w: %d > %d", errMessageTooLarge, len(b), MaxMessageSize)
	}
	var wm wireMessage
	if err := decMode.Unmarshal(b, &wm); err != nil {
		return nil, err
	}
	if !wm.Op.Known() {
		return nil, fmt.Errorf("%w: %d", errUnknownOp, wm.Op)
	}
	return &Message{
		Op:      wm.Op,
		Payload: wm.Payload,
	}, nil
}

// Size returns the number of bytes [msg] occupies on the wire.
func Size(msg *Message) (uint64, error) {
	b, err := Marshal(msg)
	if err != nil {
		return 0, err
	}
	return uint64(len(b)), nil
}

// OpSize returns the number of bytes the discriminant [op] occupies on the
// wire.
func OpSize(op Op) (uint64, error) {
	b, err := encMode.Marshal(op)
	if err != nil {
		return 0, err
	}
	return uint64(len(b)), nil
}
