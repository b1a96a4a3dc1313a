// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package message

import (
	"errors"
	"fmt"
)

var errUnexpectedOp = errors.New("unexpected op")

// Message is a single overlay message. Payload holds the encoded body of the
// message and is opaque to everything but the handler for [Op].
type Message struct {
	Op      Op
	Payload []byte
}

// New returns a message of type [op] carrying [payload].
func New(op Op, payload []byte) *Message {
	return &Message{
		Op:      op,
		Payload: payload,
	}
}

func (m *Message) String() string {
	return fmt.Sprintf("%s(%d bytes)", m.Op, len(m.Payload))
}

// SendMoreBody is the payload of a SendMore message: the peer may send
// NumMessages more flood messages.
type SendMoreBody struct {
	_           struct{} `cbor:",toarray"`
	NumMessages uint32
}

// SendMoreBytesBody is the payload of a SendMoreBytes message: the peer may
// send NumBytes more bytes of flood messages.
type SendMoreBytesBody struct {
	_        struct{} `cbor:",toarray"`
	NumBytes uint32
}

// NewSendMore returns a grant of [numMessages] messages of flood capacity.
func NewSendMore(numMessages uint32) (*Message, error) {
	payload, err := encMode.Marshal(SendMoreBody{NumMessages: numMessages})
	if err != nil {
		return nil, err
	}
	return New(SendMore, payload), nil
}

// NewSendMoreBytes returns a grant of [numBytes] bytes of flood capacity.
func NewSendMoreBytes(numBytes uint32) (*Message, error) {
	payload, err := encMode.Marshal(SendMoreBytesBody{NumBytes: numBytes})
	if err != nil {
		return nil, err
	}
	return New(SendMoreBytes, payload), nil
}

// ParseSendMore returns the body of a SendMore message.
func ParseSendMore(msg *Message) (SendMoreBody, error) {
	var body SendMoreBody
	if msg.Op != SendMore {
		return body, fmt.Errorf("%w: expected %s but got %s", errUnexpectedOp, SendMore, msg.Op)
	}
	return body, decMode.Unmarshal(msg.Payload, &body)
}

// ParseSendMoreBytes returns the body of a SendMoreBytes message.
func ParseSendMoreBytes(msg *Message) (SendMoreBytesBody, error) {
	var body SendMoreBytesBody
	if msg.Op != SendMoreBytes {
		return body, fmt.Errorf("%w: expected %s but got %s", errUnexpectedOp, SendMoreBytes, msg.Op)
	}
	return body, decMode.Unmarshal(msg.Payload, &body)
}

// DefaultFloodClassifier classifies messages by their op alone.
type DefaultFloodClassifier struct{}

func (DefaultFloodClassifier) IsFloodMessage(msg *Message) bool {
	return msg.Op.IsFlood()
}
