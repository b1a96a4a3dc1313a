// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mr-tron/base58/base58"

	"github.com/ava-labs/flowcontrol/utils/hashing"
)

const (
	checksumLen = 4

	// maximum length byte slice can be marshalled to a string
	maxCB58EncodeSize = 16 * 1024 // 16 KB
)

var (
	errEncodingOverFlow = errors.New("encoding overflow")
	errMissingChecksum  = errors.New("input string is smaller than the checksum size")
	errBadChecksum      = errors.New("invalid input checksum")
)

// EncodeCB58 returns [bytes] in checksummed base-58 encoding.
func EncodeCB58(bytes []byte) (string, error) {
	if len(bytes) > maxCB58EncodeSize {
		return "", fmt.Errorf("%w: byte slice length (%d) > maximum for cb58 (%d)", errEncodingOverFlow, len(bytes), maxCB58EncodeSize)
	}
	checked := make([]byte, len(bytes)+checksumLen)
	copy(checked, bytes)
	copy(checked[len(bytes):], hashing.Checksum(bytes, checksumLen))
	return base58.Encode(checked), nil
}

// DecodeCB58 is the inverse of EncodeCB58.
func DecodeCB58(str string) ([]byte, error) {
	if len(str) == 0 {
		return []byte{}, nil
	}
	decodedBytes, err := base58.Decode(str)
	if err != nil {
		return nil, err
	}
	if len(decodedBytes) < checksumLen {
		return nil, errMissingChecksum
	}
	// Verify the checksum
	rawBytes := decodedBytes[:len(decodedBytes)-checksumLen]
	checksum := decodedBytes[len(decodedBytes)-checksumLen:]
	if !bytes.Equal(checksum, hashing.Checksum(rawBytes, checksumLen)) {
		return nil, errBadChecksum
	}
	return rawBytes, nil
}
