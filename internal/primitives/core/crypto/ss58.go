// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package crypto

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
	"golang.org/x/crypto/blake2b"
)

// DefaultSS58Prefix is the generic substrate address format.
const DefaultSS58Prefix uint16 = 42

const (
	ss58ChecksumLen = 2
	// prefixes above this value need the two bytes encoding
	ss58SimplePrefixMax = 63
	ss58PrefixMax       = 16383
)

var ss58Pre = []byte("SS58PRE")

var (
	ErrSS58PrefixTooLarge = errors.New("ss58 prefix is too large")
	ErrSS58BadBase58      = errors.New("ss58 address is not valid base58")
	ErrSS58BadLength      = errors.New("ss58 address has an invalid length")
	ErrSS58BadChecksum    = errors.New("ss58 checksum mismatch")
	ErrSS58BadPrefix      = errors.New("ss58 prefix is reserved")
)

func ss58Checksum(payload []byte) []byte {
	h := blake2b.Sum512(append(append([]byte{}, ss58Pre...), payload...))
	return h[:ss58ChecksumLen]
}

func ss58PrefixBytes(prefix uint16) ([]byte, error) {
	switch {
	case prefix <= ss58SimplePrefixMax:
		return []byte{byte(prefix)}, nil
	case prefix <= ss58PrefixMax:
		// lower six bits of the lower byte go in the first byte,
		// the rest is spread over the second byte.
		first := byte((prefix&0b0000_0000_1111_1100)>>2) | 0b0100_0000
		second := byte(prefix>>8) | byte((prefix&0b0000_0000_0000_0011)<<6)
		return []byte{first, second}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrSS58PrefixTooLarge, prefix)
	}
}

// SS58Encode encodes the public key bytes into an SS58 address
// for the network prefix given.
func SS58Encode(pub []byte, prefix uint16) (string, error) {
	prefixBytes, err := ss58PrefixBytes(prefix)
	if err != nil {
		return "", err
	}

	payload := append(prefixBytes, pub...)
	return base58.Encode(append(payload, ss58Checksum(payload)...)), nil
}

// SS58Decode decodes an SS58 address into its network prefix
// and public key bytes. Only 32 bytes keys are supported.
func SS58Decode(address string) (prefix uint16, pub []byte, err error) {
	data := base58.Decode(address)
	if len(data) == 0 {
		return 0, nil, fmt.Errorf("%w: %q", ErrSS58BadBase58, address)
	}

	var prefixLen int
	switch {
	case data[0] <= ss58SimplePrefixMax:
		prefixLen = 1
		prefix = uint16(data[0])
	case data[0] < 0b1000_0000:
		if len(data) < 2 {
			return 0, nil, fmt.Errorf("%w: %d bytes", ErrSS58BadLength, len(data))
		}
		prefixLen = 2
		lower := (data[0] << 2) | (data[1] >> 6)
		upper := data[1] & 0b0011_1111
		prefix = uint16(lower) | uint16(upper)<<8
	default:
		return 0, nil, fmt.Errorf("%w: first byte 0x%x", ErrSS58BadPrefix, data[0])
	}

	const keyLen = 32
	if len(data) != prefixLen+keyLen+ss58ChecksumLen {
		return 0, nil, fmt.Errorf("%w: %d bytes", ErrSS58BadLength, len(data))
	}

	payload := data[:prefixLen+keyLen]
	checksum := data[prefixLen+keyLen:]
	if !bytes.Equal(checksum, ss58Checksum(payload)) {
		return 0, nil, fmt.Errorf("%w: for address %s", ErrSS58BadChecksum, address)
	}

	return prefix, payload[prefixLen:], nil
}
