// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hashing

import (
	"golang.org/x/crypto/blake2b"
)

// Blake2_256 returns the blake2b 256-bit hash of data.
func Blake2_256(data []byte) [32]byte {
	return blake2b.Sum256(data)
}

// Blake2_128 returns the blake2b 128-bit hash of data.
func Blake2_128(data []byte) (hash [16]byte) {
	h, err := blake2b.New(16, nil)
	if err != nil {
		// only fails for invalid sizes or keys
		panic(err)
	}
	_, _ = h.Write(data)
	copy(hash[:], h.Sum(nil))
	return hash
}
