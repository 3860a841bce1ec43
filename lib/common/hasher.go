// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/binary"

	"github.com/OneOfOne/xxhash"
	"golang.org/x/crypto/blake2b"
)

// Blake2b128 returns the 128-bit blake2b hash of the input data
func Blake2b128(in []byte) ([]byte, error) {
	h, err := blake2b.New(16, nil)
	if err != nil {
		return nil, err
	}

	_, err = h.Write(in)
	if err != nil {
		return nil, err
	}

	return h.Sum(nil), nil
}

// Blake2b128Concat returns the 128-bit blake2b hash of the
// input data followed by the input data itself.
func Blake2b128Concat(in []byte) ([]byte, error) {
	h, err := Blake2b128(in)
	if err != nil {
		return nil, err
	}
	return append(h, in...), nil
}

// Blake2bHash returns the 256-bit blake2b hash of the input data
func Blake2bHash(in []byte) (Hash, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return [32]byte{}, err
	}

	_, err = h.Write(in)
	if err != nil {
		return [32]byte{}, err
	}

	hash := h.Sum(nil)
	var buf = [32]byte{}
	copy(buf[:], hash)
	return buf, nil
}

// MustBlake2bHash returns the 256-bit blake2b hash of the input data. It panics if it fails to hash.
func MustBlake2bHash(in []byte) Hash {
	hash, err := Blake2bHash(in)
	if err != nil {
		panic(err)
	}

	return hash
}

// Blake2b512 returns the 512-bit blake2b hash of the input data
func Blake2b512(in []byte) [64]byte {
	return blake2b.Sum512(in)
}

func twox64WithSeed(in []byte, seed uint64) []byte {
	hasher := xxhash.NewS64(seed)
	_, _ = hasher.Write(in) // never fails
	hash := make([]byte, 8)
	binary.LittleEndian.PutUint64(hash, hasher.Sum64())
	return hash
}

// Twox64 returns the xx64 hash of the input data
func Twox64(in []byte) []byte {
	return twox64WithSeed(in, 0)
}

// Twox128Hash computes xxHash64 twice with seeds 0 and 1 applied on given byte array
func Twox128Hash(msg []byte) []byte {
	return append(twox64WithSeed(msg, 0), twox64WithSeed(msg, 1)...)
}
