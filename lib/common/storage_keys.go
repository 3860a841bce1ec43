// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

// CodeKey is the key where runtime code is stored in the trie
var CodeKey = []byte(":code")

// StorageKey returns twox128(pallet) ++ twox128(item), the prefix
// of every value stored under a pallet storage item.
func StorageKey(pallet, item string) []byte {
	key := make([]byte, 0, 32)
	key = append(key, Twox128Hash([]byte(pallet))...)
	key = append(key, Twox128Hash([]byte(item))...)
	return key
}

// StorageMapKey returns the storage key of a map entry whose
// key is hashed with blake2_128_concat.
func StorageMapKey(pallet, item string, mapKey []byte) ([]byte, error) {
	hashed, err := Blake2b128Concat(mapKey)
	if err != nil {
		return nil, err
	}
	return append(StorageKey(pallet, item), hashed...), nil
}
