// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common_test

import (
	"testing"

	"github.com/ChainSafe/nativex/lib/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlake2b218_EmptyHash(t *testing.T) {
	// test case from https://github.com/noot/blake2b_test which uses the blake2-rfp rust crate
	// also see https://github.com/paritytech/substrate/blob/master/core/primitives/src/hashing.rs
	in := []byte{}
	h, err := common.Blake2b128(in)
	require.NoError(t, err)

	expected, err := common.HexToBytes("0xcae66941d9efbd404e4d88758ea67670")
	require.NoError(t, err)
	require.Equal(t, expected, h)
}

func TestBlake128(t *testing.T) {
	in := []byte("static")
	h, err := common.Blake2b128(in)
	require.NoError(t, err)

	expected, err := common.HexToBytes("0x440973e4e50902f1d0ec97de357eb2fd")
	require.NoError(t, err)
	require.Equal(t, expected, h)
}

func TestBlake2b128Concat(t *testing.T) {
	in := []byte("static")
	h, err := common.Blake2b128Concat(in)
	require.NoError(t, err)

	expected := append(common.MustHexToBytes("0x440973e4e50902f1d0ec97de357eb2fd"), in...)
	require.Equal(t, expected, h)
}

func TestBlake2bHash_EmptyHash(t *testing.T) {
	// test case from https://github.com/noot/blake2b_test which uses the blake2-rfp rust crate
	// also see https://github.com/paritytech/substrate/blob/master/core/primitives/src/hashing.rs
	in := []byte{}
	h, err := common.Blake2bHash(in)
	require.NoError(t, err)

	expected, err := common.HexToHash("0x0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8")
	require.NoError(t, err)
	require.Equal(t, expected, h)
}

func TestTwox128(t *testing.T) {
	h := common.Twox128Hash([]byte("System"))
	require.Equal(t, common.MustHexToBytes("0x26aa394eea5630e07c48ae0c9558cef7"), h)
}

func Test_StorageKey(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		pallet string
		item   string
		key    string
	}{
		"sudo key": {
			pallet: "Sudo",
			item:   "Key",
			key:    "0x5c0d1176a568c1f92944340dbfed9e9c530ebca703c85910e7164cb7d1c9e47b",
		},
		"system account": {
			pallet: "System",
			item:   "Account",
			key:    "0x26aa394eea5630e07c48ae0c9558cef7b99d880ec681799c0cf30e8886371da9",
		},
		"total issuance": {
			pallet: "Balances",
			item:   "TotalIssuance",
			key:    "0xc2261276cc9d1f8598ea4b6a74b15c2f57c875e4cff74148e4628f264b974c80",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			key := common.StorageKey(testCase.pallet, testCase.item)

			assert.Equal(t, testCase.key, common.BytesToHex(key))
		})
	}
}

func Test_StorageMapKey(t *testing.T) {
	t.Parallel()

	mapKey := []byte{1, 2, 3}

	key, err := common.StorageMapKey("System", "Account", mapKey)
	require.NoError(t, err)

	require.Len(t, key, 32+16+len(mapKey))
	assert.Equal(t, common.StorageKey("System", "Account"), key[:32])
	assert.Equal(t, mapKey, key[48:])
}

func Test_HexToBytes(t *testing.T) {
	t.Parallel()

	_, err := common.HexToBytes("abcd")
	assert.ErrorIs(t, err, common.ErrNoPrefix)

	b, err := common.HexToBytes("0xabc")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0a, 0xbc}, b)
}

func Test_Hash_JSON(t *testing.T) {
	t.Parallel()

	h := common.MustHexToHash("0x0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8")

	data, err := h.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"0x0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"`, string(data))

	var decoded common.Hash
	err = decoded.UnmarshalJSON(data)
	require.NoError(t, err)
	assert.Equal(t, h, decoded)
	assert.Equal(t, "0x0e5751c0...f12fe3a8", h.Short())

	err = decoded.UnmarshalJSON([]byte(`"0x0102"`))
	assert.Error(t, err)
}
