// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package genesis

import (
	"testing"

	"github.com/ChainSafe/nativex/internal/primitives/core/crypto"
	"github.com/ChainSafe/nativex/internal/primitives/core/ed25519"
	"github.com/ChainSafe/nativex/internal/primitives/core/sr25519"
	"github.com/ChainSafe/nativex/lib/common"
	"github.com/stretchr/testify/assert"
)

const (
	aliceSR25519      = "0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"
	aliceStashSR25519 = "0xbe5ddb1579b72e84524fc29e78609e3caf42e85aa118ebfe0b0ad404b5bdd25f"
	aliceED25519      = "0x88dc3417d5058ec4b4503e0c12ea1a0a89be200fe98922423d4334014fa6b0ee"
	bobSR25519        = "0x8eaf04151687736326c9fea17e25fc5287613693c912909cb226aa4794f26a48"
	bobStashSR25519   = "0xfe65717dad0447d715f660a0a58411de509b42e6efb8375f562f58a554d5860e"
)

func mustAccountID(hex string) crypto.AccountID {
	return crypto.AccountID(common.MustHexToHash(hex))
}

func Test_AccountIDFromSeed(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		seed      string
		accountID crypto.AccountID
	}{
		"alice": {
			seed:      "Alice",
			accountID: mustAccountID(aliceSR25519),
		},
		"alice stash": {
			seed:      "Alice//stash",
			accountID: mustAccountID(aliceStashSR25519),
		},
		"bob": {
			seed:      "Bob",
			accountID: mustAccountID(bobSR25519),
		},
		"bob stash": {
			seed:      "Bob//stash",
			accountID: mustAccountID(bobStashSR25519),
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			accountID := AccountIDFromSeed(testCase.seed)
			assert.Equal(t, testCase.accountID, accountID)
		})
	}
}

func Test_AccountIDFromSeed_address(t *testing.T) {
	t.Parallel()

	accountID := AccountIDFromSeed("Alice")
	assert.Equal(t, "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY", accountID.String())
}

func Test_PairFromSeed_scheme(t *testing.T) {
	t.Parallel()

	grandpa := PairFromSeed("Alice", crypto.GRANDPA)
	assert.IsType(t, ed25519.Pair{}, grandpa)

	babe := PairFromSeed("Alice", crypto.BABE)
	assert.IsType(t, sr25519.Pair{}, babe)
}

func Test_PairFromSeed_panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		PairFromSeed("Alice/soft", crypto.GRANDPA)
	})
}

func Test_AuthorityKeysFromSeed(t *testing.T) {
	t.Parallel()

	keys := AuthorityKeysFromSeed("Alice")

	aliceSR := sr25519.Public(common.MustHexToHash(aliceSR25519))
	expected := AuthorityKeys{
		Stash:              mustAccountID(aliceStashSR25519),
		Controller:         mustAccountID(aliceSR25519),
		Grandpa:            ed25519.Public(common.MustHexToHash(aliceED25519)),
		Babe:               aliceSR,
		ImOnline:           aliceSR,
		AuthorityDiscovery: aliceSR,
	}
	assert.Equal(t, expected, keys)

	assert.Equal(t, SessionKeys{
		Grandpa:            expected.Grandpa,
		Babe:               aliceSR,
		ImOnline:           aliceSR,
		AuthorityDiscovery: aliceSR,
	}, keys.SessionKeys())
}
