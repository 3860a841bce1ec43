// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package genesis

import (
	"fmt"

	"github.com/ChainSafe/nativex/internal/primitives/core/crypto"
	"github.com/ChainSafe/nativex/internal/primitives/core/ed25519"
	"github.com/ChainSafe/nativex/internal/primitives/core/sr25519"
)

// AuthorityKeys holds the keys a validator is started with.
type AuthorityKeys struct {
	Stash              crypto.AccountID
	Controller         crypto.AccountID
	Grandpa            ed25519.Public
	Babe               sr25519.Public
	ImOnline           sr25519.Public
	AuthorityDiscovery sr25519.Public
}

// PairFromSeed derives the key pair of the development seed
// for the key type given. The seed is used as the hard derivation
// path "//<seed>" from the development phrase. GRANDPA keys are
// ed25519 keys, all other key types are sr25519 keys.
// It panics if the derivation fails since seeds are hard-coded.
func PairFromSeed(seed string, keyType crypto.KeyTypeID) crypto.Pair[[32]byte] {
	suri := "//" + seed

	var (
		pair crypto.Pair[[32]byte]
		err  error
	)
	switch keyType.CryptoType() {
	case crypto.ED25519:
		pair, err = ed25519.NewPairFromString(suri, nil)
	default:
		pair, err = sr25519.NewPairFromString(suri, nil)
	}
	if err != nil {
		panic(fmt.Sprintf("static values are valid; qed: deriving %s key for %q: %s",
			keyType, seed, err))
	}
	return pair
}

// SR25519PublicFromSeed returns the sr25519 public key of the seed.
func SR25519PublicFromSeed(seed string) sr25519.Public {
	return PairFromSeed(seed, crypto.BABE).Public().(sr25519.Public)
}

// ED25519PublicFromSeed returns the ed25519 public key of the seed.
func ED25519PublicFromSeed(seed string) ed25519.Public {
	return PairFromSeed(seed, crypto.GRANDPA).Public().(ed25519.Public)
}

// AccountIDFromSeed returns the account identifier of the seed,
// which is its sr25519 public key.
func AccountIDFromSeed(seed string) crypto.AccountID {
	return crypto.AccountID(PairFromSeed(seed, crypto.Account).Public().(sr25519.Public))
}

// AuthorityKeysFromSeed returns the authority keys of the seed.
// The stash account is derived from "<seed>//stash".
func AuthorityKeysFromSeed(seed string) AuthorityKeys {
	return AuthorityKeys{
		Stash:              AccountIDFromSeed(seed + "//stash"),
		Controller:         AccountIDFromSeed(seed),
		Grandpa:            ED25519PublicFromSeed(seed),
		Babe:               SR25519PublicFromSeed(seed),
		ImOnline:           SR25519PublicFromSeed(seed),
		AuthorityDiscovery: SR25519PublicFromSeed(seed),
	}
}

// SessionKeys are the session keys registered for a validator.
type SessionKeys struct {
	Grandpa            ed25519.Public `json:"grandpa"`
	Babe               sr25519.Public `json:"babe"`
	ImOnline           sr25519.Public `json:"im_online"`
	AuthorityDiscovery sr25519.Public `json:"authority_discovery"`
}

// SessionKeys returns the session keys of the authority.
func (a AuthorityKeys) SessionKeys() SessionKeys {
	return SessionKeys{
		Grandpa:            a.Grandpa,
		Babe:               a.Babe,
		ImOnline:           a.ImOnline,
		AuthorityDiscovery: a.AuthorityDiscovery,
	}
}
