// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package crypto

import "errors"

// DevPhrase is the root phrase for our publicly known keys.
const DevPhrase = "bottom drive obey lake curtain smoke basket hold race lonely fit walk"

// ErrSoftJunction is returned when deriving through a soft junction
// with a scheme or key which only supports hard derivation.
var ErrSoftJunction = errors.New("soft junction in derivation path")

// ByteArray is implemented by types which are fixed-length byte arrays.
type ByteArray interface {
	// ToRawVec returns a copy of the raw bytes.
	ToRawVec() []byte
}

// Public is a public key of any supported scheme.
type Public interface {
	ByteArray
}

// Pair is a key pair able to derive child pairs through
// a path of junctions and to sign messages.
type Pair[Seed any] interface {
	// Derive derives a child pair from a series of junctions.
	// The seed returned is the seed of the child pair.
	Derive(path []DeriveJunction, seed *Seed) (Pair[Seed], Seed, error)
	Public() Public
	Sign(message []byte) ([]byte, error)
}

// CryptoTypeID identifies a cryptographic algorithm used by a key pair.
type CryptoTypeID string

const (
	// SR25519 is the crypto type of Schnorrkel/Ristretto keys.
	SR25519 CryptoTypeID = "sr25"
	// ED25519 is the crypto type of Edwards keys.
	ED25519 CryptoTypeID = "ed25"
)

// KeyTypeID is an identifier for a type of cryptographic key,
// which is the purpose a key is used for.
type KeyTypeID string

// Known key types.
const (
	// BABE is the key type of the block authoring module.
	BABE KeyTypeID = "babe"
	// GRANDPA is the key type of the finality module.
	GRANDPA KeyTypeID = "gran"
	// Account is the key type of accounts.
	Account KeyTypeID = "acco"
	// ImOnline is the key type of the heartbeat module.
	ImOnline KeyTypeID = "imon"
	// AuthorityDiscovery is the key type of the authority discovery module.
	AuthorityDiscovery KeyTypeID = "audi"
	// Staking is the key type for staking.
	Staking KeyTypeID = "stak"
)

// CryptoType returns the signature scheme keys of the
// key type are generated with.
func (k KeyTypeID) CryptoType() CryptoTypeID {
	if k == GRANDPA {
		return ED25519
	}
	return SR25519
}
