// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package ed25519

import (
	"crypto/ed25519"
	"fmt"
	"strings"

	"github.com/ChainSafe/go-schnorrkel"
	"github.com/ChainSafe/nativex/internal/primitives/core/crypto"
	"github.com/ChainSafe/nativex/internal/primitives/core/hashing"
	"github.com/ChainSafe/nativex/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
)

// Public is an ed25519 public key.
type Public [32]byte

// ToRawVec returns a copy of the public key bytes.
func (p Public) ToRawVec() []byte {
	return append([]byte(nil), p[:]...)
}

// String returns the SS58 address of the key
// with the default network prefix.
func (p Public) String() string {
	return crypto.AccountID(p).String()
}

// MarshalText encodes the public key as an SS58 address.
func (p Public) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes an SS58 address or a 0x prefixed hex key.
func (p *Public) UnmarshalText(text []byte) error {
	id, err := crypto.ParseAccountID(string(text))
	if err != nil {
		return err
	}
	*p = Public(id)
	return nil
}

type hardJunctionInput struct {
	ID         string
	SecretSeed [32]byte
	ChainCode  [32]byte
}

// deriveHardJunction hashes the SCALE encoding of
// ("Ed25519HDKD", seed, chain code) with blake2b-256.
func deriveHardJunction(secretSeed, cc [32]byte) ([32]byte, error) {
	encoded, err := codec.Encode(hardJunctionInput{
		ID:         "Ed25519HDKD",
		SecretSeed: secretSeed,
		ChainCode:  cc,
	})
	if err != nil {
		return [32]byte{}, fmt.Errorf("encoding hard junction: %w", err)
	}
	return hashing.Blake2_256(encoded), nil
}

// Pair is an ed25519 key pair.
type Pair struct {
	public ed25519.PublicKey
	secret ed25519.PrivateKey
}

// Derive derives a child pair through the path given.
// Only hard junctions are supported.
func (p Pair) Derive(path []crypto.DeriveJunction, _ *[32]byte) (crypto.Pair[[32]byte], [32]byte, error) {
	acc := p.Seed()
	for _, junction := range path {
		if !junction.IsHard() {
			return Pair{}, [32]byte{}, crypto.ErrSoftJunction
		}

		var err error
		acc, err = deriveHardJunction(acc, junction.ChainCode())
		if err != nil {
			return Pair{}, [32]byte{}, err
		}
	}
	return NewPairFromSeed(acc), acc, nil
}

// Seed returns the seed of the pair.
func (p Pair) Seed() (seed [32]byte) {
	copy(seed[:], p.secret.Seed())
	return seed
}

// NewPairFromSeed creates a key pair from a 32 bytes seed.
func NewPairFromSeed(seed [32]byte) Pair {
	secret := ed25519.NewKeyFromSeed(seed[:])
	return Pair{
		public: secret.Public().(ed25519.PublicKey),
		secret: secret,
	}
}

// NewPairFromPhrase creates a key pair from a BIP-39 phrase and
// an optional password. The seed is the first 32 bytes of the
// substrate BIP-39 seed.
func NewPairFromPhrase(phrase string, password *string) (pair Pair, seed [32]byte, err error) {
	pass := ""
	if password != nil {
		pass = *password
	}

	bigSeed, err := schnorrkel.SeedFromMnemonic(phrase, pass)
	if err != nil {
		return Pair{}, seed, fmt.Errorf("%w: %s", crypto.ErrInvalidPhrase, err)
	}

	copy(seed[:], bigSeed[:32])
	return NewPairFromSeed(seed), seed, nil
}

// Public returns the public key of the pair.
func (p Pair) Public() crypto.Public {
	var public Public
	copy(public[:], p.public)
	return public
}

// Sign signs the message.
func (p Pair) Sign(message []byte) ([]byte, error) {
	return ed25519.Sign(p.secret, message), nil
}

// Verify verifies an ed25519 signature of the message for the public key.
func Verify(public Public, message, signature []byte) bool {
	return ed25519.Verify(public[:], message, signature)
}

// NewPairFromStringWithSeed interprets the secret URI s to generate a pair.
// The URI phrase is either a 0x prefixed 32 bytes hex seed or a BIP-39 phrase.
// The password override, if not nil, replaces the URI password.
func NewPairFromStringWithSeed(s string, passwordOverride *string) (
	pair crypto.Pair[[32]byte], seed [32]byte, err error) {
	secretURI, err := crypto.NewSecretURI(s)
	if err != nil {
		return Pair{}, [32]byte{}, err
	}

	password := secretURI.Password
	if passwordOverride != nil {
		password = passwordOverride
	}

	var root Pair
	if strings.HasPrefix(secretURI.Phrase, "0x") {
		seedBytes, err := common.HexToBytes(secretURI.Phrase)
		if err != nil {
			return Pair{}, [32]byte{}, fmt.Errorf("decoding hex seed: %w", err)
		}
		if len(seedBytes) != len(seed) {
			return Pair{}, [32]byte{}, fmt.Errorf("%w: hex seed has %d bytes", crypto.ErrInvalidSeed, len(seedBytes))
		}
		copy(seed[:], seedBytes)
		root = NewPairFromSeed(seed)
	} else {
		root, seed, err = NewPairFromPhrase(secretURI.Phrase, password)
		if err != nil {
			return Pair{}, [32]byte{}, err
		}
	}

	return root.Derive(secretURI.Junctions, &seed)
}

// NewPairFromString interprets the secret URI s to generate a pair.
// See NewPairFromStringWithSeed for the format of s.
func NewPairFromString(s string, passwordOverride *string) (crypto.Pair[[32]byte], error) {
	pair, _, err := NewPairFromStringWithSeed(s, passwordOverride)
	return pair, err
}

var _ crypto.Pair[[32]byte] = Pair{}
