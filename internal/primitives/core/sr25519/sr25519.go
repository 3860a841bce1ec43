// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sr25519

import (
	"fmt"
	"strings"

	"github.com/ChainSafe/go-schnorrkel"
	"github.com/ChainSafe/nativex/internal/primitives/core/crypto"
	"github.com/ChainSafe/nativex/lib/common"
)

// SigningContext is the signing context used for sr25519 signatures.
var SigningContext = []byte("substrate")

// Public is an sr25519 public key.
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

// Pair is an sr25519 key pair.
type Pair struct {
	public *schnorrkel.PublicKey
	secret *schnorrkel.SecretKey
}

// NewPairFromSeed creates a key pair from a mini secret key seed,
// expanded the way substrate does it.
func NewPairFromSeed(seed [32]byte) (Pair, error) {
	mini, err := schnorrkel.NewMiniSecretKeyFromRaw(seed)
	if err != nil {
		return Pair{}, fmt.Errorf("creating mini secret key: %w", err)
	}
	return newPairFromSecret(mini.ExpandEd25519())
}

func newPairFromSecret(secret *schnorrkel.SecretKey) (Pair, error) {
	public, err := secret.Public()
	if err != nil {
		return Pair{}, fmt.Errorf("computing public key: %w", err)
	}
	return Pair{
		public: public,
		secret: secret,
	}, nil
}

// NewPairFromPhrase creates a key pair from a BIP-39 phrase and an
// optional password. The seed returned is the mini secret key.
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
	pair, err = NewPairFromSeed(seed)
	return pair, seed, err
}

// Derive derives a child pair through the path given.
// Hard junctions derive a new mini secret key; soft junctions
// derive the key arithmetically, after which no seed exists
// for the child and the zero seed is returned.
func (p Pair) Derive(path []crypto.DeriveJunction, seed *[32]byte) (crypto.Pair[[32]byte], [32]byte, error) {
	var (
		current = p.secret
		derived [32]byte
		hasSeed = seed != nil
	)
	if seed != nil {
		derived = *seed
	}

	for _, junction := range path {
		chainCode := junction.ChainCode()
		if junction.IsHard() {
			mini, _, err := current.HardDeriveMiniSecretKey([]byte{}, chainCode)
			if err != nil {
				return Pair{}, [32]byte{}, fmt.Errorf("hard deriving: %w", err)
			}
			current = mini.ExpandEd25519()
			derived = mini.Encode()
			hasSeed = true
			continue
		}

		extended, err := schnorrkel.DeriveKeySimple(current, []byte{}, chainCode)
		if err != nil {
			return Pair{}, [32]byte{}, fmt.Errorf("soft deriving: %w", err)
		}
		current, err = extended.Secret()
		if err != nil {
			return Pair{}, [32]byte{}, fmt.Errorf("soft deriving: %w", err)
		}
		hasSeed = false
	}

	pair, err := newPairFromSecret(current)
	if err != nil {
		return Pair{}, [32]byte{}, err
	}

	if !hasSeed {
		derived = [32]byte{}
	}
	return pair, derived, nil
}

// Public returns the public key of the pair.
func (p Pair) Public() crypto.Public {
	return Public(p.public.Encode())
}

// Sign signs the message in the substrate signing context.
func (p Pair) Sign(message []byte) ([]byte, error) {
	transcript := schnorrkel.NewSigningContext(SigningContext, message)
	signature, err := p.secret.Sign(transcript)
	if err != nil {
		return nil, fmt.Errorf("signing: %w", err)
	}
	encoded := signature.Encode()
	return encoded[:], nil
}

// Verify verifies an sr25519 signature of the message for the public key.
func Verify(public Public, message, signature []byte) (bool, error) {
	if len(signature) != schnorrkel.SignatureSize {
		return false, fmt.Errorf("signature has length %d instead of %d", len(signature), schnorrkel.SignatureSize)
	}

	pub, err := schnorrkel.NewPublicKey(public)
	if err != nil {
		return false, fmt.Errorf("decoding public key: %w", err)
	}

	var sigBytes [schnorrkel.SignatureSize]byte
	copy(sigBytes[:], signature)
	sig := new(schnorrkel.Signature)
	err = sig.Decode(sigBytes)
	if err != nil {
		return false, fmt.Errorf("decoding signature: %w", err)
	}

	transcript := schnorrkel.NewSigningContext(SigningContext, message)
	return pub.Verify(sig, transcript)
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
		root, err = NewPairFromSeed(seed)
		if err != nil {
			return Pair{}, [32]byte{}, err
		}
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
