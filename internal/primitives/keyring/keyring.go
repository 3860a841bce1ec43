// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package keyring

import (
	"fmt"
	"strings"

	"github.com/ChainSafe/nativex/internal/primitives/core/crypto"
	"github.com/ChainSafe/nativex/internal/primitives/core/ed25519"
	"github.com/ChainSafe/nativex/internal/primitives/core/sr25519"
)

// Keyring is a well known development account.
type Keyring uint

const (
	Alice Keyring = iota
	Bob
	Charlie
	Dave
	Eve
	Ferdie
)

var names = [...]string{"Alice", "Bob", "Charlie", "Dave", "Eve", "Ferdie"}

// All returns every development account, in order.
func All() []Keyring {
	return []Keyring{Alice, Bob, Charlie, Dave, Eve, Ferdie}
}

// FromString returns the development account of the name given,
// ignoring case.
func FromString(name string) (Keyring, error) {
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return Keyring(i), nil
		}
	}
	return 0, fmt.Errorf("unknown development account: %q", name)
}

func (k Keyring) String() string {
	if int(k) >= len(names) {
		return fmt.Sprintf("Keyring(%d)", uint(k))
	}
	return names[k]
}

// Seed returns the seed of the account, such as "Alice".
func (k Keyring) Seed() string {
	return k.String()
}

// StashSeed returns the seed of the stash account, such as "Alice//stash".
func (k Keyring) StashSeed() string {
	return k.String() + "//stash"
}

// URI returns the secret URI of the account, such as "//Alice".
func (k Keyring) URI() string {
	return "//" + k.String()
}

// Pair returns the sr25519 pair of the account.
func (k Keyring) Pair() crypto.Pair[[32]byte] {
	pair, err := sr25519.NewPairFromString(k.URI(), nil)
	if err != nil {
		panic(fmt.Sprintf("static values are known good; qed: %s", err))
	}
	return pair
}

// Ed25519Pair returns the ed25519 pair of the account.
func (k Keyring) Ed25519Pair() crypto.Pair[[32]byte] {
	pair, err := ed25519.NewPairFromString(k.URI(), nil)
	if err != nil {
		panic(fmt.Sprintf("static values are known good; qed: %s", err))
	}
	return pair
}

// AccountID returns the account identifier of the account.
func (k Keyring) AccountID() crypto.AccountID {
	return crypto.AccountID(k.Pair().Public().(sr25519.Public))
}

// Sign signs the message with the sr25519 pair of the account.
func (k Keyring) Sign(message []byte) []byte {
	signature, err := k.Pair().Sign(message)
	if err != nil {
		panic(fmt.Sprintf("signing with development key %s: %s", k, err))
	}
	return signature
}
