// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package crypto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ChainSafe/nativex/lib/common"
)

// AccountIDLen is the length of an account identifier.
const AccountIDLen = 32

// AccountID is a 32 bytes account identifier derived from
// a signing public key.
type AccountID [AccountIDLen]byte

var ErrAccountIDLength = errors.New("account id must be 32 bytes")

// NewAccountID returns the account identifier of a public key.
func NewAccountID(pub Public) (AccountID, error) {
	raw := pub.ToRawVec()
	if len(raw) != AccountIDLen {
		return AccountID{}, fmt.Errorf("%w: got %d bytes", ErrAccountIDLength, len(raw))
	}

	var id AccountID
	copy(id[:], raw)
	return id, nil
}

// ToRawVec returns a copy of the account identifier bytes.
func (a AccountID) ToRawVec() []byte {
	return append([]byte(nil), a[:]...)
}

// String returns the SS58 address of the account
// using the default network prefix.
func (a AccountID) String() string {
	address, err := SS58Encode(a[:], DefaultSS58Prefix)
	if err != nil {
		// default prefix is always valid
		panic(err)
	}
	return address
}

// Hex returns the 0x prefixed hex encoding of the account.
func (a AccountID) Hex() string {
	return common.BytesToHex(a[:])
}

// MarshalText encodes the account as an SS58 address.
func (a AccountID) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes an SS58 address or a 0x prefixed hex string.
func (a *AccountID) UnmarshalText(text []byte) error {
	id, err := ParseAccountID(string(text))
	if err != nil {
		return err
	}
	*a = id
	return nil
}

// ParseAccountID parses an SS58 address of any network
// prefix or a 0x prefixed hex string.
func ParseAccountID(s string) (AccountID, error) {
	var raw []byte
	if strings.HasPrefix(s, "0x") {
		var err error
		raw, err = common.HexToBytes(s)
		if err != nil {
			return AccountID{}, fmt.Errorf("decoding hex account id: %w", err)
		}
	} else {
		var err error
		_, raw, err = SS58Decode(s)
		if err != nil {
			return AccountID{}, err
		}
	}

	if len(raw) != AccountIDLen {
		return AccountID{}, fmt.Errorf("%w: got %d bytes", ErrAccountIDLength, len(raw))
	}

	var id AccountID
	copy(id[:], raw)
	return id, nil
}
