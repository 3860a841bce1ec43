// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package crypto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ChainSafe/nativex/internal/primitives/core/hashing"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
)

// JunctionIDLen is the length of the chain code of a junction.
const JunctionIDLen = 32

// DeriveJunctionSoft is a soft (public) junction chain code.
type DeriveJunctionSoft [JunctionIDLen]byte

// DeriveJunctionHard is a hard (private) junction chain code.
type DeriveJunctionHard [JunctionIDLen]byte

// DeriveJunction is a single step of a derivation path.
// Its value is either a DeriveJunctionSoft or a DeriveJunctionHard.
type DeriveJunction struct {
	inner any
}

// NewDeriveJunction creates a junction from a soft or hard chain code.
func NewDeriveJunction[T DeriveJunctionSoft | DeriveJunctionHard](value T) DeriveJunction {
	return DeriveJunction{inner: value}
}

// Value returns the DeriveJunctionSoft or DeriveJunctionHard value.
func (dj DeriveJunction) Value() any {
	return dj.inner
}

// IsHard returns true if the junction is a hard junction.
func (dj DeriveJunction) IsHard() bool {
	_, ok := dj.inner.(DeriveJunctionHard)
	return ok
}

// ChainCode returns the chain code of the junction.
func (dj DeriveJunction) ChainCode() (cc [JunctionIDLen]byte) {
	switch value := dj.inner.(type) {
	case DeriveJunctionSoft:
		return value
	case DeriveJunctionHard:
		return value
	default:
		panic(fmt.Sprintf("unsupported junction type %T", value))
	}
}

// Harden returns the hard version of the junction.
func (dj DeriveJunction) Harden() DeriveJunction {
	return NewDeriveJunction(DeriveJunctionHard(dj.ChainCode()))
}

// Soften returns the soft version of the junction.
func (dj DeriveJunction) Soften() DeriveJunction {
	return NewDeriveJunction(DeriveJunctionSoft(dj.ChainCode()))
}

// chainCodeFromIndex SCALE encodes the index; the encoding is used
// as the chain code, hashed with blake2b-256 if longer than 32 bytes.
func chainCodeFromIndex(index any) (cc [JunctionIDLen]byte, err error) {
	encoded, err := codec.Encode(index)
	if err != nil {
		return cc, fmt.Errorf("encoding junction index: %w", err)
	}

	if len(encoded) > JunctionIDLen {
		return hashing.Blake2_256(encoded), nil
	}

	copy(cc[:], encoded)
	return cc, nil
}

// NewDeriveJunctionFromString parses a single junction string, without
// its leading separator. A junction starting with "/" is hard.
// Numeric junctions are encoded as a u64 and any other junction
// as a string.
func NewDeriveJunctionFromString(j string) (DeriveJunction, error) {
	code, hard := strings.CutPrefix(j, "/")

	var index any = code
	if n, err := strconv.ParseUint(code, 10, 64); err == nil {
		index = n
	}

	cc, err := chainCodeFromIndex(index)
	if err != nil {
		return DeriveJunction{}, err
	}

	junction := NewDeriveJunction(DeriveJunctionSoft(cc))
	if hard {
		junction = junction.Harden()
	}
	return junction, nil
}
