// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package genesis

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/holiman/uint256"
)

// ErrBalanceOverflow is returned when a balance does not fit in 128 bits.
var ErrBalanceOverflow = errors.New("balance overflows 128 bits")

const balanceBits = 128

// Balance is an unsigned 128 bits amount of base units.
// Its JSON form is a bare integer literal.
type Balance struct {
	value uint256.Int
}

// NewBalance returns a balance of v base units.
func NewBalance(v uint64) Balance {
	var b Balance
	b.value.SetUint64(v)
	return b
}

// ParseBalance parses a decimal string into a balance.
func ParseBalance(s string) (Balance, error) {
	var b Balance
	err := b.value.SetFromDecimal(s)
	if err != nil {
		return Balance{}, fmt.Errorf("parsing balance %q: %w", s, err)
	}

	if b.value.BitLen() > balanceBits {
		return Balance{}, fmt.Errorf("%w: %s", ErrBalanceOverflow, s)
	}

	return b, nil
}

// MustParseBalance parses a decimal string into a balance and panics on error.
func MustParseBalance(s string) Balance {
	b, err := ParseBalance(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Mul returns b multiplied by n. It panics on overflow, which can only
// come from constants defined in code.
func (b Balance) Mul(n uint64) Balance {
	var result Balance
	_, overflow := result.value.MulOverflow(&b.value, uint256.NewInt(n))
	if overflow || result.value.BitLen() > balanceBits {
		panic(fmt.Sprintf("%s: %s * %d", ErrBalanceOverflow, b, n))
	}
	return result
}

// Div returns b divided by n, rounded down.
func (b Balance) Div(n uint64) Balance {
	var result Balance
	result.value.Div(&b.value, uint256.NewInt(n))
	return result
}

// Add returns b + other, or an error if the sum overflows 128 bits.
func (b Balance) Add(other Balance) (Balance, error) {
	var result Balance
	result.value.Add(&b.value, &other.value)
	if result.value.BitLen() > balanceBits {
		return Balance{}, fmt.Errorf("%w: %s + %s", ErrBalanceOverflow, b, other)
	}
	return result, nil
}

// Cmp compares b and other and returns -1, 0 or 1.
func (b Balance) Cmp(other Balance) int {
	return b.value.Cmp(&other.value)
}

// Equal returns true if b and other are equal.
func (b Balance) Equal(other Balance) bool {
	return b.value.Eq(&other.value)
}

// IsZero returns true if the balance is zero.
func (b Balance) IsZero() bool {
	return b.value.IsZero()
}

// String returns the decimal representation of the balance.
func (b Balance) String() string {
	return b.value.Dec()
}

// LittleEndian returns the 16 bytes little endian encoding of the balance.
func (b Balance) LittleEndian() (le [16]byte) {
	be := b.value.Bytes32()
	for i := 0; i < 16; i++ {
		le[i] = be[31-i]
	}
	return le
}

// MarshalJSON encodes the balance as an integer literal.
func (b Balance) MarshalJSON() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalJSON decodes an integer literal or a quoted decimal string.
func (b *Balance) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		err := json.Unmarshal(data, &s)
		if err != nil {
			return err
		}
		data = []byte(s)
	}

	parsed, err := ParseBalance(string(data))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
