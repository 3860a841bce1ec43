// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package genesis

import "github.com/ChainSafe/nativex/internal/primitives/core/crypto"

const (
	// TokenDecimals is the number of decimals of the native token.
	TokenDecimals = 18
	// TokenSymbol is the ticker of the native token.
	TokenSymbol = "NTX"
	// SS58Prefix is the address format of the chain.
	SS58Prefix = crypto.DefaultSS58Prefix
	// ProtocolID is the network protocol id of the chain.
	ProtocolID = "nativex"
	// MaxNominations is the maximum number of targets of a nominator.
	MaxNominations = 16
)

var (
	// NATIVEX is one token in base units.
	NATIVEX = MustParseBalance("1000000000000000000")
	// Endowment is the balance given to every endowed account.
	Endowment = NATIVEX.Mul(10_000_000)
	// Stash is the amount bonded by every staker.
	Stash = Endowment.Div(1000)
)

// Perbill is a fraction in parts per billion.
type Perbill uint32

// PerbillFromPercent returns the Perbill of a percentage.
func PerbillFromPercent(percent uint32) Perbill {
	return Perbill(percent * 10_000_000)
}

// SlashRewardFraction is the fraction of a slash paid to reporters.
var SlashRewardFraction = PerbillFromPercent(10)

// DefaultProperties returns the token properties of the chain specification.
func DefaultProperties() map[string]interface{} {
	return map[string]interface{}{
		"tokenDecimals": TokenDecimals,
		"tokenSymbol":   TokenSymbol,
	}
}
