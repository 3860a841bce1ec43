// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"fmt"

	"github.com/ChainSafe/nativex/chain/dev"
	"github.com/ChainSafe/nativex/chain/nativex"
	"github.com/ChainSafe/nativex/lib/genesis"
	"github.com/ChainSafe/nativex/lib/runtime/wasm"
)

// Chain ids of the built-in chain specifications.
const (
	DevChainID     = "dev"
	LocalChainID   = "local"
	NativexChainID = "nativex"
)

// LoadSpec returns the chain specification of the given id. Ids other
// than the built-in ones are paths to JSON chain specification files.
// The runtime code is only loaded for built-in chains.
func LoadSpec(id string, loader wasm.Loader) (*genesis.Genesis, error) {
	switch id {
	case "":
		return nil, ErrNoChainSpecified
	case DevChainID:
		return dev.Config(loader)
	case LocalChainID:
		return dev.LocalConfig(loader)
	case NativexChainID:
		return nativex.Config(loader)
	}

	gen, err := genesis.NewGenesisFromJSON(id)
	if err != nil {
		return nil, fmt.Errorf("loading chain specification: %w", err)
	}
	return gen, nil
}
