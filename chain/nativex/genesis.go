// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package nativex

import (
	"fmt"

	"github.com/ChainSafe/nativex/internal/primitives/core/crypto"
	"github.com/ChainSafe/nativex/internal/primitives/keyring"
	"github.com/ChainSafe/nativex/lib/genesis"
	"github.com/ChainSafe/nativex/lib/runtime/wasm"
)

const validatorCountMultiplier = 2

// Config returns the chain specification of the nativex network.
// The staking validator count is twice the number of authorities
// and every pallet of the runtime is configured.
func Config(loader wasm.Loader) (*genesis.Genesis, error) {
	code, err := loader.Code()
	if err != nil {
		return nil, fmt.Errorf("loading runtime code: %w", err)
	}

	authorities := []genesis.AuthorityKeys{
		genesis.AuthorityKeysFromSeed(keyring.Alice.Seed()),
	}

	assembler := genesis.NewAssembler(genesis.AssemblerConfig{
		ValidatorCountMultiplier: validatorCountMultiplier,
		Endowment:                genesis.Endowment,
		Stash:                    genesis.Stash,
		MaxNominations:           genesis.MaxNominations,
		Form:                     genesis.Full,
		Rand:                     genesis.NewRand(),
	})

	runtime, err := assembler.Assemble(genesis.AssemblerInput{
		Authorities: authorities,
		RootKey:     keyring.Alice.AccountID(),
		Endowed: []crypto.AccountID{
			keyring.Alice.AccountID(),
			keyring.Bob.AccountID(),
			genesis.AccountIDFromSeed(keyring.Bob.StashSeed()),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("assembling nativex genesis: %w", err)
	}

	return genesis.NewBuilder(code).
		WithName(defaultName).
		WithID(defaultID).
		WithChainType(genesis.ChainTypeLive).
		WithClass(genesis.ChainClassProduction).
		WithProtocolID(genesis.ProtocolID).
		WithProperties(genesis.DefaultProperties()).
		WithConfig(runtime).
		Build()
}
