// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dev

import (
	"fmt"

	"github.com/ChainSafe/nativex/internal/primitives/core/crypto"
	"github.com/ChainSafe/nativex/internal/primitives/keyring"
	"github.com/ChainSafe/nativex/lib/genesis"
	"github.com/ChainSafe/nativex/lib/runtime/wasm"
)

// DefaultEndowedAccounts returns the accounts endowed when a chain
// specification does not name its endowed accounts: every development
// account and its stash.
func DefaultEndowedAccounts() []crypto.AccountID {
	accounts := make([]crypto.AccountID, 0, 2*len(keyring.All()))
	for _, k := range keyring.All() {
		accounts = append(accounts, k.AccountID())
	}
	for _, k := range keyring.All() {
		accounts = append(accounts, genesis.AccountIDFromSeed(k.StashSeed()))
	}
	return accounts
}

// TestnetGenesis assembles the runtime genesis of a development or test
// network, authored by the given authorities and governed by Alice.
func TestnetGenesis(authorities []keyring.Keyring, nominators []crypto.AccountID,
	endowed []crypto.AccountID) (*genesis.Runtime, error) {
	authorityKeys := make([]genesis.AuthorityKeys, len(authorities))
	for i, authority := range authorities {
		authorityKeys[i] = genesis.AuthorityKeysFromSeed(authority.Seed())
	}

	assembler := genesis.NewAssembler(genesis.AssemblerConfig{
		ValidatorCountMultiplier: 1,
		Endowment:                genesis.Endowment,
		Stash:                    genesis.Stash,
		MaxNominations:           genesis.MaxNominations,
		DefaultEndowed:           DefaultEndowedAccounts(),
		Form:                     genesis.Patch,
		Rand:                     genesis.NewRand(),
	})

	return assembler.Assemble(genesis.AssemblerInput{
		Authorities: authorityKeys,
		Nominators:  nominators,
		RootKey:     keyring.Alice.AccountID(),
		Endowed:     endowed,
	})
}

// Config returns the chain specification of the single authority
// development chain.
func Config(loader wasm.Loader) (*genesis.Genesis, error) {
	code, err := loader.Code()
	if err != nil {
		return nil, fmt.Errorf("loading runtime code: %w", err)
	}

	runtime, err := TestnetGenesis(
		[]keyring.Keyring{keyring.Alice},
		nil,
		[]crypto.AccountID{
			keyring.Alice.AccountID(),
			genesis.AccountIDFromSeed(keyring.Alice.StashSeed()),
			genesis.AccountIDFromSeed(keyring.Bob.StashSeed()),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("assembling development genesis: %w", err)
	}

	return genesis.NewBuilder(code).
		WithName(defaultName).
		WithID(defaultID).
		WithChainType(genesis.ChainTypeDevelopment).
		WithClass(genesis.ChainClassDevelopment).
		WithProtocolID(genesis.ProtocolID).
		WithProperties(genesis.DefaultProperties()).
		WithPatch(runtime).
		Build()
}

// LocalConfig returns the chain specification of the local testnet
// authored by Alice and Bob.
func LocalConfig(loader wasm.Loader) (*genesis.Genesis, error) {
	code, err := loader.Code()
	if err != nil {
		return nil, fmt.Errorf("loading runtime code: %w", err)
	}

	runtime, err := TestnetGenesis([]keyring.Keyring{keyring.Alice, keyring.Bob}, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("assembling local testnet genesis: %w", err)
	}

	return genesis.NewBuilder(code).
		WithName("Local Testnet").
		WithID(defaultLocalID).
		WithChainType(genesis.ChainTypeLocal).
		WithClass(genesis.ChainClassDevelopment).
		WithProtocolID(genesis.ProtocolID).
		WithProperties(genesis.DefaultProperties()).
		WithPatch(runtime).
		Build()
}
