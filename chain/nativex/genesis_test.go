// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package nativex

import (
	"testing"

	"github.com/ChainSafe/nativex/internal/primitives/core/crypto"
	"github.com/ChainSafe/nativex/internal/primitives/keyring"
	"github.com/ChainSafe/nativex/lib/genesis"
	"github.com/ChainSafe/nativex/lib/runtime/wasm"
	"github.com/ChainSafe/nativex/lib/runtime/wasm/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Config(t *testing.T) {
	t.Parallel()

	g, err := Config(wasm.BytesLoader{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00})
	require.NoError(t, err)

	assert.Equal(t, "Nativex Node", g.Name)
	assert.Equal(t, "nativex", g.ID)
	assert.Equal(t, genesis.ChainTypeLive, g.ChainType)
	assert.Equal(t, genesis.ChainClassProduction, g.Class())
	assert.Nil(t, g.Genesis.RuntimeGenesis.Patch)
	require.NotNil(t, g.Genesis.RuntimeGenesis.Config)

	runtime := g.Runtime()
	assert.NotNil(t, runtime.System)
	assert.NotNil(t, runtime.Grandpa)
	assert.Equal(t, uint32(2), runtime.Staking.ValidatorCount)
	assert.Equal(t, uint32(1), runtime.Staking.MinimumValidatorCount)

	// the authority stash is appended after the explicit accounts
	expected := []crypto.AccountID{
		keyring.Alice.AccountID(),
		keyring.Bob.AccountID(),
		genesis.AccountIDFromSeed("Bob//stash"),
		genesis.AccountIDFromSeed("Alice//stash"),
	}
	require.Len(t, runtime.Balances.Balances, len(expected))
	for i, account := range expected {
		assert.Equal(t, account, runtime.Balances.Balances[i].AccountID)
	}

	alice := keyring.Alice.AccountID()
	assert.Equal(t, &alice, runtime.Sudo.Key)
}

func Test_Config_codeError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockLoader(ctrl)
	loader.EXPECT().Code().Return(nil, wasm.ErrCodeNotFound)

	g, err := Config(loader)
	assert.ErrorIs(t, err, wasm.ErrCodeNotFound)
	assert.Nil(t, g)
}

func Test_DefaultConfig(t *testing.T) {
	t.Parallel()

	config := DefaultConfig()
	assert.Equal(t, "nativex", config.BaseConfig.Chain)
	assert.True(t, config.Metrics.Enabled)
	assert.NoError(t, config.ValidateBasic())
}
