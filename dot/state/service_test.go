// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"testing"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/nativex/internal/log"
	"github.com/ChainSafe/nativex/lib/genesis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenesis(t *testing.T) *genesis.Genesis {
	t.Helper()

	code := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	gen, err := genesis.NewBuilder(code).
		WithName("Nativex Node").
		WithID("nativex").
		WithChainType(genesis.ChainTypeLocal).
		WithClass(genesis.ChainClassProduction).
		WithPatch(&genesis.Runtime{Sudo: &genesis.Sudo{}}).
		Build()
	require.NoError(t, err)
	return gen
}

func Test_Service_Initialise_Start(t *testing.T) {
	t.Parallel()

	basepath := t.TempDir()
	gen := newTestGenesis(t)

	service := NewService(Config{Path: basepath, LogLevel: log.Warn})
	err := service.Initialise(gen)
	require.NoError(t, err)
	assert.Nil(t, service.DB())

	err = service.Start()
	require.NoError(t, err)
	t.Cleanup(func() {
		err := service.Stop()
		assert.NoError(t, err)
	})

	loaded, err := service.Base.LoadGenesis()
	require.NoError(t, err)
	assert.Equal(t, "nativex", loaded.ID)
	assert.Equal(t, genesis.ChainTypeLocal, loaded.ChainType)
	// the stored class wins over the class derived from the chain type
	assert.Equal(t, genesis.ChainClassProduction, loaded.Class())

	name, err := service.Base.LoadNodeName()
	require.NoError(t, err)
	assert.Equal(t, "Nativex Node", name)
}

func Test_Service_Initialise_replaces(t *testing.T) {
	t.Parallel()

	basepath := t.TempDir()

	service := NewService(Config{Path: basepath, LogLevel: log.Warn})
	err := service.Initialise(newTestGenesis(t))
	require.NoError(t, err)

	gen := newTestGenesis(t)
	gen.ID = "other"
	err = service.Initialise(gen)
	require.NoError(t, err)

	err = service.Start()
	require.NoError(t, err)
	defer service.Stop() //nolint:errcheck

	loaded, err := service.Base.LoadGenesis()
	require.NoError(t, err)
	assert.Equal(t, "other", loaded.ID)
}

func Test_Service_Start_notInitialised(t *testing.T) {
	t.Parallel()

	service := NewService(Config{Path: t.TempDir(), LogLevel: log.Warn})

	err := service.Start()
	assert.ErrorIs(t, err, ErrNotInitialised)

	err = service.Stop()
	assert.NoError(t, err)
}

func Test_Service_memDB(t *testing.T) {
	t.Parallel()

	service := NewService(Config{Path: t.TempDir(), LogLevel: log.Warn})
	service.UseMemDB()

	err := service.Initialise(newTestGenesis(t))
	require.NoError(t, err)
	require.NotNil(t, service.DB())

	err = service.Start()
	require.NoError(t, err)

	loaded, err := service.Base.LoadGenesis()
	require.NoError(t, err)
	assert.Equal(t, "nativex", loaded.ID)

	err = service.Stop()
	require.NoError(t, err)
	assert.Nil(t, service.DB())
}

func Test_BaseState_LoadGenesis_missing(t *testing.T) {
	t.Parallel()

	db, err := chaindb.NewBadgerDB(&chaindb.Config{
		InMemory: true,
		DataDir:  t.TempDir(),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	base := NewBaseState(db)

	has, err := base.HasGenesis()
	require.NoError(t, err)
	assert.False(t, has)

	_, err = base.LoadGenesis()
	assert.ErrorIs(t, err, chaindb.ErrKeyNotFound)
}

func Test_Service_Initialise_nodeName(t *testing.T) {
	t.Parallel()

	service := NewService(Config{Path: t.TempDir(), LogLevel: log.Warn, NodeName: "alpha-bravo-42"})
	service.UseMemDB()

	err := service.Initialise(newTestGenesis(t))
	require.NoError(t, err)
	t.Cleanup(func() {
		err := service.Stop()
		assert.NoError(t, err)
	})

	name, err := service.Base.LoadNodeName()
	require.NoError(t, err)
	assert.Equal(t, "alpha-bravo-42", name)
}
