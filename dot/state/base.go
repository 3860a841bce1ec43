// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"fmt"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/nativex/lib/genesis"
)

const genesisPrefix = "genesis"

var (
	genesisSpecKey = []byte("spec")
	chainClassKey  = []byte("class")
	nodeNameKey    = []byte("node_name")
)

// BaseState stores the chain specification and node metadata
// in the genesis table of the database.
type BaseState struct {
	db chaindb.Database
}

// NewBaseState returns a new BaseState
func NewBaseState(db chaindb.Database) *BaseState {
	return &BaseState{
		db: chaindb.NewTable(db, genesisPrefix),
	}
}

// StoreNodeName stores the current node name
func (s *BaseState) StoreNodeName(nodeName string) error {
	return s.db.Put(nodeNameKey, []byte(nodeName))
}

// LoadNodeName loads the stored node name
func (s *BaseState) LoadNodeName() (string, error) {
	nodeName, err := s.db.Get(nodeNameKey)
	if err != nil {
		return "", err
	}

	return string(nodeName), nil
}

// StoreGenesis stores the chain specification and its chain class.
func (s *BaseState) StoreGenesis(gen *genesis.Genesis) error {
	enc, err := gen.ToJSON()
	if err != nil {
		return fmt.Errorf("cannot encode chain specification: %w", err)
	}

	err = s.db.Put(genesisSpecKey, enc)
	if err != nil {
		return fmt.Errorf("storing chain specification: %w", err)
	}

	err = s.db.Put(chainClassKey, []byte(gen.Class().String()))
	if err != nil {
		return fmt.Errorf("storing chain class: %w", err)
	}

	return nil
}

// HasGenesis returns true if a chain specification is stored.
func (s *BaseState) HasGenesis() (bool, error) {
	return s.db.Has(genesisSpecKey)
}

// LoadGenesis retrieves the stored chain specification. The chain class
// recorded at initialisation takes precedence over the one derived from
// the chain type.
func (s *BaseState) LoadGenesis() (*genesis.Genesis, error) {
	enc, err := s.db.Get(genesisSpecKey)
	if err != nil {
		return nil, err
	}

	gen, err := genesis.NewGenesisFromJSONBytes(enc)
	if err != nil {
		return nil, fmt.Errorf("decoding stored chain specification: %w", err)
	}

	class, err := s.db.Get(chainClassKey)
	if err != nil {
		return nil, fmt.Errorf("loading chain class: %w", err)
	}

	chainClass, err := genesis.ParseChainClass(string(class))
	if err != nil {
		return nil, err
	}
	gen.SetClass(chainClass)

	return gen, nil
}
