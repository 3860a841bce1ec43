// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ChainSafe/nativex/config"
	"github.com/ChainSafe/nativex/dot/state"
	"github.com/ChainSafe/nativex/lib/genesis"
	"github.com/ChainSafe/nativex/lib/runtime/wasm"
)

// BuildSpec object for working with building genesis JSON files
type BuildSpec struct {
	genesis *genesis.Genesis
}

// ToJSON outputs genesis JSON in human-readable form
func (b *BuildSpec) ToJSON() ([]byte, error) {
	return b.genesis.ToJSON()
}

// ToJSONRaw outputs genesis JSON in raw form
func (b *BuildSpec) ToJSONRaw() ([]byte, error) {
	return b.genesis.ToJSONRaw()
}

// Genesis returns the chain specification.
func (b *BuildSpec) Genesis() *genesis.Genesis {
	return b.genesis
}

// BuildFromChain builds a BuildSpec from a chain id or chain specification file
func BuildFromChain(id string, loader wasm.Loader) (*BuildSpec, error) {
	gen, err := LoadSpec(id, loader)
	if err != nil {
		return nil, err
	}
	return &BuildSpec{genesis: gen}, nil
}

// BuildFromDB builds a BuildSpec from the chain specification stored
// in the node database at the configured base path
func BuildFromDB(cfg *config.Config) (*BuildSpec, error) {
	levels, err := setupLogger(cfg)
	if err != nil {
		return nil, err
	}

	stateSrvc := state.NewService(state.Config{
		Path:     cfg.BaseConfig.BasePath,
		LogLevel: levels.of("state"),
	})

	err = stateSrvc.Start()
	if err != nil {
		_ = stateSrvc.Stop()
		return nil, fmt.Errorf("cannot start state service: %w", err)
	}

	gen, err := stateSrvc.Base.LoadGenesis()
	stopErr := stateSrvc.Stop()
	if err != nil {
		return nil, fmt.Errorf("cannot load chain specification: %w", err)
	}
	if stopErr != nil {
		return nil, fmt.Errorf("cannot stop state service: %w", stopErr)
	}

	return &BuildSpec{genesis: gen}, nil
}

// WriteGenesisSpecFile writes the build-spec output to the file path
// given, refusing to overwrite an existing file.
func WriteGenesisSpecFile(data []byte, fp string) error {
	_, err := os.Stat(fp)
	if err == nil {
		return fmt.Errorf("%w: %s", ErrSpecFileExists, fp)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	err = os.MkdirAll(filepath.Dir(fp), 0o700)
	if err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	return os.WriteFile(fp, data, 0o600)
}
