// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dev

import (
	cfg "github.com/ChainSafe/nativex/config"
	"github.com/adrg/xdg"
)

var (
	// defaultName is the default node name
	defaultName = "Development"
	// defaultID is the default chain id
	defaultID = "dev"
	// defaultBasePath is the default base path of the dev node
	defaultBasePath = xdg.DataHome + "/nativex/dev"

	// defaultLocalID is the default chain id of the local testnet
	defaultLocalID = "local"
	// defaultLocalBasePath is the default base path of the local testnet node
	defaultLocalBasePath = xdg.DataHome + "/nativex/local"
)

// DefaultConfig returns a dev node configuration
func DefaultConfig() *cfg.Config {
	config := cfg.DefaultConfig()
	config.BaseConfig.Name = defaultName
	config.BaseConfig.Chain = defaultID
	config.BaseConfig.BasePath = defaultBasePath
	config.BaseConfig.LogLevel = "info"
	config.RPC.Enabled = true

	return config
}

// DefaultLocalConfig returns a local testnet node configuration
func DefaultLocalConfig() *cfg.Config {
	config := cfg.DefaultConfig()
	config.BaseConfig.Name = "Local Testnet"
	config.BaseConfig.Chain = defaultLocalID
	config.BaseConfig.BasePath = defaultLocalBasePath
	config.RPC.Enabled = true

	return config
}
