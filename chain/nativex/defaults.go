// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package nativex

import (
	cfg "github.com/ChainSafe/nativex/config"
	"github.com/adrg/xdg"
)

var (
	// defaultName is the default node name
	defaultName = "Nativex Node"
	// defaultID is the default chain id
	defaultID = "nativex"
	// defaultBasePath is the default base path
	defaultBasePath = xdg.DataHome + "/nativex"
)

// DefaultConfig returns a nativex node configuration
func DefaultConfig() *cfg.Config {
	config := cfg.DefaultConfig()
	config.BaseConfig.Name = defaultName
	config.BaseConfig.Chain = defaultID
	config.BaseConfig.BasePath = defaultBasePath
	config.Metrics.Enabled = true

	return config
}
