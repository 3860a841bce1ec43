// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"testing"

	"github.com/ChainSafe/nativex/chain/dev"
	"github.com/ChainSafe/nativex/config"
	"github.com/ChainSafe/nativex/lib/runtime/wasm"
)

var testLoader = wasm.BytesLoader{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

// newTestConfig returns a dev node configuration with a temporary
// base path and servers listening on random local ports.
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := dev.DefaultConfig()
	cfg.BaseConfig.BasePath = t.TempDir()
	cfg.BaseConfig.LogLevel = "warn"
	cfg.RPC.Address = "127.0.0.1:0"
	cfg.Metrics.Address = "127.0.0.1:0"
	return cfg
}
