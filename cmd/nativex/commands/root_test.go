// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"path/filepath"
	"testing"

	cfg "github.com/ChainSafe/nativex/config"
	"github.com/ChainSafe/nativex/dot"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(t *testing.T, args ...string) *viper.Viper {
	t.Helper()

	cmd := &cobra.Command{Use: "test"}
	v := newViper()
	err := addRootFlags(cmd, v)
	require.NoError(t, err)

	err = cmd.PersistentFlags().Parse(args)
	require.NoError(t, err)
	return v
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	basePath := t.TempDir()
	tomlPath := filepath.Join(t.TempDir(), "config.toml")
	fromFile := cfg.DefaultConfig()
	fromFile.BaseConfig.Name = "from-file"
	fromFile.BaseConfig.Chain = "ignored"
	fromFile.BaseConfig.BasePath = basePath
	fromFile.Metrics.Enabled = true
	err := fromFile.ExportTOML(tomlPath)
	require.NoError(t, err)

	testCases := map[string]struct {
		args       []string
		check      func(t *testing.T, config *cfg.Config)
		errWrapped error
	}{
		"no chain": {
			errWrapped: dot.ErrNoChainSpecified,
		},
		"dev flag": {
			args: []string{"--dev"},
			check: func(t *testing.T, config *cfg.Config) {
				assert.Equal(t, "dev", config.BaseConfig.Chain)
				assert.Equal(t, "Development", config.BaseConfig.Name)
				assert.Equal(t, "info", config.BaseConfig.LogLevel)
			},
		},
		"nativex with overrides": {
			args: []string{"--chain", "nativex", "--base-path", basePath, "--name", "node-1",
				"--log", "info,genesis=debug", "--rpc-addr", "127.0.0.1:9944", "--no-rpc"},
			check: func(t *testing.T, config *cfg.Config) {
				assert.Equal(t, "nativex", config.BaseConfig.Chain)
				assert.Equal(t, basePath, config.BaseConfig.BasePath)
				assert.Equal(t, "node-1", config.BaseConfig.Name)
				assert.Equal(t, "info,genesis=debug", config.BaseConfig.LogLevel)
				assert.Equal(t, "127.0.0.1:9944", config.RPC.Address)
				assert.False(t, config.RPC.Enabled)
				assert.True(t, config.Metrics.Enabled)
			},
		},
		"configuration file": {
			args: []string{"--chain", "local", "--config", tomlPath},
			check: func(t *testing.T, config *cfg.Config) {
				assert.Equal(t, "local", config.BaseConfig.Chain)
				assert.Equal(t, "from-file", config.BaseConfig.Name)
				assert.Equal(t, basePath, config.BaseConfig.BasePath)
				assert.True(t, config.Metrics.Enabled)
			},
		},
		"invalid log level": {
			args: []string{"--dev", "--log", "loud"},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			v := newTestViper(t, testCase.args...)
			config, err := ParseConfig(v)

			if testCase.check == nil {
				assert.Error(t, err)
				if testCase.errWrapped != nil {
					assert.ErrorIs(t, err, testCase.errWrapped)
				}
				assert.Nil(t, config)
				return
			}

			require.NoError(t, err)
			testCase.check(t, config)
		})
	}
}

func TestParseConfig_env(t *testing.T) {
	basePath := t.TempDir()
	t.Setenv("NATIVEX_CHAIN", "local")
	t.Setenv("NATIVEX_BASE_PATH", basePath)

	config, err := ParseConfig(newTestViper(t))
	require.NoError(t, err)
	assert.Equal(t, "local", config.BaseConfig.Chain)
	assert.Equal(t, basePath, config.BaseConfig.BasePath)
}
