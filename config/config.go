// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ChainSafe/nativex/internal/log"
	"github.com/go-playground/validator/v10"
	"github.com/naoina/toml"
	"github.com/qdm12/gotree"
)

const (
	// DefaultConfigFile is the name of the configuration file in the base path
	DefaultConfigFile = "config.toml"
	// DefaultLogLevel is the default log level
	DefaultLogLevel = "info"
	// DefaultRuntime is the default runtime code path
	DefaultRuntime = "./runtime/nativex_runtime.compact.compressed.wasm"
	// DefaultRPCAddress is the default RPC listening address
	DefaultRPCAddress = "127.0.0.1:9933"
	// DefaultMetricsAddress is the default Prometheus metrics listening address
	DefaultMetricsAddress = "127.0.0.1:9615"
)

// Config defines the configuration for the nativex node
type Config struct {
	BaseConfig BaseConfig    `mapstructure:"global" toml:"global"`
	RPC        RPCConfig     `mapstructure:"rpc" toml:"rpc"`
	Metrics    MetricsConfig `mapstructure:"metrics" toml:"metrics"`
}

// BaseConfig is the base configuration for the node
type BaseConfig struct {
	Name     string `mapstructure:"name" toml:"name,omitempty"`
	Chain    string `mapstructure:"chain" toml:"chain,omitempty" validate:"required"`
	BasePath string `mapstructure:"base-path" toml:"base-path,omitempty" validate:"required"`
	Runtime  string `mapstructure:"runtime" toml:"runtime,omitempty"`
	LogLevel string `mapstructure:"log" toml:"log,omitempty"`
}

// RPCConfig is the configuration of the JSON-RPC server
type RPCConfig struct {
	Enabled bool     `mapstructure:"enabled" toml:"enabled"`
	Address string   `mapstructure:"address" toml:"address,omitempty" validate:"required_if=Enabled true"`
	Modules []string `mapstructure:"modules" toml:"modules,omitempty"`
}

// MetricsConfig is the configuration of the Prometheus metrics server
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" toml:"enabled"`
	Address string `mapstructure:"address" toml:"address,omitempty" validate:"required_if=Enabled true"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseConfig: BaseConfig{
			Runtime:  DefaultRuntime,
			LogLevel: DefaultLogLevel,
		},
		RPC: RPCConfig{
			Enabled: true,
			Address: DefaultRPCAddress,
			Modules: []string{"system", "syncstate", "rpc"},
		},
		Metrics: MetricsConfig{
			Address: DefaultMetricsAddress,
		},
	}
}

// ValidateBasic performs basic validation on the config
func (c *Config) ValidateBasic() error {
	err := validator.New().Struct(c)
	if err != nil {
		return err
	}

	_, _, err = log.ParseLevels(c.BaseConfig.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	return nil
}

// LogLevels returns the global log level and the per package log levels
func (c *Config) LogLevels() (global log.Level, packages map[string]log.Level, err error) {
	return log.ParseLevels(c.BaseConfig.LogLevel)
}

// String returns a tree representation of the configuration
func (c *Config) String() string {
	return c.toTree().String()
}

func (c *Config) toTree() *gotree.Node {
	node := gotree.New("Configuration")

	global := node.Appendf("Global")
	global.Appendf("Name: %s", c.BaseConfig.Name)
	global.Appendf("Chain: %s", c.BaseConfig.Chain)
	global.Appendf("Base path: %s", c.BaseConfig.BasePath)
	global.Appendf("Runtime: %s", c.BaseConfig.Runtime)
	global.Appendf("Log level: %s", c.BaseConfig.LogLevel)

	rpc := node.Appendf("RPC")
	rpc.Appendf("Enabled: %t", c.RPC.Enabled)
	if c.RPC.Enabled {
		rpc.Appendf("Address: %s", c.RPC.Address)
		rpc.Appendf("Modules: %s", strings.Join(c.RPC.Modules, ", "))
	}

	metrics := node.Appendf("Metrics")
	metrics.Appendf("Enabled: %t", c.Metrics.Enabled)
	if c.Metrics.Enabled {
		metrics.Appendf("Address: %s", c.Metrics.Address)
	}

	return node
}

// LoadTOML overrides the configuration values set in the TOML file at path.
func (c *Config) LoadTOML(path string) error {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("opening configuration file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	err = toml.NewDecoder(f).Decode(c)
	if err != nil {
		return fmt.Errorf("decoding configuration file %s: %w", path, err)
	}
	return nil
}

// ExportTOML writes the configuration to a TOML file at path.
func (c *Config) ExportTOML(path string) error {
	raw, err := toml.Marshal(*c)
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}

	err = os.WriteFile(path, raw, 0o600)
	if err != nil {
		return fmt.Errorf("writing configuration file: %w", err)
	}
	return nil
}

// EnsureRoot creates the base path and writes the configuration file
// in it if the file does not exist yet.
func EnsureRoot(basePath string, c *Config) error {
	err := os.MkdirAll(basePath, 0o700)
	if err != nil {
		return fmt.Errorf("creating base path: %w", err)
	}

	configPath := filepath.Join(basePath, DefaultConfigFile)
	_, err = os.Stat(configPath)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, os.ErrNotExist):
		return c.ExportTOML(configPath)
	default:
		return err
	}
}
