// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ChainSafe/nativex/chain/dev"
	"github.com/ChainSafe/nativex/chain/nativex"
	cfg "github.com/ChainSafe/nativex/config"
	"github.com/ChainSafe/nativex/dot"
	"github.com/ChainSafe/nativex/internal/log"
	"github.com/ChainSafe/nativex/lib/runtime/wasm"
	"github.com/ChainSafe/nativex/lib/utils"
	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables overriding flags,
// for example NATIVEX_BASE_PATH for --base-path.
const EnvPrefix = "NATIVEX"

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

// ParseConfig returns the configuration of the chain selected by the
// --chain or --dev flags, overridden by the TOML configuration file
// and then by the flags and environment variables set.
func ParseConfig(v *viper.Viper) (*cfg.Config, error) {
	chain := v.GetString("chain")
	if v.GetBool("dev") {
		chain = dot.DevChainID
	}
	if chain == "" {
		return nil, dot.ErrNoChainSpecified
	}

	var config *cfg.Config
	switch chain {
	case dot.DevChainID:
		config = dev.DefaultConfig()
	case dot.LocalChainID:
		config = dev.DefaultLocalConfig()
	case dot.NativexChainID:
		config = nativex.DefaultConfig()
	default:
		// chain specification file
		config = cfg.DefaultConfig()
		config.BaseConfig.BasePath = filepath.Join(xdg.DataHome, "nativex", "custom")
	}

	if v.IsSet("config") {
		err := config.LoadTOML(v.GetString("config"))
		if err != nil {
			return nil, err
		}
	}
	config.BaseConfig.Chain = chain

	if v.IsSet("name") {
		config.BaseConfig.Name = v.GetString("name")
	}
	if v.IsSet("base-path") {
		config.BaseConfig.BasePath = v.GetString("base-path")
	}
	if v.IsSet("log") {
		config.BaseConfig.LogLevel = v.GetString("log")
	}
	if v.IsSet("runtime") {
		config.BaseConfig.Runtime = v.GetString("runtime")
	}
	if v.IsSet("rpc-addr") {
		config.RPC.Address = v.GetString("rpc-addr")
	}
	if v.IsSet("rpc-methods") {
		config.RPC.Modules = v.GetStringSlice("rpc-methods")
	}
	if v.IsSet("no-rpc") {
		config.RPC.Enabled = !v.GetBool("no-rpc")
	}
	if v.IsSet("metrics") {
		config.Metrics.Enabled = v.GetBool("metrics")
	}
	if v.IsSet("metrics-addr") {
		config.Metrics.Address = v.GetString("metrics-addr")
	}

	config.BaseConfig.BasePath = utils.ExpandDir(config.BaseConfig.BasePath)

	if err := config.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("error in config: %w", err)
	}

	return config, nil
}

// newViper returns a viper instance reading NATIVEX_ prefixed
// environment variables.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// NewRootCommand creates the root command and its subcommands
func NewRootCommand() (*cobra.Command, error) {
	v := newViper()

	cmd := &cobra.Command{
		Use:   "nativex",
		Short: "Official nativex command-line interface",
		Long: `Nativex builds the genesis state of nativex chains and serves it.
Usage:
	nativex --dev
	nativex build-spec --chain local --raw
	nativex init --chain nativex --base-path ~/.nativex
	nativex key inspect //Alice`,
		Version:       dot.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execRun(v)
		},
	}

	if err := addRootFlags(cmd, v); err != nil {
		return nil, err
	}

	cmd.AddCommand(
		newRunCommand(v),
		newBuildSpecCommand(v),
		newInitCommand(v),
		newExportStateCommand(v),
		newPurgeChainCommand(v),
		newKeyCommand(),
	)

	return cmd, nil
}

// addRootFlags adds the root flags to the command
func addRootFlags(cmd *cobra.Command, v *viper.Viper) error {
	if err := addStringFlagBindViper(cmd, v,
		"chain",
		"",
		"Chain to run: dev, local, nativex or the path to a chain specification file",
		"chain"); err != nil {
		return fmt.Errorf("failed to add --chain flag: %s", err)
	}
	if err := addBoolFlagBindViper(cmd, v,
		"dev",
		false,
		"Run the development chain, equivalent to --chain=dev",
		"dev"); err != nil {
		return fmt.Errorf("failed to add --dev flag: %s", err)
	}
	if err := addStringFlagBindViper(cmd, v,
		"config",
		"",
		"Path to a TOML configuration file",
		"config"); err != nil {
		return fmt.Errorf("failed to add --config flag: %s", err)
	}
	if err := addStringFlagBindViper(cmd, v,
		"name",
		"",
		"Name of the node",
		"name"); err != nil {
		return fmt.Errorf("failed to add --name flag: %s", err)
	}
	if err := addStringFlagBindViper(cmd, v,
		"base-path",
		"",
		"base-path to use for the node",
		"base-path"); err != nil {
		return fmt.Errorf("failed to add --base-path flag: %s", err)
	}
	if err := addStringFlagBindViper(cmd, v,
		"log",
		cfg.DefaultLogLevel,
		"Log levels, such as info or info,genesis=debug,rpc=trace. "+
			"Supports levels critical (silent), error, warn, info, debug and trace",
		"log"); err != nil {
		return fmt.Errorf("failed to add --log flag: %s", err)
	}
	if err := addStringFlagBindViper(cmd, v,
		"runtime",
		cfg.DefaultRuntime,
		"Path to the runtime WASM code of the built-in chains",
		"runtime"); err != nil {
		return fmt.Errorf("failed to add --runtime flag: %s", err)
	}

	// RPC and metrics
	if err := addStringFlagBindViper(cmd, v,
		"rpc-addr",
		cfg.DefaultRPCAddress,
		"HTTP-RPC server listening address",
		"rpc-addr"); err != nil {
		return fmt.Errorf("failed to add --rpc-addr flag: %s", err)
	}
	if err := addStringSliceFlagBindViper(cmd, v,
		"rpc-methods",
		nil,
		"API modules to enable via HTTP-RPC, comma separated list",
		"rpc-methods"); err != nil {
		return fmt.Errorf("failed to add --rpc-methods flag: %s", err)
	}
	if err := addBoolFlagBindViper(cmd, v,
		"no-rpc",
		false,
		"Disable the HTTP-RPC server",
		"no-rpc"); err != nil {
		return fmt.Errorf("failed to add --no-rpc flag: %s", err)
	}
	if err := addBoolFlagBindViper(cmd, v,
		"metrics",
		false,
		"Publish metrics to prometheus",
		"metrics"); err != nil {
		return fmt.Errorf("failed to add --metrics flag: %s", err)
	}
	if err := addStringFlagBindViper(cmd, v,
		"metrics-addr",
		cfg.DefaultMetricsAddress,
		"Listen address of the metrics server",
		"metrics-addr"); err != nil {
		return fmt.Errorf("failed to add --metrics-addr flag: %s", err)
	}

	return nil
}

func newRunCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Initialise the node if needed and serve the chain specification",
		Long: `The run command initialises the node database with the chain specification
if it is not initialised yet, then serves it over HTTP-RPC until interrupted.
Example:
	nativex run --chain local --rpc-addr 127.0.0.1:9933 --metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execRun(v)
		},
	}
}

// execRun executes the root and run commands
func execRun(v *viper.Viper) error {
	config, err := ParseConfig(v)
	if err != nil {
		logger.Errorf("failed to parse configuration: %s", err)
		return err
	}

	logger.Debugf("configuration:\n%s", config)

	if err := cfg.EnsureRoot(config.BaseConfig.BasePath, config); err != nil {
		return err
	}

	if !dot.IsNodeInitialised(config.BaseConfig.BasePath) {
		// initialise node (initialise state database and store the chain specification)
		if err := dot.InitNode(config, wasm.NewFileLoader(config.BaseConfig.Runtime)); err != nil {
			logger.Errorf("failed to initialise node: %s", err)
			return err
		}
	}

	node, err := dot.NewNode(config)
	if err != nil {
		logger.Errorf("failed to create node services: %s", err)
		return err
	}

	if err := node.Start(); err != nil {
		return fmt.Errorf("failed to start node: %w", err)
	}

	return nil
}
