// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"fmt"

	cfg "github.com/ChainSafe/nativex/config"
	"github.com/ChainSafe/nativex/dot"
	"github.com/ChainSafe/nativex/lib/runtime/wasm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newInitCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialise the node database with the chain specification",
		Long: `The init command builds the chain specification and stores it in the node database.
Example:
	nativex init --dev
	nativex init --chain ./spec.json --base-path ~/.nativex/custom`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execInit(cmd, v)
		},
	}

	cmd.Flags().Bool("force",
		false,
		"force reinitialization of node")

	return cmd
}

// execInit executes the init command
func execInit(cmd *cobra.Command, v *viper.Viper) error {
	config, err := ParseConfig(v)
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("failed to get --force: %s", err)
	}

	basePath := config.BaseConfig.BasePath
	if dot.IsNodeInitialised(basePath) {
		// prompt user to confirm reinitialization
		if force || confirmMessage(cmd.InOrStdin(), cmd.OutOrStdout(),
			"Are you sure you want to reinitialise the node? [Y/n]") {
			logger.Info("reinitialising node at base path " + basePath + "...")
		} else {
			logger.Warn("exiting without reinitialising the node at base path " + basePath + "...")
			return nil // exit if reinitialization is not confirmed
		}
	}

	if err := cfg.EnsureRoot(basePath, config); err != nil {
		return err
	}

	if err := dot.InitNode(config, wasm.NewFileLoader(config.BaseConfig.Runtime)); err != nil {
		return fmt.Errorf("failed to initialise node: %w", err)
	}

	logger.Info("node initialised at: " + basePath)
	return nil
}
