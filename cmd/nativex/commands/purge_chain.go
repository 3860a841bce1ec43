// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ChainSafe/nativex/lib/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newPurgeChainCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purge-chain",
		Short: "Remove the node database",
		Long: `The purge-chain command removes the database of the node at the base path.
Usage:
	nativex purge-chain --dev --yes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execPurgeChain(cmd, v)
		},
	}

	cmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")

	return cmd
}

// execPurgeChain executes the purge-chain command
func execPurgeChain(cmd *cobra.Command, v *viper.Viper) error {
	config, err := ParseConfig(v)
	if err != nil {
		return err
	}

	yes, err := cmd.Flags().GetBool("yes")
	if err != nil {
		return fmt.Errorf("failed to get --yes: %s", err)
	}

	dbPath := filepath.Join(config.BaseConfig.BasePath, utils.DefaultDatabaseDir)
	if !utils.PathExists(dbPath) {
		logger.Infof("%s did not exist", dbPath)
		return nil
	}

	if !yes && !confirmMessage(cmd.InOrStdin(), cmd.OutOrStdout(),
		fmt.Sprintf("Are you sure you want to remove %q? [Y/n]", dbPath)) {
		logger.Warn("aborted")
		return nil
	}

	if err := os.RemoveAll(dbPath); err != nil {
		return fmt.Errorf("cannot remove database: %w", err)
	}

	logger.Infof("%q removed", dbPath)
	return nil
}
