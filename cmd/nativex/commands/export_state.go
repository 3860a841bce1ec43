// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"fmt"

	"github.com/ChainSafe/nativex/dot"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newExportStateCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-state",
		Short: "Export the chain specification stored in the node database in raw form",
		Long: `The export-state command outputs the raw chain specification of an initialised node.
Usage:
	nativex export-state --dev
	nativex export-state --chain local --output local-state.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execExportState(cmd, v)
		},
	}

	cmd.Flags().String("output", "", "path to the file the raw chain specification is written to")

	return cmd
}

// execExportState executes the export-state command
func execExportState(cmd *cobra.Command, v *viper.Viper) error {
	config, err := ParseConfig(v)
	if err != nil {
		return err
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output value: %s", err)
	}

	bs, err := dot.BuildFromDB(config)
	if err != nil {
		return fmt.Errorf("cannot load chain specification from %s: %w", config.BaseConfig.BasePath, err)
	}

	res, err := bs.ToJSONRaw()
	if err != nil {
		return err
	}

	if output == "" {
		return writeOutput(cmd, res)
	}
	return dot.WriteGenesisSpecFile(res, output)
}
