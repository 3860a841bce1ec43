// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"fmt"

	"github.com/ChainSafe/nativex/dot"
	"github.com/ChainSafe/nativex/lib/runtime/wasm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newBuildSpecCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build-spec",
		Short: "Generates chain-spec JSON data, and can convert to raw format",
		Long: `The build-spec command outputs the chain specification of the chain given.
Usage:
	nativex build-spec --dev
	nativex build-spec --chain local --raw
	nativex build-spec --chain nativex --raw --output nativex-raw.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execBuildSpec(cmd, v)
		},
	}

	cmd.Flags().Bool("raw", false, "output as raw genesis JSON")
	cmd.Flags().String("output", "", "path to the file the chain specification is written to")

	return cmd
}

// execBuildSpec executes the build-spec command
func execBuildSpec(cmd *cobra.Command, v *viper.Viper) error {
	config, err := ParseConfig(v)
	if err != nil {
		return err
	}

	raw, err := cmd.Flags().GetBool("raw")
	if err != nil {
		return fmt.Errorf("failed to get raw value: %s", err)
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output value: %s", err)
	}

	bs, err := dot.BuildFromChain(config.BaseConfig.Chain, wasm.NewFileLoader(config.BaseConfig.Runtime))
	if err != nil {
		return fmt.Errorf("cannot build chain specification: %w", err)
	}

	var res []byte
	if raw {
		res, err = bs.ToJSONRaw()
	} else {
		res, err = bs.ToJSON()
	}
	if err != nil {
		return err
	}

	if output == "" {
		return writeOutput(cmd, res)
	}

	if err := dot.WriteGenesisSpecFile(res, output); err != nil {
		return fmt.Errorf("cannot write chain specification: %w", err)
	}
	logger.Infof("chain specification written to %s", output)
	return nil
}
