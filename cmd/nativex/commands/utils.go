// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const confirmCharacter = "Y"

// addStringFlagBindViper adds a string flag to the given command and binds it to the given viper name
func addStringFlagBindViper(cmd *cobra.Command,
	v *viper.Viper,
	name,
	defaultValue,
	usage,
	viperBindName string,
) error {
	cmd.PersistentFlags().String(name, defaultValue, usage)
	return v.BindPFlag(viperBindName, cmd.PersistentFlags().Lookup(name))
}

// addBoolFlagBindViper adds a bool flag to the given command and binds it to the given viper name
func addBoolFlagBindViper(
	cmd *cobra.Command,
	v *viper.Viper,
	name string,
	defaultValue bool,
	usage string,
	viperBindName string,
) error {
	cmd.PersistentFlags().Bool(name, defaultValue, usage)
	return v.BindPFlag(viperBindName, cmd.PersistentFlags().Lookup(name))
}

// addStringSliceFlagBindViper adds a string slice flag to the given command and binds it to the given viper name
func addStringSliceFlagBindViper(
	cmd *cobra.Command,
	v *viper.Viper,
	name string,
	defaultValue []string,
	usage string,
	viperBindName string,
) error {
	cmd.PersistentFlags().StringSlice(name, defaultValue, usage)
	return v.BindPFlag(viperBindName, cmd.PersistentFlags().Lookup(name))
}

// confirmMessage prompts user to confirm message and returns true if "Y"
func confirmMessage(in io.Reader, out io.Writer, msg string) bool {
	reader := bufio.NewReader(in)
	fmt.Fprintln(out, msg)
	fmt.Fprint(out, "> ")

	text, _ := reader.ReadString('\n')
	text = strings.TrimSpace(text)
	return strings.EqualFold(confirmCharacter, text)
}

// writeOutput writes data followed by a new line to the command output.
func writeOutput(cmd *cobra.Command, data []byte) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
