// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/nativex/internal/primitives/core/crypto"
	"github.com/ChainSafe/nativex/internal/primitives/core/ed25519"
	"github.com/ChainSafe/nativex/internal/primitives/core/sr25519"
	"github.com/ChainSafe/nativex/lib/common"
	"github.com/spf13/cobra"
)

// Key schemes supported by key inspect.
const (
	sr25519Scheme = "sr25519"
	ed25519Scheme = "ed25519"
)

var errUnknownScheme = errors.New("unknown key scheme")

func newKeyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Key management utilities",
	}

	inspect := &cobra.Command{
		Use:   "inspect <secret uri>",
		Short: "Print the public key and address of a secret URI",
		Long: `The inspect command derives the key pair of a secret URI, such as //Alice,
//Alice//stash or a mnemonic phrase followed by a derivation path.
Usage:
	nativex key inspect //Alice
	nativex key inspect --scheme ed25519 //Alice`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execKeyInspect(cmd, args[0])
		},
	}
	inspect.Flags().String("scheme", sr25519Scheme, "key scheme: sr25519 or ed25519")
	inspect.Flags().String("password", "", "password of the secret URI, overriding the one it carries")

	cmd.AddCommand(inspect)
	return cmd
}

// execKeyInspect executes the key inspect command
func execKeyInspect(cmd *cobra.Command, suri string) error {
	scheme, err := cmd.Flags().GetString("scheme")
	if err != nil {
		return fmt.Errorf("failed to get --scheme: %s", err)
	}

	var password *string
	if cmd.Flags().Changed("password") {
		value, err := cmd.Flags().GetString("password")
		if err != nil {
			return fmt.Errorf("failed to get --password: %s", err)
		}
		password = &value
	}

	var pair crypto.Pair[[32]byte]
	switch scheme {
	case sr25519Scheme:
		pair, err = sr25519.NewPairFromString(suri, password)
	case ed25519Scheme:
		pair, err = ed25519.NewPairFromString(suri, password)
	default:
		return fmt.Errorf("%w: %s", errUnknownScheme, scheme)
	}
	if err != nil {
		return fmt.Errorf("invalid secret uri: %w", err)
	}

	account, err := crypto.NewAccountID(pair.Public())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Secret Key URI `%s` is account:\n", suri)
	fmt.Fprintf(out, "  Network ID:        %d\n", crypto.DefaultSS58Prefix)
	fmt.Fprintf(out, "  Scheme:            %s\n", scheme)
	fmt.Fprintf(out, "  Public key (hex):  %s\n", common.BytesToHex(pair.Public().ToRawVec()))
	fmt.Fprintf(out, "  Account ID:        %s\n", account.Hex())
	fmt.Fprintf(out, "  SS58 Address:      %s\n", account.String())
	return nil
}
