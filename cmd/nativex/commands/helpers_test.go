// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTestRuntime writes a minimal WASM module and returns its path.
func writeTestRuntime(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "runtime.wasm")
	err := os.WriteFile(path, []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}, 0o600)
	require.NoError(t, err)
	return path
}

// execute runs the root command with the arguments and standard input
// given, returning the command output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd, err := NewRootCommand()
	require.NoError(t, err)

	out := bytes.NewBuffer(nil)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--log", "warn"))

	err = cmd.Execute()
	return out.String(), err
}
