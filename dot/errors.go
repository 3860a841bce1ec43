// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"errors"
)

// ErrNoChainSpecified is returned when no chain id or chain
// specification path is given.
var ErrNoChainSpecified = errors.New( //nolint:revive,stylecheck
	"Please specify which chain you want to run, e.g. --dev or --chain=local")

// ErrSpecFileExists is returned when writing a chain specification
// over an existing file.
var ErrSpecFileExists = errors.New("chain specification file already exists")
