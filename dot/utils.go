// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"fmt"

	"github.com/ChainSafe/nativex/config"
	"github.com/ChainSafe/nativex/internal/log"
)

// logLevels holds the global log level and the per package overrides.
type logLevels struct {
	global   log.Level
	packages map[string]log.Level
}

func (l logLevels) of(pkg string) log.Level {
	if level, ok := l.packages[pkg]; ok {
		return level
	}
	return l.global
}

// setupLogger patches the global logger and the package loggers
// with the configured log levels.
func setupLogger(cfg *config.Config) (logLevels, error) {
	global, packages, err := cfg.LogLevels()
	if err != nil {
		return logLevels{}, fmt.Errorf("cannot parse log levels: %w", err)
	}

	log.Patch(log.SetLevel(global))
	log.PatchPackageLevels(packages)

	return logLevels{global: global, packages: packages}, nil
}
