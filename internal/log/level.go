// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color" //nolint:misspell
)

// Level is the level of the logger.
type Level uint8

const (
	// Trace is the trace (trce) level.
	Trace Level = iota
	// Debug is the debug (dbug) level.
	Debug
	// Info is the info level.
	Info
	// Warn is the warn level.
	Warn
	// Error is the error (eror) level.
	Error
	// Critical is the critical (crit) level.
	Critical
)

func (level Level) String() (s string) {
	switch level {
	case Trace:
		return "TRCE"
	case Debug:
		return "DBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "EROR"
	case Critical:
		return "CRIT"
	default:
		return "???"
	}
}

// ColouredString returns the corresponding coloured
// string for the level.
func (level Level) ColouredString() (s string) {
	attribute := color.Reset

	switch level {
	case Trace:
		attribute = color.FgHiCyan
	case Debug:
		attribute = color.FgHiBlue
	case Info:
		attribute = color.FgCyan
	case Warn:
		attribute = color.FgYellow
	case Error:
		attribute = color.FgHiRed
	case Critical:
		attribute = color.FgRed
	}

	c := color.New(attribute)
	return c.Sprint(level.String())
}

// ErrLevelNotRecognised is an error returned if the level string is
// not recognised by the ParseLevel function.
var ErrLevelNotRecognised = errors.New("level is not recognised")

// ParseLevel parses a string into a level, and returns an
// error if it fails. It accepts both the short form (dbug)
// and the long form (debug), case insensitively.
func ParseLevel(s string) (level Level, err error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case Trace.String(), "TRACE":
		return Trace, nil
	case Debug.String(), "DEBUG":
		return Debug, nil
	case Info.String():
		return Info, nil
	case Warn.String(), "WARNING":
		return Warn, nil
	case Error.String(), "ERROR":
		return Error, nil
	case Critical.String(), "CRITICAL":
		return Critical, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrLevelNotRecognised, s)
}

// ErrPackageLevelMalformed is returned by ParseLevels for an
// entry which is not of the form pkg=level.
var ErrPackageLevelMalformed = errors.New("package level is malformed")

// ParseLevels parses a comma separated list of levels of the form
// "info,genesis=debug,rpc=trace". The entry without a package name
// sets the global level, which defaults to Info if absent.
func ParseLevels(s string) (global Level, packages map[string]Level, err error) {
	global = Info
	packages = make(map[string]Level)

	if strings.TrimSpace(s) == "" {
		return global, packages, nil
	}

	for _, entry := range strings.Split(s, ",") {
		key, value, found := strings.Cut(entry, "=")
		if !found {
			global, err = ParseLevel(entry)
			if err != nil {
				return 0, nil, err
			}
			continue
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return 0, nil, fmt.Errorf("%w: %q", ErrPackageLevelMalformed, entry)
		}

		level, err := ParseLevel(value)
		if err != nil {
			return 0, nil, fmt.Errorf("for package %s: %w", key, err)
		}
		packages[key] = level
	}

	return global, packages, nil
}
