// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

// Format is the format of the log lines.
type Format uint8

const (
	// FormatConsole formats lines for a human reader.
	FormatConsole Format = iota
)

type contextKeyValues struct {
	key    string
	values []string
}

type settings struct {
	writer  io.Writer
	level   *Level
	format  *Format
	caller  callerSettings
	context []contextKeyValues
}

func newSettings(options []Option) (settings settings) {
	for _, option := range options {
		option(&settings)
	}
	return settings
}

// mergeWith sets values in the receiving settings
// for each value unset in the receiving settings
// but set in the other settings.
func (s *settings) mergeWith(other settings) {
	if s.writer == nil && other.writer != nil {
		s.writer = other.writer
	}

	if s.level == nil && other.level != nil {
		value := *other.level
		s.level = &value
	}

	if s.format == nil && other.format != nil {
		value := *other.format
		s.format = &value
	}

	s.caller.mergeWith(other.caller)

	if len(other.context) > 0 {
		// parent context goes first
		merged := make([]contextKeyValues, 0, len(other.context)+len(s.context))
		for _, kv := range other.context {
			merged = append(merged, contextKeyValues{
				key:    kv.key,
				values: append([]string(nil), kv.values...),
			})
		}
		merged = append(merged, s.context...)
		s.context = merged
	}
}

// overrideWith sets every value of the receiving settings
// which is set in the other settings.
func (s *settings) overrideWith(other settings) {
	if other.writer != nil {
		s.writer = other.writer
	}

	if other.level != nil {
		value := *other.level
		s.level = &value
	}

	if other.format != nil {
		value := *other.format
		s.format = &value
	}

	s.caller.overrideWith(other.caller)

	for _, kv := range other.context {
		for _, value := range kv.values {
			AddContext(kv.key, value)(s)
		}
	}
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stdout
	}

	if s.level == nil {
		level := Info
		s.level = &level
	}

	if s.format == nil {
		format := FormatConsole
		s.format = &format
	}

	s.caller.setDefaults()
}
