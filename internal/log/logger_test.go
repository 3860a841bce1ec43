// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"bytes"
	"io"
	"os"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_New(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		options        []Option
		expectedLogger *Logger
	}{
		"no option": {
			expectedLogger: &Logger{
				settings: settings{
					writer: os.Stdout,
					level:  levelPtr(Info),
					format: formatPtr(FormatConsole),
					caller: newCallerSettings(false, false, false),
				},
				mutex: new(sync.Mutex),
			},
		},
		"all options": {
			options: []Option{
				SetLevel(Trace),
				SetCallerFile(true),
				SetCallerLine(true),
				SetCallerFunc(true),
				SetFormat(FormatConsole),
				SetWriter(io.Discard),
				AddContext("key1", "value1"),
				AddContext("key1", "value2"),
			},
			expectedLogger: &Logger{
				settings: settings{
					writer: io.Discard,
					level:  levelPtr(Trace),
					format: formatPtr(FormatConsole),
					caller: newCallerSettings(true, true, true),
					context: []contextKeyValues{
						{key: "key1", values: []string{"value1", "value2"}},
					},
				},
				mutex: new(sync.Mutex),
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			logger := New(testCase.options...)

			assert.Equal(t, testCase.expectedLogger, logger)
		})
	}
}

func Test_Logger_New(t *testing.T) {
	t.Parallel()

	parent := New(SetLevel(Warn), SetWriter(io.Discard), AddContext("pkg", "parent"))

	child := parent.New(SetLevel(Debug), AddContext("component", "child"))

	expectedSettings := settings{
		writer: io.Discard,
		level:  levelPtr(Debug),
		format: formatPtr(FormatConsole),
		caller: newCallerSettings(false, false, false),
		context: []contextKeyValues{
			{key: "pkg", values: []string{"parent"}},
			{key: "component", values: []string{"child"}},
		},
	}
	assert.Equal(t, expectedSettings, child.settings)
	assert.Same(t, parent.mutex, child.mutex)
	require.Len(t, parent.childs, 1)
	assert.Same(t, child, parent.childs[0])
}

func Test_Logger_log(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		options     []Option
		logCall     func(l *Logger)
		lineRegex   string
		emptyOutput bool
	}{
		"below level": {
			options: []Option{SetLevel(Warn)},
			logCall: func(l *Logger) {
				l.Info("ignored")
			},
			emptyOutput: true,
		},
		"info with context": {
			options: []Option{AddContext("pkg", "genesis")},
			logCall: func(l *Logger) {
				l.Info("built genesis")
			},
			lineRegex: "^" + timePrefixRegex + ".*INFO.* built genesis\tpkg=genesis\n$",
		},
		"formatted debug": {
			options: []Option{SetLevel(Debug)},
			logCall: func(l *Logger) {
				l.Debugf("%d authorities", 2)
			},
			lineRegex: "^" + timePrefixRegex + ".*DBUG.* 2 authorities\n$",
		},
		"caller file and line": {
			options: []Option{SetCallerFile(true), SetCallerLine(true)},
			logCall: func(l *Logger) {
				l.Error("failed")
			},
			lineRegex: "^" + timePrefixRegex + ".*EROR.* failed\tlogger_test.go:L[0-9]+\n$",
		},
		"caller file with formatted call": {
			options: []Option{SetCallerFile(true)},
			logCall: func(l *Logger) {
				l.Warnf("%d peers", 0)
			},
			lineRegex: "^" + timePrefixRegex + ".*WARN.* 0 peers\tlogger_test.go\n$",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			buffer := bytes.NewBuffer(nil)
			options := append([]Option{SetWriter(buffer)}, testCase.options...)
			logger := New(options...)

			testCase.logCall(logger)

			if testCase.emptyOutput {
				assert.Empty(t, buffer.String())
				return
			}
			assert.Regexp(t, regexp.MustCompile(testCase.lineRegex), buffer.String())
		})
	}
}

func Test_Logger_Patch(t *testing.T) {
	t.Parallel()

	buffer := bytes.NewBuffer(nil)
	parent := New(SetWriter(buffer), SetLevel(Info))
	child := parent.New(AddContext("pkg", "state"))

	child.Debug("hidden")
	assert.Empty(t, buffer.String())

	parent.Patch(SetLevel(Debug))

	assert.Equal(t, levelPtr(Debug), parent.settings.level)
	assert.Equal(t, levelPtr(Debug), child.settings.level)

	child.Debug("shown")
	assert.Contains(t, buffer.String(), "shown\tpkg=state")
}
