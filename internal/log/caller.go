// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

type callerSettings struct {
	file *bool
	line *bool
	funC *bool
}

func boolPtr(b bool) *bool { return &b }

func (c *callerSettings) mergeWith(other callerSettings) {
	if c.file == nil && other.file != nil {
		c.file = boolPtr(*other.file)
	}

	if c.line == nil && other.line != nil {
		c.line = boolPtr(*other.line)
	}

	if c.funC == nil && other.funC != nil {
		c.funC = boolPtr(*other.funC)
	}
}

func (c *callerSettings) overrideWith(other callerSettings) {
	if other.file != nil {
		c.file = boolPtr(*other.file)
	}

	if other.line != nil {
		c.line = boolPtr(*other.line)
	}

	if other.funC != nil {
		c.funC = boolPtr(*other.funC)
	}
}

func (c *callerSettings) setDefaults() {
	if c.file == nil {
		c.file = boolPtr(false)
	}

	if c.line == nil {
		c.line = boolPtr(false)
	}

	if c.funC == nil {
		c.funC = boolPtr(false)
	}
}

// depth is the number of frames between the caller of a Logger
// method and getCallerString: the method, log, format.
const depth = 4

func getCallerString(settings callerSettings) (s string) {
	if !*settings.file && !*settings.line && !*settings.funC {
		return ""
	}

	pc, file, line, ok := runtime.Caller(depth)
	if !ok {
		return "error"
	}

	var fields []string

	if *settings.file {
		fields = append(fields, filepath.Base(file))
	}

	if *settings.line {
		fields = append(fields, "L"+fmt.Sprint(line))
	}

	if *settings.funC {
		details := runtime.FuncForPC(pc)
		if details != nil {
			funcName := strings.TrimLeft(filepath.Ext(details.Name()), ".")
			fields = append(fields, funcName)
		}
	}

	return strings.Join(fields, ":")
}
