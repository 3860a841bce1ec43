// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Logger is the logger implementation structure.
// It is thread safe to use.
type Logger struct {
	settings settings
	childs   []*Logger
	mutex    *sync.Mutex // pointer for child loggers
}

// New creates a new logger.
// It can only be called once per writer.
// If you want to create more loggers with different settings for the
// same writer, child loggers can be created using the New(options) method,
// to ensure thread safety on the same writer.
func New(options ...Option) *Logger {
	s := newSettings(options)
	s.setDefaults()

	return &Logger{
		settings: s,
		mutex:    new(sync.Mutex),
	}
}

// New creates a new thread safe child logger.
// It can use a different writer, but it is expected to use the
// same writer since it is thread safe.
func (l *Logger) New(options ...Option) *Logger {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	s := newSettings(options)
	s.mergeWith(l.settings)
	s.setDefaults()

	child := &Logger{
		settings: s,
		mutex:    l.mutex,
	}
	l.childs = append(l.childs, child)
	return child
}

// Patch patches the existing settings with any option given.
// This is thread safe and propagates to all child loggers.
func (l *Logger) Patch(options ...Option) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	patch := newSettings(options)
	l.patchWithoutLocking(patch)
}

func (l *Logger) patchWithoutLocking(patch settings) {
	l.settings.overrideWith(patch)
	for _, child := range l.childs {
		child.patchWithoutLocking(patch)
	}
}

func (l *Logger) log(level Level, s string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if *l.settings.level > level {
		return
	}

	line := l.format(level, s, time.Now())
	_, _ = io.WriteString(l.settings.writer, line)
}

func (l *Logger) format(level Level, s string, now time.Time) (line string) {
	var b strings.Builder
	b.WriteString(now.Format(time.RFC3339))
	b.WriteString(" ")
	b.WriteString(level.ColouredString())
	b.WriteString(" ")
	b.WriteString(s)

	if caller := getCallerString(l.settings.caller); caller != "" {
		b.WriteString("\t")
		b.WriteString(caller)
	}

	if len(l.settings.context) > 0 {
		keyValues := make([]string, len(l.settings.context))
		for i, kvs := range l.settings.context {
			keyValues[i] = kvs.key + "=" + strings.Join(kvs.values, ",")
		}
		b.WriteString("\t")
		b.WriteString(strings.Join(keyValues, " "))
	}

	b.WriteString("\n")
	return b.String()
}

// Trace logs with the TRCE level.
func (l *Logger) Trace(s string) { l.log(Trace, s) }

// Debug logs with the DBUG level.
func (l *Logger) Debug(s string) { l.log(Debug, s) }

// Info logs with the INFO level.
func (l *Logger) Info(s string) { l.log(Info, s) }

// Warn logs with the WARN level.
func (l *Logger) Warn(s string) { l.log(Warn, s) }

// Error logs with the EROR level.
func (l *Logger) Error(s string) { l.log(Error, s) }

// Critical logs with the CRIT level.
func (l *Logger) Critical(s string) { l.log(Critical, s) }

// Tracef formats and logs at the TRCE level.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.log(Trace, fmt.Sprintf(format, args...))
}

// Debugf formats and logs at the DBUG level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(Debug, fmt.Sprintf(format, args...))
}

// Infof formats and logs at the INFO level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(Info, fmt.Sprintf(format, args...))
}

// Warnf formats and logs at the WARN level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log(Warn, fmt.Sprintf(format, args...))
}

// Errorf formats and logs at the EROR level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(Error, fmt.Sprintf(format, args...))
}

// Criticalf formats and logs at the CRIT level.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.log(Critical, fmt.Sprintf(format, args...))
}
