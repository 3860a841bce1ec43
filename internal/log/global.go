// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

var globalLogger = New()

// NewFromGlobal creates a child logger from the global logger.
func NewFromGlobal(options ...Option) *Logger {
	return globalLogger.New(options...)
}

// Patch patches the global package logger and all its children.
func Patch(options ...Option) {
	globalLogger.Patch(options...)
}

// PatchPackageLevels sets the level of every child logger of
// the global logger carrying the context pkg=<name> for a
// name present in the levels map.
func PatchPackageLevels(levels map[string]Level) {
	globalLogger.mutex.Lock()
	defer globalLogger.mutex.Unlock()

	for _, child := range globalLogger.childs {
		pkg := child.contextValue("pkg")
		level, ok := levels[pkg]
		if !ok {
			continue
		}
		child.patchWithoutLocking(newSettings([]Option{SetLevel(level)}))
	}
}

func (l *Logger) contextValue(key string) (value string) {
	for _, kv := range l.settings.context {
		if kv.key == key && len(kv.values) > 0 {
			return kv.values[len(kv.values)-1]
		}
	}
	return ""
}
