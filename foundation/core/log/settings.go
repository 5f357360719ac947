// File: settings.go
// Title: Shared Logger Settings
// Description: Holds the default threshold that applies to every logger without a
//              per-instance override. Loggers read it on each call, so a change is
//              visible to loggers created before and after it.
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Extracted from the package-level default level

package log

import (
	"sync/atomic"
)

// Settings carries state shared by a group of loggers
type Settings struct {
	defaultLevel atomic.Int32
}

// NewSettings creates settings with the given default level
func NewSettings(level Level) *Settings {
	s := &Settings{}
	s.defaultLevel.Store(int32(level))
	return s
}

// SetDefaultLevel replaces the default level. Last write wins.
func (s *Settings) SetDefaultLevel(level Level) {
	s.defaultLevel.Store(int32(level))
}

// DefaultLevel returns the current default level
func (s *Settings) DefaultLevel() Level {
	return Level(s.defaultLevel.Load())
}

var defaultSettings = NewSettings(LevelTrace)

// DefaultSettings returns the settings used by loggers created without WithSettings
func DefaultSettings() *Settings {
	return defaultSettings
}

// SetDefaultLevel sets the default level of the package-wide settings
func SetDefaultLevel(level Level) {
	defaultSettings.SetDefaultLevel(level)
}

// DefaultLevel returns the default level of the package-wide settings
func DefaultLevel() Level {
	return defaultSettings.DefaultLevel()
}
