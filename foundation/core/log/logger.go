// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the per-context Logger with an optional level override,
//              a regenerable correlation ID and pluggable output.
// Version: v0.3.0
// Created: 2026-09-28
// Modified: 2026-10-19
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation
// - 2026-10-12 v0.2.0: Options, Settings binding and formatter selection
// - 2026-10-19 v0.3.0: Shared write lock option

package log

import (
	"io"
	"os"
	"sync"
	"time"
)

// Logger writes leveled lines tagged with a context label and a correlation ID
type Logger struct {
	context  string
	cid      string
	level    Level
	hasLevel bool

	settings  *Settings
	formatter Formatter
	output    io.Writer
	newCID    CIDGenerator
	now       func() time.Time

	mutex   sync.RWMutex
	writeMu *sync.Mutex
}

// Option configures a Logger at construction time
type Option func(*Logger)

// WithSettings binds the logger to settings other than the package default
func WithSettings(settings *Settings) Option {
	return func(l *Logger) {
		if settings != nil {
			l.settings = settings
		}
	}
}

// WithOutput sets the output destination
func WithOutput(output io.Writer) Option {
	return func(l *Logger) {
		if output != nil {
			l.output = output
		}
	}
}

// WithFormat selects the line or JSON formatter
func WithFormat(format Format) Option {
	return func(l *Logger) {
		l.formatter = GetFormatter(format)
	}
}

// WithCIDGenerator replaces the correlation ID source
func WithCIDGenerator(gen CIDGenerator) Option {
	return func(l *Logger) {
		if gen != nil {
			l.newCID = gen
		}
	}
}

// WithClock replaces the timestamp source
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		if now != nil {
			l.now = now
		}
	}
}

// WithLevel sets a per-instance level override
func WithLevel(level Level) Option {
	return func(l *Logger) {
		l.level = level
		l.hasLevel = true
	}
}

// WithWriteLock serializes writes with mu. Loggers sharing one output must
// share one lock.
func WithWriteLock(mu *sync.Mutex) Option {
	return func(l *Logger) {
		if mu != nil {
			l.writeMu = mu
		}
	}
}

// New creates a logger for the given context with a fresh correlation ID
func New(context string, opts ...Option) *Logger {
	l := &Logger{
		context:   context,
		settings:  defaultSettings,
		formatter: LineFormatter{},
		output:    os.Stdout,
		newCID:    RandomCID(DefaultCIDLength),
		now:       time.Now,
		writeMu:   &sync.Mutex{},
	}

	for _, opt := range opts {
		opt(l)
	}

	l.cid = l.newCID()
	return l
}

// Context returns the context label
func (l *Logger) Context() string {
	return l.context
}

// Named returns a copy of the logger with another context label. The copy keeps
// the correlation ID, level override and output of the original.
func (l *Logger) Named(context string) *Logger {
	clone := l.clone()
	clone.context = context
	return clone
}

// SetLevel sets a per-instance threshold that takes precedence over the settings
func (l *Logger) SetLevel(level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.level = level
	l.hasLevel = true
}

// ClearLevel removes the per-instance threshold
func (l *Logger) ClearLevel() {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.hasLevel = false
}

// GetLevel returns the effective threshold
func (l *Logger) GetLevel() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.effectiveLevel()
}

// LevelIs reports whether level is at or above the effective threshold
func (l *Logger) LevelIs(level Level) bool {
	return level.ShouldLog(l.GetLevel())
}

// InitializeCID generates and stores a new correlation ID
func (l *Logger) InitializeCID() string {
	cid := l.newCID()

	l.mutex.Lock()
	l.cid = cid
	l.mutex.Unlock()

	return cid
}

// CurrentCID returns the correlation ID, empty after ResetCID
func (l *Logger) CurrentCID() string {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.cid
}

// ResetCID clears the correlation ID so it is omitted from output
func (l *Logger) ResetCID() {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.cid = ""
}

// Trace logs a trace level message
func (l *Logger) Trace(template string, args ...interface{}) {
	l.log(LevelTrace, template, args)
}

// Debug logs a debug level message
func (l *Logger) Debug(template string, args ...interface{}) {
	l.log(LevelDebug, template, args)
}

// Info logs an info level message
func (l *Logger) Info(template string, args ...interface{}) {
	l.log(LevelInfo, template, args)
}

// Log is an alias of Info
func (l *Logger) Log(template string, args ...interface{}) {
	l.log(LevelInfo, template, args)
}

// Warn logs a warning level message
func (l *Logger) Warn(template string, args ...interface{}) {
	l.log(LevelWarn, template, args)
}

// Error logs an error level message
func (l *Logger) Error(template string, args ...interface{}) {
	l.log(LevelError, template, args)
}

// effectiveLevel must be called with the lock held
func (l *Logger) effectiveLevel() Level {
	if l.hasLevel {
		return l.level
	}
	return l.settings.DefaultLevel()
}

// log is the internal logging method
func (l *Logger) log(level Level, template string, args []interface{}) {
	l.mutex.RLock()
	if !level.ShouldLog(l.effectiveLevel()) {
		l.mutex.RUnlock()
		return
	}

	entry := NewEntry(l.now(), level, l.context, l.cid, Expand(template, args...))
	formatter := l.formatter
	output := l.output
	l.mutex.RUnlock()

	if formatted, err := formatter.Format(entry); err == nil {
		l.writeMu.Lock()
		output.Write(formatted)
		l.writeMu.Unlock()
	}
}

// clone creates a copy of the logger sharing settings and output
func (l *Logger) clone() *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return &Logger{
		context:   l.context,
		cid:       l.cid,
		level:     l.level,
		hasLevel:  l.hasLevel,
		settings:  l.settings,
		formatter: l.formatter,
		output:    l.output,
		writeMu:   l.writeMu,
		newCID:    l.newCID,
		now:       l.now,
	}
}
