// ============================================================================
// commons - Shared Service Utilities
// ============================================================================
//
// Package:     cache
// Description: Process-local key/value cache partitioned by type
// Created:     2026-10-04
// License:     MIT
// ============================================================================

package cache

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	cmnerror "github.com/msto63/commons/foundation/core/error"
	cmnlog "github.com/msto63/commons/foundation/core/log"
	cmnvalidation "github.com/msto63/commons/foundation/core/validation"
)

// Separator joins the type and the stringified key of a composite key
const Separator = "$%$"

// LoggerContext is the context label of the default manager logger
const LoggerContext = "CacheManager"

// Manager is a thread-safe in-memory cache. Entries live until they are
// removed or the manager is dropped.
type Manager struct {
	mu    sync.RWMutex
	items map[string]interface{}

	logger      *cmnlog.Logger
	jsonKeys    bool
	loadTimeout time.Duration
	loads       singleflight.Group

	// Metrics
	hits   atomic.Int64
	misses atomic.Int64
}

// Option configures a Manager
type Option func(*Manager)

// WithLogger sets the logger used for debug traces and swallowed failures
func WithLogger(logger *cmnlog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithJSONKeys allows keys without a scalar or String() form to be encoded as JSON
func WithJSONKeys(enabled bool) Option {
	return func(m *Manager) {
		m.jsonKeys = enabled
	}
}

// WithLoadTimeout bounds each loader started by GetOrLoad. Zero disables the bound.
func WithLoadTimeout(timeout time.Duration) Option {
	return func(m *Manager) {
		m.loadTimeout = timeout
	}
}

// Stats is a snapshot of the manager counters
type Stats struct {
	Entries int
	Hits    int64
	Misses  int64
}

// HitRate returns hits as a percentage of all lookups
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// New creates an empty manager
func New(opts ...Option) *Manager {
	m := &Manager{
		items:  make(map[string]interface{}),
		logger: cmnlog.New(LoggerContext),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Get retrieves the element stored under typ and key. A missing element
// yields (nil, nil); only an empty key is reported as an error.
func (m *Manager) Get(typ string, key interface{}) (interface{}, error) {
	cacheKey, err := m.buildKey(typ, key)
	if err != nil {
		return nil, m.argumentError("get", err)
	}

	value, ok := m.lookup(cacheKey)
	if ok {
		m.logger.Debug("Retrieved cached value for {}.{}: {}", typ, key, value)
	} else {
		m.logger.Debug("Retrieved cached value for {}.{}: {}", typ, key, "Not found")
	}
	return value, nil
}

// Set stores value under typ and key. A nil, zero or empty value removes
// the entry, so 0, false and "" are never cached.
func (m *Manager) Set(typ string, key interface{}, value interface{}) error {
	cacheKey, err := m.buildKey(typ, key)
	if err != nil {
		return m.argumentError("set", err)
	}

	if isEmptyValue(value) {
		m.remove(cacheKey)
		m.logger.Debug("Cleared cache entry {}.{}.", typ, key)
		return nil
	}

	m.store(cacheKey, value)
	m.logger.Debug("Added cache entry {}.{}: {}", typ, key, value)
	return nil
}

// Delete removes the element stored under typ and key
func (m *Manager) Delete(typ string, key interface{}) error {
	cacheKey, err := m.buildKey(typ, key)
	if err != nil {
		return m.argumentError("delete", err)
	}

	m.remove(cacheKey)
	m.logger.Debug("Cleared cache entry {}.{}.", typ, key)
	return nil
}

// Clear removes every element
func (m *Manager) Clear() {
	m.mu.Lock()
	m.items = make(map[string]interface{})
	m.mu.Unlock()

	m.logger.Debug("Cache cleared.")
}

// ClearType removes every element stored under typ
func (m *Manager) ClearType(typ string) error {
	if err := cmnvalidation.CheckEmpty(typ, "Cache type cannot be empty."); err != nil {
		m.logger.Error("clearType: {}", err)
		return err
	}

	prefix := typ + Separator
	m.mu.Lock()
	for key := range m.items {
		if strings.HasPrefix(key, prefix) {
			delete(m.items, key)
		}
	}
	m.mu.Unlock()

	m.logger.Debug("Cache type {} cleared.", typ)
	return nil
}

// Len returns the number of stored elements
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Stats returns the current counters
func (m *Manager) Stats() Stats {
	return Stats{
		Entries: m.Len(),
		Hits:    m.hits.Load(),
		Misses:  m.misses.Load(),
	}
}

// lookup reads a composite key and counts the hit or miss
func (m *Manager) lookup(cacheKey string) (interface{}, bool) {
	m.mu.RLock()
	value, ok := m.items[cacheKey]
	m.mu.RUnlock()

	if ok {
		m.hits.Add(1)
	} else {
		m.misses.Add(1)
	}
	return value, ok
}

func (m *Manager) peek(cacheKey string) (interface{}, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.items[cacheKey]
	return value, ok
}

func (m *Manager) store(cacheKey string, value interface{}) {
	m.mu.Lock()
	m.items[cacheKey] = value
	m.mu.Unlock()
}

func (m *Manager) remove(cacheKey string) {
	m.mu.Lock()
	delete(m.items, cacheKey)
	m.mu.Unlock()
}

// argumentError returns IllegalArgument failures and logs and drops the rest
func (m *Manager) argumentError(op string, err error) error {
	if errors.Is(err, cmnerror.ErrIllegalArgument) {
		return err
	}
	m.logger.Error("{}: {}", op, err)
	return nil
}

// isEmptyValue reports nil, zero values and zero-length values, the same
// rule validation.IsEmpty applies
func isEmptyValue(value interface{}) bool {
	return cmnvalidation.IsEmpty(value)
}
