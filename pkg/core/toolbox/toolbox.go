// ============================================================================
// commons - Shared Service Utilities
// ============================================================================
//
// Package:     toolbox
// Description: Bundles configuration, loggers and the cache for injection
// Created:     2026-10-06
// License:     MIT
// ============================================================================

package toolbox

import (
	"context"
	"io"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	cmnerror "github.com/msto63/commons/foundation/core/error"
	cmnlog "github.com/msto63/commons/foundation/core/log"
	"github.com/msto63/commons/pkg/core/cache"
	"github.com/msto63/commons/pkg/core/config"
	"github.com/msto63/commons/pkg/core/logging"
)

// Toolbox is the set of shared utilities a service passes to its components
type Toolbox struct {
	mu      sync.RWMutex
	config  *config.Config
	loggers *logging.Factory
	cache   *cache.Manager
}

// New builds a toolbox from cfg. A nil cfg uses the defaults.
// Additional writers receive a copy of every log line.
func New(cfg *config.Config, additionalOutputs ...io.Writer) (*Toolbox, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loggers, err := logging.NewFactory(cfg.Log, additionalOutputs...)
	if err != nil {
		return nil, err
	}

	manager := cache.New(
		cache.WithLogger(loggers.Logger(cache.LoggerContext)),
		cache.WithJSONKeys(cfg.Cache.AllowJSONKeys),
		cache.WithLoadTimeout(cfg.Cache.LoadTimeout.Duration),
	)

	return &Toolbox{
		config:  cfg,
		loggers: loggers,
		cache:   manager,
	}, nil
}

// Config returns the current configuration. After a watched reload this is
// the reloaded file.
func (t *Toolbox) Config() *config.Config {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.config
}

// Loggers returns the logger factory
func (t *Toolbox) Loggers() *logging.Factory {
	return t.loggers
}

// Logger creates a logger for context
func (t *Toolbox) Logger(context string) *cmnlog.Logger {
	return t.loggers.Logger(context)
}

// Cache returns the cache manager
func (t *Toolbox) Cache() *cache.Manager {
	return t.cache
}

// Report logs err with its cause chain at ERROR
func (t *Toolbox) Report(err error) {
	cmnerror.Report(t.loggers.Logger(t.Config().General.Name), err)
}

// RegisterMetrics registers the cache collector under the configured namespace
func (t *Toolbox) RegisterMetrics(registerer prometheus.Registerer) error {
	return registerer.Register(cache.NewCollector(t.cache, t.Config().Cache.MetricsNamespace))
}

// Watch follows the configuration file at path while ctx is alive. Each reload
// replaces Config and applies the log level to every logger of the toolbox.
func (t *Toolbox) Watch(ctx context.Context, path string) (*config.Watcher, error) {
	watcher, err := config.NewWatcher(path, t.Logger("ConfigWatcher"))
	if err != nil {
		return nil, err
	}

	watcher.OnChange(t.applyConfig)
	t.applyConfig(t.Config(), watcher.Current())

	if err := watcher.Start(ctx); err != nil {
		return nil, err
	}
	return watcher, nil
}

func (t *Toolbox) applyConfig(_, updated *config.Config) {
	t.mu.Lock()
	t.config = updated
	t.mu.Unlock()

	level, err := cmnlog.ParseLevel(updated.Log.Level)
	if err != nil {
		return
	}
	t.loggers.SetLevel(level)
}
