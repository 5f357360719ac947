package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	cmnerror "github.com/msto63/commons/foundation/core/error"
	cmnlog "github.com/msto63/commons/foundation/core/log"
)

// DefaultReloadDelay is how long the watcher waits for writes to settle
const DefaultReloadDelay = 100 * time.Millisecond

// ChangeHandler receives the previous and the reloaded configuration
type ChangeHandler func(old, updated *Config)

// Watcher reloads a configuration file when it changes on disk. A file that
// fails to load or validate is logged and the previous configuration is kept.
type Watcher struct {
	path   string
	logger *cmnlog.Logger
	delay  time.Duration

	mu       sync.RWMutex
	current  *Config
	handlers []ChangeHandler
	running  bool
	stopCh   chan struct{}
}

// NewWatcher loads path and returns a watcher for it. Call Start to follow changes.
func NewWatcher(path string, logger *cmnlog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, cmnerror.IllegalArgument("invalid config path " + path).WithCause(err)
	}

	cfg, err := Load(abs)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = cmnlog.New("ConfigWatcher")
	}

	return &Watcher{
		path:    abs,
		logger:  logger,
		delay:   DefaultReloadDelay,
		current: cfg,
	}, nil
}

// Current returns the most recently loaded configuration
func (w *Watcher) Current() *Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// OnChange registers a handler called after every successful reload
func (w *Watcher) OnChange(handler ChangeHandler) {
	if handler == nil {
		return
	}
	w.mu.Lock()
	w.handlers = append(w.handlers, handler)
	w.mu.Unlock()
}

// Reload loads the file again and notifies the handlers
func (w *Watcher) Reload() error {
	cfg, err := Load(w.path)
	if err != nil {
		w.logger.Error("Failed to reload {}: {}", w.path, err)
		return err
	}

	w.mu.Lock()
	old := w.current
	w.current = cfg
	handlers := make([]ChangeHandler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.Unlock()

	w.logger.Info("Configuration reloaded from {}", w.path)
	for _, handler := range handlers {
		handler(old, cfg)
	}
	return nil
}

// Start follows the file until ctx ends or Stop is called. The directory is
// watched so that editors replacing the file are noticed.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		watcher.Close()
		w.mu.Unlock()
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	w.running = true
	w.stopCh = make(chan struct{})
	stopCh := w.stopCh
	w.mu.Unlock()

	w.logger.Debug("Watching {} for changes", w.path)
	go w.watchLoop(ctx, watcher, stopCh)
	return nil
}

// Running reports whether the watch loop is active
func (w *Watcher) Running() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

// Stop ends a running watch
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

func (w *Watcher) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, stopCh chan struct{}) {
	defer watcher.Close()
	defer func() {
		// A later Start may already own the watcher state
		w.mu.Lock()
		if w.stopCh == stopCh {
			w.running = false
		}
		w.mu.Unlock()
	}()

	// Writes arrive in bursts; reload once they settle
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("Stopping config watcher (context cancelled)")
			return

		case <-stopCh:
			w.logger.Debug("Stopping config watcher (stop signal)")
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.delay, func() {
				_ = w.Reload()
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error: {}", err)
		}
	}
}
