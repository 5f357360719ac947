package config

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	cmnerror "github.com/msto63/commons/foundation/core/error"
	cmnlog "github.com/msto63/commons/foundation/core/log"
)

func newWatchLogger(buf *bytes.Buffer) *cmnlog.Logger {
	return cmnlog.New("ConfigWatcher",
		cmnlog.WithSettings(cmnlog.NewSettings(cmnlog.LevelTrace)),
		cmnlog.WithOutput(buf),
	)
}

func TestNewWatcher_InvalidFile(t *testing.T) {
	path := writeConfig(t, "config.toml", "[log]\nlevel = \"loud\"\n")

	if _, err := NewWatcher(path, nil); !errors.Is(err, cmnerror.ErrIllegalArgument) {
		t.Errorf("NewWatcher() error = %v, want IllegalArgument", err)
	}
}

func TestWatcher_Reload(t *testing.T) {
	var buf bytes.Buffer
	path := writeConfig(t, "config.toml", "[log]\nlevel = \"info\"\n")

	w, err := NewWatcher(path, newWatchLogger(&buf))
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if w.Current().Log.Level != "info" {
		t.Fatalf("Current().Log.Level = %v, want info", w.Current().Log.Level)
	}

	var oldLevel, newLevel string
	w.OnChange(func(old, updated *Config) {
		oldLevel = old.Log.Level
		newLevel = updated.Log.Level
	})

	if err := os.WriteFile(path, []byte("[log]\nlevel = \"error\"\n"), 0644); err != nil {
		t.Fatalf("Failed to rewrite config: %v", err)
	}
	if err := w.Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	if oldLevel != "info" || newLevel != "error" {
		t.Errorf("handler saw %q -> %q, want info -> error", oldLevel, newLevel)
	}
	if w.Current().Log.Level != "error" {
		t.Errorf("Current().Log.Level = %v, want error", w.Current().Log.Level)
	}
}

func TestWatcher_ReloadKeepsPreviousOnError(t *testing.T) {
	var buf bytes.Buffer
	path := writeConfig(t, "config.toml", "[log]\nlevel = \"info\"\n")

	w, err := NewWatcher(path, newWatchLogger(&buf))
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	called := false
	w.OnChange(func(old, updated *Config) { called = true })

	if err := os.WriteFile(path, []byte("[log]\nlevel = \"loud\"\n"), 0644); err != nil {
		t.Fatalf("Failed to rewrite config: %v", err)
	}
	if err := w.Reload(); err == nil {
		t.Error("Reload() expected error for invalid config")
	}

	if called {
		t.Error("handlers should not run for a failed reload")
	}
	if w.Current().Log.Level != "info" {
		t.Errorf("Current().Log.Level = %v, want info", w.Current().Log.Level)
	}
	if !strings.Contains(buf.String(), " ERROR ConfigWatcher") {
		t.Errorf("failed reload should be logged, got %q", buf.String())
	}
}

func TestWatcher_FollowsFile(t *testing.T) {
	var buf bytes.Buffer
	path := writeConfig(t, "config.yaml", "log:\n  level: info\n")

	w, err := NewWatcher(path, newWatchLogger(&buf))
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	changed := make(chan string, 4)
	w.OnChange(func(old, updated *Config) {
		changed <- updated.Log.Level
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("log:\n  level: warn\n"), 0644); err != nil {
		t.Fatalf("Failed to rewrite config: %v", err)
	}

	select {
	case level := <-changed:
		if level != "warn" {
			t.Errorf("reloaded level = %v, want warn", level)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not reload the changed file")
	}
}

func TestWatcher_RestartAfterContextCancel(t *testing.T) {
	var buf bytes.Buffer
	path := writeConfig(t, "config.yaml", "log:\n  level: info\n")

	w, err := NewWatcher(path, newWatchLogger(&buf))
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if !w.Running() {
		t.Fatal("Running() = false after Start")
	}
	cancel()

	deadline := time.Now().Add(5 * time.Second)
	for w.Running() {
		if time.Now().After(deadline) {
			t.Fatal("watcher still running after context cancel")
		}
		time.Sleep(10 * time.Millisecond)
	}

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start() after cancel error = %v", err)
	}
	if !w.Running() {
		t.Error("Running() = false after restart")
	}
	w.Stop()
	if w.Running() {
		t.Error("Running() = true after Stop")
	}
}
