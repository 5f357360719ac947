package toolbox

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	cmnerror "github.com/msto63/commons/foundation/core/error"
	cmnlog "github.com/msto63/commons/foundation/core/log"
	"github.com/msto63/commons/pkg/core/config"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.General.Name = "billing"
	cfg.Log.Output = config.OutputStderr
	return cfg
}

func TestNew_Defaults(t *testing.T) {
	tb, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil) error = %v", err)
	}
	if tb.Config().General.Name != "commons" {
		t.Errorf("Config().General.Name = %v, want commons", tb.Config().General.Name)
	}
	if tb.Cache() == nil || tb.Loggers() == nil {
		t.Fatal("toolbox should carry a cache and a logger factory")
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Log.Level = "loud"

	if _, err := New(cfg); !errors.Is(err, cmnerror.ErrIllegalArgument) {
		t.Errorf("New() error = %v, want IllegalArgument", err)
	}
}

func TestToolbox_CacheLogsThroughFactory(t *testing.T) {
	var buf bytes.Buffer
	tb, err := New(testConfig(), &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := tb.Cache().Set("users", "u1", "alice"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if !strings.Contains(buf.String(), " DEBUG CacheManager (") {
		t.Errorf("cache should log through the factory, got %q", buf.String())
	}

	buf.Reset()
	tb.Loggers().SetLevel(cmnlog.LevelError)
	_ = tb.Cache().Set("users", "u2", "bob")
	if buf.Len() != 0 {
		t.Errorf("raising the factory level should silence the cache, got %q", buf.String())
	}
}

func TestToolbox_JSONKeysFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.AllowJSONKeys = true

	var buf bytes.Buffer
	tb, err := New(cfg, &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	key := struct{ ID int }{ID: 1}
	if err := tb.Cache().Set("t", key, "v"); err != nil {
		t.Errorf("Set() with JSON keys enabled error = %v", err)
	}
}

func TestToolbox_Report(t *testing.T) {
	var buf bytes.Buffer
	tb, err := New(testConfig(), &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tb.Report(cmnerror.NotFound("invoice 42").WithCause(errors.New("no row")))

	output := buf.String()
	if !strings.Contains(output, " ERROR NotFound (") {
		t.Errorf("Report should log under the kind name, got %q", output)
	}
	if !strings.Contains(output, "invoice 42") || !strings.Contains(output, "Caused by: no row") {
		t.Errorf("Report should include the cause chain, got %q", output)
	}

	buf.Reset()
	tb.Report(errors.New("plain failure"))
	if !strings.Contains(buf.String(), " ERROR billing (") {
		t.Errorf("foreign errors should log under the service name, got %q", buf.String())
	}
}

func TestToolbox_RegisterMetrics(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.MetricsNamespace = "billing"

	tb, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	registry := prometheus.NewRegistry()
	if err := tb.RegisterMetrics(registry); err != nil {
		t.Fatalf("RegisterMetrics() error = %v", err)
	}

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	if len(families) != 3 {
		t.Errorf("Gather() returned %d families, want 3", len(families))
	}
	if err := tb.RegisterMetrics(registry); err == nil {
		t.Error("registering twice should fail")
	}
}

func TestToolbox_WatchAppliesLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	tb, err := New(testConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher, err := tb.Watch(ctx, path)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer watcher.Stop()

	if got := tb.Loggers().Settings().DefaultLevel(); got != cmnlog.LevelWarn {
		t.Errorf("DefaultLevel() = %v, want WARN", got)
	}
	if got := tb.Config().Log.Level; got != "warn" {
		t.Errorf("Config().Log.Level = %v, want warn", got)
	}

	if err := os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n"), 0644); err != nil {
		t.Fatalf("Failed to rewrite config: %v", err)
	}
	if err := watcher.Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	if got := tb.Loggers().Settings().DefaultLevel(); got != cmnlog.LevelDebug {
		t.Errorf("DefaultLevel() after reload = %v, want DEBUG", got)
	}
	if got := tb.Config().Log.Level; got != "debug" {
		t.Errorf("Config().Log.Level after reload = %v, want debug", got)
	}
}
