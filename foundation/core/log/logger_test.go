// File: logger_test.go
// Title: Logger Tests
// Description: Tests for thresholds, correlation IDs, settings binding and output.
// Version: v0.3.0
// Created: 2026-09-28
// Modified: 2026-10-19
//
// Change History:
// - 2026-09-28 v0.1.0: Initial logger tests
// - 2026-10-12 v0.2.0: Settings, options and trace CID tests
// - 2026-10-19 v0.3.0: Write lock and CID alphabet tests

package log

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
)

func newTestLogger(buf *bytes.Buffer, settings *Settings, opts ...Option) *Logger {
	base := []Option{
		WithOutput(buf),
		WithSettings(settings),
		WithClock(func() time.Time { return fixedTime }),
		WithCIDGenerator(func() string { return "abc1234" }),
	}
	return New("TestContext", append(base, opts...)...)
}

func TestNew(t *testing.T) {
	logger := New("svc")

	if logger == nil {
		t.Fatal("New() should not return nil")
	}
	if logger.Context() != "svc" {
		t.Errorf("Context() = %q, want svc", logger.Context())
	}
	if len(logger.CurrentCID()) != DefaultCIDLength {
		t.Errorf("CurrentCID() length = %d, want %d", len(logger.CurrentCID()), DefaultCIDLength)
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("GetLevel() = %v, want default %v", logger.GetLevel(), DefaultLevel())
	}
}

func TestLoggerOutputFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, NewSettings(LevelTrace))

	logger.Info("Added cache entry {}.{}: {}", "user", 42, "alice", "ignored")

	want := "2026-10-12T08:15:30.123Z INFO TestContext (abc1234) Added cache entry user.42: alice\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLoggerLevelMethods(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, NewSettings(LevelTrace))

	logger.Trace("t")
	logger.Debug("d")
	logger.Info("i")
	logger.Log("l")
	logger.Warn("w")
	logger.Error("e")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	want := []string{"TRACE", "DEBUG", "INFO", "INFO", "WARN", "ERROR"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), buf.String())
	}
	for i, line := range lines {
		if fields := strings.Fields(line); fields[1] != want[i] {
			t.Errorf("line %d level = %s, want %s", i, fields[1], want[i])
		}
	}
}

func TestLoggerThreshold(t *testing.T) {
	var buf bytes.Buffer
	settings := NewSettings(LevelWarn)
	logger := newTestLogger(&buf, settings)

	logger.Debug("hidden")
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("messages below threshold produced output: %q", buf.String())
	}

	logger.Warn("shown")
	if !strings.Contains(buf.String(), "WARN TestContext (abc1234) shown") {
		t.Errorf("output = %q, want WARN line", buf.String())
	}
}

func TestLoggerLevelOverride(t *testing.T) {
	var buf bytes.Buffer
	settings := NewSettings(LevelError)
	logger := newTestLogger(&buf, settings)

	if logger.LevelIs(LevelInfo) {
		t.Error("LevelIs(INFO) should be false under an ERROR default")
	}

	logger.SetLevel(LevelDebug)
	if logger.GetLevel() != LevelDebug {
		t.Errorf("GetLevel() = %v, want DEBUG", logger.GetLevel())
	}
	if !logger.LevelIs(LevelInfo) {
		t.Error("LevelIs(INFO) should be true with a DEBUG override")
	}
	if logger.LevelIs(LevelTrace) {
		t.Error("LevelIs(TRACE) should be false with a DEBUG override")
	}

	logger.Debug("visible")
	if buf.Len() == 0 {
		t.Error("override should let DEBUG through")
	}

	logger.ClearLevel()
	if logger.GetLevel() != LevelError {
		t.Errorf("GetLevel() after ClearLevel = %v, want ERROR", logger.GetLevel())
	}
}

func TestSettingsVisibleToExistingLoggers(t *testing.T) {
	var buf bytes.Buffer
	settings := NewSettings(LevelTrace)
	before := newTestLogger(&buf, settings)

	settings.SetDefaultLevel(LevelError)
	after := newTestLogger(&buf, settings)

	for _, logger := range []*Logger{before, after} {
		if logger.GetLevel() != LevelError {
			t.Errorf("GetLevel() = %v, want ERROR", logger.GetLevel())
		}
	}

	before.Info("hidden")
	after.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("INFO should be filtered after raising the default: %q", buf.String())
	}
}

func TestSettingsIsolation(t *testing.T) {
	a := NewSettings(LevelTrace)
	b := NewSettings(LevelTrace)

	a.SetDefaultLevel(LevelError)
	if b.DefaultLevel() != LevelTrace {
		t.Errorf("independent settings changed: %v", b.DefaultLevel())
	}
}

func TestCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	counter := 0
	logger := newTestLogger(&buf, NewSettings(LevelTrace), WithCIDGenerator(func() string {
		counter++
		return strings.Repeat("x", counter)
	}))

	if logger.CurrentCID() != "x" {
		t.Fatalf("CurrentCID() = %q, want x", logger.CurrentCID())
	}

	if cid := logger.InitializeCID(); cid != "xx" || logger.CurrentCID() != "xx" {
		t.Errorf("InitializeCID() = %q, CurrentCID() = %q, want xx", cid, logger.CurrentCID())
	}

	logger.ResetCID()
	if logger.CurrentCID() != "" {
		t.Errorf("CurrentCID() after reset = %q, want empty", logger.CurrentCID())
	}

	logger.Info("no cid")
	want := "2026-10-12T08:15:30.123Z INFO TestContext no cid\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestRandomCIDShape(t *testing.T) {
	logger := New("svc", WithOutput(&bytes.Buffer{}))
	first := logger.CurrentCID()
	second := logger.InitializeCID()

	if first == second {
		t.Errorf("InitializeCID() should regenerate, got %q twice", first)
	}
	for _, cid := range []string{first, second} {
		if strings.Trim(cid, "0123456789abcdefghijklmnopqrstuvwxyz") != "" {
			t.Errorf("CID %q should be lowercase alphanumeric", cid)
		}
	}
}

func TestUUIDCID(t *testing.T) {
	logger := New("svc", WithOutput(&bytes.Buffer{}), WithCIDGenerator(UUIDCID))
	if len(logger.CurrentCID()) != 10 {
		t.Errorf("UUID CID length = %d, want 10", len(logger.CurrentCID()))
	}
}

func TestCharsetCIDs(t *testing.T) {
	tests := []struct {
		name    string
		gen     CIDGenerator
		length  int
		charset string
	}{
		{"alphanumeric", AlphanumericCID(12), 12, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"},
		{"hex", HexCID(16), 16, "0123456789abcdef"},
		{"hex default length", HexCID(0), DefaultCIDLength, "0123456789abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cid := tt.gen()
			if len(cid) != tt.length {
				t.Errorf("len(%q) = %d, want %d", cid, len(cid), tt.length)
			}
			if strings.Trim(cid, tt.charset) != "" {
				t.Errorf("CID %q has characters outside %q", cid, tt.charset)
			}
		})
	}
}

func TestWithWriteLockSharedAcrossLoggers(t *testing.T) {
	var buf bytes.Buffer
	var mu sync.Mutex
	settings := NewSettings(LevelInfo)

	first := newTestLogger(&buf, settings, WithWriteLock(&mu))
	second := newTestLogger(&buf, settings, WithWriteLock(&mu))

	var wg sync.WaitGroup
	for _, logger := range []*Logger{first, second} {
		wg.Add(1)
		go func(logger *Logger) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				logger.Info("line {}", i)
			}
		}(logger)
	}
	wg.Wait()

	if lines := strings.Count(buf.String(), "\n"); lines != 400 {
		t.Errorf("got %d lines, want 400", lines)
	}
}

func TestNamed(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, NewSettings(LevelTrace))
	named := logger.Named("NotFound")

	named.Error("missing")
	if !strings.Contains(buf.String(), "ERROR NotFound (abc1234) missing") {
		t.Errorf("output = %q, want named context", buf.String())
	}
	if logger.Context() != "TestContext" {
		t.Errorf("Named() should not modify the original, got %q", logger.Context())
	}
}

func TestWithContextTraceID(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, NewSettings(LevelTrace))

	if got := logger.WithContext(context.Background()); got != logger {
		t.Error("WithContext() without a span should return the same logger")
	}

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	traced := logger.WithContext(ctx)
	if traced.CurrentCID() != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("CurrentCID() = %q, want trace id", traced.CurrentCID())
	}
	if logger.CurrentCID() != "abc1234" {
		t.Errorf("original CID changed to %q", logger.CurrentCID())
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, NewSettings(LevelTrace), WithFormat(FormatJSON))

	logger.Info("user {}", "alice")
	if !strings.Contains(buf.String(), `"message":"user alice"`) {
		t.Errorf("output = %q, want JSON message", buf.String())
	}
}
