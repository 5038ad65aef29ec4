package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapFields_PairsAndOddArgs(t *testing.T) {
	fields := zapFields([]any{"league", "Premier League", 7, "value", "dangling"})
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}
	if fields[0].Key != "league" {
		t.Fatalf("unexpected first key: %s", fields[0].Key)
	}
	if fields[1].Key != "arg" {
		t.Fatalf("expected non-string key to become arg, got %s", fields[1].Key)
	}
	if fields[2].Key != "dangling" {
		t.Fatalf("unexpected dangling key: %s", fields[2].Key)
	}
}

func TestLogger_WritesErrorsAsNamedError(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core))

	logger.WarnContext(context.Background(), "list standings failed", "season", 2024, "error", errors.New("boom"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	ctxMap := entries[0].ContextMap()
	if ctxMap["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", ctxMap["error"])
	}
	if ctxMap["season"] != int64(2024) {
		t.Fatalf("unexpected season field: %v", ctxMap["season"])
	}
}

func TestLogger_MirrorReceivesEnabledRecordsOnly(t *testing.T) {
	core, _ := observer.New(zapcore.WarnLevel)
	logger := FromZap(zap.New(core))

	var (
		mu   sync.Mutex
		msgs []string
	)
	SetMirror(func(_ context.Context, _ Level, msg string, _ ...any) {
		mu.Lock()
		defer mu.Unlock()
		msgs = append(msgs, msg)
	})
	t.Cleanup(func() { SetMirror(nil) })

	logger.Info("filtered out")
	logger.Error("kept")

	mu.Lock()
	defer mu.Unlock()
	if len(msgs) != 1 || msgs[0] != "kept" {
		t.Fatalf("unexpected mirrored messages: %+v", msgs)
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
}

func TestLogger_WithFieldsReachMirror(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core)).With("component", "footballctl")

	var got []any
	SetMirror(func(_ context.Context, _ Level, _ string, args ...any) {
		got = args
	})
	t.Cleanup(func() { SetMirror(nil) })

	logger.Info("league populated", "league", "Premier League")

	if len(got) != 4 || got[0] != "component" || got[2] != "league" {
		t.Fatalf("unexpected mirrored args: %+v", got)
	}
	if logs.All()[0].ContextMap()["component"] != "footballctl" {
		t.Fatalf("expected bound field in zap entry")
	}
}

func TestNewJSONTo_WritesCallerOfLogCall(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONTo(&buf, LevelInfo)

	logger.Debug("dropped")
	logger.Info("kept", "season", 2024)

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("debug record should be filtered: %s", out)
	}
	if !strings.Contains(out, `"msg":"kept"`) || !strings.Contains(out, `"season":2024`) {
		t.Fatalf("unexpected output: %s", out)
	}
	if !strings.Contains(out, "logger_test.go") {
		t.Fatalf("expected caller to point at the test file: %s", out)
	}
}
