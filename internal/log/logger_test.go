package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("Failed to decode JSON %q: %v", buf.String(), err)
	}
	return out
}

func TestSetup(t *testing.T) {
	logger = nil
	once = *new(sync.Once)

	Setup("DEBUG", "json")
	if logger == nil {
		t.Fatal("Logger should not be nil")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewFormats(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "info", "json").Info("hello")
	out := decode(t, &buf)
	if out["service"] != "hookrelay" {
		t.Errorf("Expected service field, got %v", out["service"])
	}

	buf.Reset()
	New(&buf, "info", "text").Info("hello")
	if !strings.Contains(buf.String(), "msg=hello") {
		t.Errorf("Expected text output, got %q", buf.String())
	}

	buf.Reset()
	New(&buf, "warn", "json").Info("suppressed")
	if buf.Len() != 0 {
		t.Errorf("Expected info to be filtered at warn level, got %q", buf.String())
	}
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger = slog.New(slog.NewJSONHandler(&buf, nil))

	WithComponent("gateway").Info("hello")
	out := decode(t, &buf)
	if out["component"] != "gateway" {
		t.Errorf("Expected component 'gateway', got %v", out["component"])
	}
	if out["msg"] != "hello" {
		t.Errorf("Expected msg 'hello', got %v", out["msg"])
	}
}

func TestWithEventAndTenant(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	WithTenant(WithEvent(base, "ev-123"), "t-1", "stripe").Info("processed")
	out := decode(t, &buf)
	if out["event_id"] != "ev-123" {
		t.Errorf("Expected event_id 'ev-123', got %v", out["event_id"])
	}
	if out["tenant_id"] != "t-1" || out["provider"] != "stripe" {
		t.Errorf("Expected tenant fields, got %v", out)
	}
}
