package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelWarn)

	l.Infof("hidden %d", 1)
	l.Warnf("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered at warn level, got %q", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Errorf("expected warn message in output, got %q", out)
	}

	buf.Reset()
	l.SetLevel(slog.LevelDebug)
	l.Debugf("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("expected debug message after SetLevel, got %q", buf.String())
	}
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelInfo).With("component", "guard")
	l.Infof("attached")
	if !strings.Contains(buf.String(), "component=guard") {
		t.Errorf("expected component attribute, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
