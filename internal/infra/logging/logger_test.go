package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogger_WritesToFile(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("taskstore", "snapshot saved")
	logger.Warn("categorystore", "write failed")

	content, err := os.ReadFile(filepath.Join(dir, "logs", "taskpocket.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	text := string(content)
	if !strings.Contains(text, "[INFO] [taskstore] snapshot saved") {
		t.Errorf("log missing info entry: %q", text)
	}
	if !strings.Contains(text, "[WARN] [categorystore] write failed") {
		t.Errorf("log missing warn entry: %q", text)
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelWarn)
	defer func() { _ = logger.Close() }()

	logger.Info("x", "dropped")
	logger.Error("x", "kept")

	content, err := os.ReadFile(filepath.Join(dir, "logs", "taskpocket.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	text := string(content)
	if strings.Contains(text, "dropped") {
		t.Error("info entry written despite warn level")
	}
	if !strings.Contains(text, "kept") {
		t.Error("error entry missing")
	}
}

func TestLogger_DisabledWhenNoDataDir(t *testing.T) {
	logger := New("", slog.LevelDebug)
	logger.Info("x", "nothing happens")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
