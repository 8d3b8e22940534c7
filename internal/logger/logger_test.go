package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := New(Options{JSON: true, Output: path})
	if err != nil {
		t.Fatalf("building logger: %v", err)
	}
	log.Debug("hidden")
	log.Info("visible", zap.Int("match_score", 80))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line at info level, got %d: %q", len(lines), data)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("expected json line: %v", err)
	}
	if entry["step"] != "visible" || entry["level"] != "info" || entry["match_score"] != float64(80) {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestNewDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	log, err := New(Options{Debug: true, Output: path})
	if err != nil {
		t.Fatalf("building logger: %v", err)
	}
	log.Debug("details")
	_ = log.Sync()

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "details") {
		t.Fatalf("expected debug entry, got %q", data)
	}
}
