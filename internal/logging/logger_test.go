package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitCreatesLogFile(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir, "debug"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer Close()

	Info("test info message", "key", "value")
	Debug("test debug message", "count", 42)

	files, err := os.ReadDir(filepath.Join(dir, "logs"))
	if err != nil {
		t.Fatalf("read log dir: %v", err)
	}
	if len(files) != 1 || !strings.HasPrefix(files[0].Name(), "sentiscope-") {
		t.Errorf("unexpected log files: %v", files)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, "warn")
	defer func() { Logger = nil }()

	Info("hidden")
	Warn("shown", "source", "test")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info logged at warn level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("warn not logged")
	}
}

func TestNilSafeBeforeInit(t *testing.T) {
	Logger = nil
	Info("no panic")
	Error("still no panic")
	if WithPrefix("x") != nil {
		t.Error("WithPrefix should be nil before Init")
	}
}
