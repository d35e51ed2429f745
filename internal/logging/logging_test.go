package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewDebugAppendsToFile(t *testing.T) {
	dir := t.TempDir()

	for _, line := range []string{"first", "second"} {
		logger, closer, err := New(true, dir)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		logger.Println(line)
		if err := closer.Close(); err != nil {
			t.Fatal(err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2:\n%s", len(lines), data)
	}
	if !strings.HasSuffix(lines[0], "first") || !strings.Contains(lines[0], "logging_test.go") {
		t.Errorf("unexpected log line %q", lines[0])
	}
}

func TestNewWithoutDebugWritesNothing(t *testing.T) {
	dir := t.TempDir()

	logger, closer, err := New(false, dir)
	if err != nil {
		t.Fatal(err)
	}
	logger.Println("ignored")
	closer.Close()

	if _, err := os.Stat(filepath.Join(dir, FileName)); !os.IsNotExist(err) {
		t.Errorf("log file exists without debug: %v", err)
	}
}
