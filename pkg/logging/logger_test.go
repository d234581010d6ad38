package logging

import (
	"os"
	"strings"
	"testing"
)

func TestLoggerWritesLevelledEntries(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	resetForTest()

	logger, err := NewLogger("test-component")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer logger.Close()

	logger.Infof("hello %s", "world")
	logger.Errorf("boom")

	data, err := os.ReadFile(logger.LogPath())
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "[test-component] [INFO] hello world") {
		t.Errorf("missing info entry, got:\n%s", content)
	}
	if !strings.Contains(content, "[test-component] [ERROR] boom") {
		t.Errorf("missing error entry, got:\n%s", content)
	}
}

func TestLoggersShareSessionFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	resetForTest()

	first, err := NewLogger("one")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer first.Close()

	second, err := NewLogger("two")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer second.Close()

	if first.SessionID() != second.SessionID() {
		t.Error("expected loggers to share a session ID")
	}
	if first.LogPath() != second.LogPath() {
		t.Error("expected loggers to share a log file")
	}
}
