package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestFileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "test.log")

	cfg := DefaultFileConfig(logFile)
	cfg.Compress = false
	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Info("conform finished", zap.Int("conformed", 3))
	Sugar.Infof("loaded %d objects", 4)
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "conform finished") {
		t.Errorf("log file missing message: %s", content)
	}
	// The file core encodes JSON so log lines stay machine-readable
	if !strings.Contains(content, `"conformed":3`) {
		t.Errorf("log file missing structured field: %s", content)
	}
	if !strings.Contains(content, "loaded 4 objects") {
		t.Errorf("log file missing sugared message: %s", content)
	}
}

func TestLevelFiltering(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "test.log")

	cfg := DefaultFileConfig(logFile)
	cfg.Compress = false
	if err := InitWithFileConfig("warn", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Info("should be filtered")
	Warn("should appear")
	Sync()

	data, _ := os.ReadFile(logFile)
	content := string(data)
	if strings.Contains(content, "should be filtered") {
		t.Error("info message leaked through warn level")
	}
	if !strings.Contains(content, "should appear") {
		t.Error("warn message missing")
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"nonsense", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, c := range cases {
		if got := parseLevel(c.in); got != c.want {
			t.Errorf("parseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestInitWithoutFile(t *testing.T) {
	if err := Init("info", ""); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if Log == nil || Sugar == nil {
		t.Error("expected Log and Sugar to be set")
	}
}
