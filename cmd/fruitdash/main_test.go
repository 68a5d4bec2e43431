package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/fruit-dash/internal/games/fruitdash"
	"github.com/vovakirdan/fruit-dash/internal/registry"
)

func TestNewLoggerLevels(t *testing.T) {
	defer func(level string) { flagLogLevel = level }(flagLogLevel)

	flagLogLevel = "loud"
	if _, _, err := newLogger(&bytes.Buffer{}); err == nil {
		t.Error("newLogger() with an unknown level should fail")
	}

	flagLogLevel = "warn"
	var buf bytes.Buffer
	logger, closeLog, err := newLogger(&buf)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	defer closeLog()

	logger.Info("hidden")
	logger.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("log output = %q, expected only the warning", out)
	}
	if !strings.Contains(out, "fruitdash") {
		t.Errorf("log output = %q, expected the fruitdash prefix", out)
	}
}

func TestNewLoggerFile(t *testing.T) {
	defer func(file, level string) { flagLogFile, flagLogLevel = file, level }(flagLogFile, flagLogLevel)

	flagLogFile = filepath.Join(t.TempDir(), "fruitdash.log")
	flagLogLevel = "info"

	var fallback bytes.Buffer
	logger, closeLog, err := newLogger(&fallback)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Info("run finished", "score", 40)
	closeLog()

	data, err := os.ReadFile(flagLogFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "run finished") {
		t.Errorf("log file = %q, expected the message", data)
	}
	if fallback.Len() != 0 {
		t.Errorf("fallback received %q, expected nothing", fallback.String())
	}
}

func TestGameIDForMode(t *testing.T) {
	tests := []struct {
		mode fruitdash.Mode
		want string
	}{
		{fruitdash.ModeSpeed, "fruitdash"},
		{fruitdash.ModeGrowth, "fruitdash_growth"},
	}
	for _, tt := range tests {
		got := gameIDForMode(tt.mode)
		if got != tt.want {
			t.Errorf("gameIDForMode(%v) = %q, expected %q", tt.mode, got, tt.want)
		}
		if !registry.Exists(got) {
			t.Errorf("game %q is not registered", got)
		}
	}
}
