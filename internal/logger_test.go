package internal

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetLogLevel(t *testing.T) {
	originalLevel := logLevel
	defer func() { logLevel = originalLevel }()

	SetLogLevel(LogLevelDebug)
	if logLevel != LogLevelDebug {
		t.Errorf("SetLogLevel() logLevel = %v, want LogLevelDebug", logLevel)
	}

	SetLogLevel(LogLevelError)
	if logLevel != LogLevelError {
		t.Errorf("SetLogLevel() logLevel = %v, want LogLevelError", logLevel)
	}
}

func TestSetVerbose(t *testing.T) {
	originalLevel := logLevel
	defer func() { logLevel = originalLevel }()

	SetVerbose(true)
	if logLevel != LogLevelDebug {
		t.Errorf("SetVerbose(true) logLevel = %v, want LogLevelDebug", logLevel)
	}

	SetVerbose(false)
	if logLevel != LogLevelInfo {
		t.Errorf("SetVerbose(false) logLevel = %v, want LogLevelInfo", logLevel)
	}
}

func TestLogOutput(t *testing.T) {
	originalLevel := logLevel
	defer func() {
		logLevel = originalLevel
		SetLogOutput(io.Discard)
	}()

	var buf bytes.Buffer
	SetLogOutput(&buf)
	SetVerbose(false)

	LogDebug("hidden %d", 1)
	LogWarn("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message logged at info level: %q", out)
	}
	if !strings.Contains(out, "[WARN] shown 2") {
		t.Errorf("warning missing from log output: %q", out)
	}

	buf.Reset()
	SetVerbose(true)
	LogDebug("visible")
	if !strings.Contains(buf.String(), "[DEBUG] visible") {
		t.Errorf("debug message missing at debug level: %q", buf.String())
	}
}

func TestConfigureLogging_File(t *testing.T) {
	originalLevel := logLevel
	defer func() {
		logLevel = originalLevel
		SetLogOutput(io.Discard)
	}()

	logPath := filepath.Join(t.TempDir(), "statusline.log")
	ConfigureLogging(logPath, true)
	LogError("written to file")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "[ERROR] written to file") {
		t.Errorf("log file content = %q, want error entry", string(data))
	}
}

func TestConfigureLogging_DefaultIsSilent(t *testing.T) {
	originalLevel := logLevel
	defer func() { logLevel = originalLevel }()

	ConfigureLogging("", false)
	if logger.Writer() != io.Discard {
		t.Errorf("default log writer = %T, want io.Discard", logger.Writer())
	}
}

func TestLogLevels(t *testing.T) {
	// Test that log levels are properly defined
	if LogLevelError >= LogLevelWarn {
		t.Error("LogLevelError should be less than LogLevelWarn")
	}
	if LogLevelWarn >= LogLevelInfo {
		t.Error("LogLevelWarn should be less than LogLevelInfo")
	}
	if LogLevelInfo >= LogLevelDebug {
		t.Error("LogLevelInfo should be less than LogLevelDebug")
	}
}
