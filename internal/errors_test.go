package internal

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeError(t *testing.T) {
	originalErr := errors.New("unexpected end of JSON input")
	err := &DecodeError{
		Stage: "parse",
		Err:   originalErr,
	}

	// Test Error() method
	errorMsg := err.Error()
	if !strings.Contains(errorMsg, "decode error") {
		t.Errorf("DecodeError.Error() should contain 'decode error', got: %q", errorMsg)
	}
	if !strings.Contains(errorMsg, "parse") {
		t.Errorf("DecodeError.Error() should contain stage, got: %q", errorMsg)
	}

	// Test Unwrap() method
	if !errors.Is(err, originalErr) {
		t.Error("DecodeError.Unwrap() should return original error")
	}
}

func TestGitError(t *testing.T) {
	originalErr := errors.New("permission denied")
	err := &GitError{
		Path: "/repo/.git/HEAD",
		Op:   "read",
		Err:  originalErr,
	}

	errorMsg := err.Error()
	if !strings.Contains(errorMsg, "git error") {
		t.Errorf("GitError.Error() should contain 'git error', got: %q", errorMsg)
	}
	if !strings.Contains(errorMsg, "/repo/.git/HEAD") {
		t.Errorf("GitError.Error() should contain path, got: %q", errorMsg)
	}

	if !errors.Is(err, originalErr) {
		t.Error("GitError.Unwrap() should return original error")
	}
}

func TestGitError_NoGitDir(t *testing.T) {
	err := &GitError{Path: "/wt/.git", Op: "parse", Err: ErrNoGitDir}
	if !errors.Is(err, ErrNoGitDir) {
		t.Error("GitError should unwrap to ErrNoGitDir")
	}
}

func TestConfigError(t *testing.T) {
	originalErr := errors.New("invalid TOML")
	err := &ConfigError{
		Path: "/etc/statusline.toml",
		Err:  originalErr,
	}

	errorMsg := err.Error()
	if !strings.Contains(errorMsg, "config error") {
		t.Errorf("ConfigError.Error() should contain 'config error', got: %q", errorMsg)
	}
	if !strings.Contains(errorMsg, "/etc/statusline.toml") {
		t.Errorf("ConfigError.Error() should contain path, got: %q", errorMsg)
	}

	if !errors.Is(err, originalErr) {
		t.Error("ConfigError.Unwrap() should return original error")
	}
}

func TestRenderError(t *testing.T) {
	originalErr := errors.New("broken pipe")
	err := &RenderError{
		Format: "text",
		Err:    originalErr,
	}

	errorMsg := err.Error()
	if !strings.Contains(errorMsg, "render error") {
		t.Errorf("RenderError.Error() should contain 'render error', got: %q", errorMsg)
	}
	if !strings.Contains(errorMsg, "text") {
		t.Errorf("RenderError.Error() should contain format, got: %q", errorMsg)
	}

	if !errors.Is(err, originalErr) {
		t.Error("RenderError.Unwrap() should return original error")
	}
}
