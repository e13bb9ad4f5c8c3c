package internal

import (
	"errors"
	"fmt"
)

// ErrNoGitDir is returned when a worktree .git file has no gitdir line
var ErrNoGitDir = errors.New("missing gitdir reference")

// DecodeError represents errors reading or parsing the stdin payload
type DecodeError struct {
	Stage string // "read", "parse"
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error [%s]: %v", e.Stage, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// GitError represents errors inspecting .git metadata
type GitError struct {
	Path string
	Op   string // "stat", "read", "parse"
	Err  error
}

func (e *GitError) Error() string {
	return fmt.Sprintf("git error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *GitError) Unwrap() error {
	return e.Err
}

// ConfigError represents errors loading a config file
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// RenderError represents errors writing the status line
type RenderError struct {
	Format string
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error [%s]: %v", e.Format, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
