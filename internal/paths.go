package internal

import (
	"path/filepath"
	"strings"
)

// DirBasename returns the final component of path, or UnknownLabel when there is none
func DirBasename(path string) string {
	if path == "" {
		return UnknownLabel
	}
	base := filepath.Base(filepath.Clean(filepath.FromSlash(path)))
	switch base {
	case "", ".", "..", string(filepath.Separator):
		return UnknownLabel
	}
	return base
}

// ShortenPath replaces a leading home directory with "~". An empty home leaves
// the path unchanged.
func ShortenPath(path, home string) string {
	if home == "" || !strings.HasPrefix(path, home) {
		return path
	}
	return "~" + path[len(home):]
}
