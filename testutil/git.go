package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateGitRepo creates <root>/<name> with a .git directory whose HEAD holds head.
// An empty head leaves HEAD missing.
func CreateGitRepo(t *testing.T, root, name, head string) string {
	t.Helper()
	repo := filepath.Join(root, name)
	gitDir := filepath.Join(repo, ".git")
	if err := os.MkdirAll(gitDir, 0755); err != nil {
		t.Fatalf("Failed to create git dir: %v", err)
	}
	if head != "" {
		WriteFile(t, filepath.Join(gitDir, "HEAD"), head+"\n")
	}
	return repo
}

// CreateWorktree creates a worktree of repo at <root>/<name>. The worktree's
// .git file points at repo/.git/worktrees/<name>, whose HEAD holds head.
func CreateWorktree(t *testing.T, repo, root, name, head string) string {
	t.Helper()
	worktreeGitDir := filepath.Join(repo, ".git", "worktrees", name)
	if err := os.MkdirAll(worktreeGitDir, 0755); err != nil {
		t.Fatalf("Failed to create worktree git dir: %v", err)
	}
	if head != "" {
		WriteFile(t, filepath.Join(worktreeGitDir, "HEAD"), head+"\n")
	}

	worktree := filepath.Join(root, name)
	if err := os.MkdirAll(worktree, 0755); err != nil {
		t.Fatalf("Failed to create worktree: %v", err)
	}
	WriteFile(t, filepath.Join(worktree, ".git"), "gitdir: "+worktreeGitDir+"\n")
	return worktree
}

// WriteFile writes content to path, creating parent directories
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}
