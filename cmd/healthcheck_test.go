package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/iksnae/statusline/testutil"
)

func TestHealthcheckCommand(t *testing.T) {
	out, err := executeRoot(t, "", "healthcheck", "--help")
	if err != nil {
		t.Fatalf("healthcheck command failed: %v", err)
	}
	if out == "" {
		t.Error("healthcheck --help should produce output")
	}
}

func TestHealthcheckCommandExists(t *testing.T) {
	// Verify healthcheck command is registered
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "healthcheck" {
			found = true
			break
		}
	}
	if !found {
		t.Error("healthcheck command should be registered")
	}
}

func TestHealthcheck_Repository(t *testing.T) {
	root := t.TempDir()
	t.Setenv("HOME", root)
	repo := testutil.CreateGitRepo(t, root, "project", "ref: refs/heads/main")
	worktree := testutil.CreateWorktree(t, repo, root, "project-wt", "ref: refs/heads/feature")

	tests := []struct {
		name  string
		dir   string
		wants []string
	}{
		{
			name:  "repository",
			dir:   repo,
			wants: []string{"Repository found", "Branch: main", "Label: [project:main]", "Second line: ~/project"},
		},
		{
			name:  "worktree",
			dir:   worktree,
			wants: []string{"Worktree found", "Repository: project", "Label: [project:feature]"},
		},
		{
			name:  "plain directory",
			dir:   root,
			wants: []string{"No .git entry", "Label: [" + filepath.Base(root) + "]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeRoot(t, "", "healthcheck", tt.dir, "--color", "never")
			if err != nil {
				t.Fatalf("healthcheck error = %v", err)
			}
			for _, want := range tt.wants {
				if !strings.Contains(out, want) {
					t.Errorf("healthcheck output missing %q:\n%s", want, out)
				}
			}
			if !strings.Contains(out, "Profile: none") {
				t.Errorf("healthcheck should report the color profile:\n%s", out)
			}
		})
	}
}

func TestHealthcheck_MissingDirectory(t *testing.T) {
	_, err := executeRoot(t, "", "healthcheck", filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Error("healthcheck should fail for a missing directory")
	}
}
