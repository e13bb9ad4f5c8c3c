package internal

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	gitDirPrefix  = "gitdir: "
	headRefPrefix = "ref: refs/heads/"
)

// RepoLabeler produces the "repo:branch" label for a working directory.
// ok is false when no source-control information was found.
type RepoLabeler interface {
	RepoLabel(dir string) (label string, ok bool)
}

// GitLabeler reads .git metadata directly from disk. It never shells out to git.
type GitLabeler struct{}

// NewGitLabeler creates a labeler backed by the local filesystem
func NewGitLabeler() *GitLabeler {
	return &GitLabeler{}
}

// RepoLabel implements RepoLabeler
func (g *GitLabeler) RepoLabel(dir string) (string, bool) {
	if dir == "" {
		return "", false
	}

	info := InspectGit(dir)
	switch {
	case info.RepoName != "" && info.Branch != "":
		return info.RepoName + ":" + info.Branch, true
	case info.RepoName != "":
		return info.RepoName, true
	case info.Branch != "":
		return DirBasename(dir) + ":" + info.Branch, true
	}
	return "", false
}

// GitMarker describes what kind of .git entry a directory has
type GitMarker string

const (
	GitMarkerNone     GitMarker = "none"
	GitMarkerDir      GitMarker = "directory"
	GitMarkerWorktree GitMarker = "worktree"
)

// GitInfo is the result of inspecting a working directory's .git entry
type GitInfo struct {
	Marker   GitMarker
	GitDir   string
	RepoName string
	Branch   string
}

// InspectGit resolves the metadata directory, repository name and branch for dir.
// Failures are logged and leave the corresponding fields empty.
func InspectGit(dir string) GitInfo {
	info := GitInfo{Marker: GitMarkerNone}
	gitPath := filepath.Join(dir, ".git")

	fi, err := os.Stat(gitPath)
	if err != nil {
		if !os.IsNotExist(err) {
			LogDebug("%v", &GitError{Path: gitPath, Op: "stat", Err: err})
		}
		return info
	}

	switch {
	case fi.Mode().IsRegular():
		info.Marker = GitMarkerWorktree
		gitDir, err := readWorktreeGitDir(gitPath)
		if err != nil {
			LogDebug("%v", err)
			return info
		}
		if !filepath.IsAbs(gitDir) {
			gitDir = filepath.Join(dir, gitDir)
		}
		info.GitDir = gitDir
		info.RepoName = mainRepoName(gitDir)
	case fi.IsDir():
		info.Marker = GitMarkerDir
		info.GitDir = gitPath
		if name := filepath.Base(filepath.Clean(dir)); name != "." && name != string(filepath.Separator) {
			info.RepoName = name
		}
	default:
		return info
	}

	branch, err := readBranch(info.GitDir)
	if err != nil {
		LogDebug("%v", err)
	}
	info.Branch = branch
	return info
}

// readWorktreeGitDir extracts the metadata path from a worktree's .git file
func readWorktreeGitDir(gitFile string) (string, error) {
	data, err := os.ReadFile(gitFile)
	if err != nil {
		return "", &GitError{Path: gitFile, Op: "read", Err: err}
	}
	content := strings.TrimSpace(string(data))
	gitDir, found := strings.CutPrefix(content, gitDirPrefix)
	if !found || gitDir == "" {
		return "", &GitError{Path: gitFile, Op: "parse", Err: ErrNoGitDir}
	}
	return gitDir, nil
}

// mainRepoName walks <repo>/.git/worktrees/<name> back up to <repo>
func mainRepoName(gitDir string) string {
	mainGit := filepath.Dir(filepath.Dir(filepath.Clean(gitDir)))
	repo := filepath.Base(filepath.Dir(mainGit))
	switch repo {
	case "", ".", "..", string(filepath.Separator):
		return ""
	}
	return repo
}

// readBranch returns the branch HEAD points at, or "" for a detached HEAD
func readBranch(gitDir string) (string, error) {
	headPath := filepath.Join(gitDir, "HEAD")
	data, err := os.ReadFile(headPath)
	if err != nil {
		return "", &GitError{Path: headPath, Op: "read", Err: err}
	}
	branch, found := strings.CutPrefix(strings.TrimSpace(string(data)), headRefPrefix)
	if !found {
		return "", nil
	}
	return branch, nil
}
