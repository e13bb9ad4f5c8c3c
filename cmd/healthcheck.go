package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/statusline/internal"
	"github.com/iksnae/statusline/internal/render"
	"github.com/spf13/cobra"
)

var (
	successStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Bold(true)

	warningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Bold(true)

	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true)

	infoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("62")).
		Bold(true).
		Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck [dir]",
	Short: "Show how the status line resolves a working directory",
	Long: `Check what the status line would display for a directory by reporting:
  • Home directory detection and path shortening
  • Git marker (directory, worktree file, or none)
  • Repository name and branch
  • Color profile used for rendering

The directory defaults to the current working directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := ""
		if len(args) > 0 {
			dir = args[0]
		} else if wd, err := os.Getwd(); err == nil {
			dir = wd
		}
		return runHealthcheck(cmd, dir)
	},
}

func runHealthcheck(cmd *cobra.Command, dir string) error {
	out := cmd.OutOrStdout()
	say := func(a ...interface{}) { fmt.Fprintln(out, a...) }

	say(sectionStyle.Render("🔍 Status Line Health Check"))
	say()

	// Step 1: Working directory
	say(infoStyle.Render("Step 1: Checking working directory..."))
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		say(errorStyle.Render("❌ Not a directory:"), dir)
		return fmt.Errorf("healthcheck failed: %s is not a directory", dir)
	}
	say(successStyle.Render("✅ Directory found"))
	fmt.Fprintf(out, "   Path: %s\n", dir)
	say()

	// Step 2: Home directory
	say(infoStyle.Render("Step 2: Detecting home directory..."))
	if cfg.Home == "" {
		say(warningStyle.Render("⚠️  $HOME is not set, paths are shown unshortened"))
	} else {
		say(successStyle.Render("✅ Home directory detected"))
		fmt.Fprintf(out, "   Home: %s\n", cfg.Home)
	}
	fmt.Fprintf(out, "   Second line: %s\n", internal.ShortenPath(dir, cfg.Home))
	say()

	// Step 3: Git metadata
	say(infoStyle.Render("Step 3: Inspecting git metadata..."))
	git := internal.InspectGit(dir)
	switch git.Marker {
	case internal.GitMarkerDir:
		say(successStyle.Render("✅ Repository found (.git directory)"))
	case internal.GitMarkerWorktree:
		say(successStyle.Render("✅ Worktree found (.git file)"))
	default:
		say(warningStyle.Render("⚠️  No .git entry, the directory name is used"))
	}
	if git.GitDir != "" {
		fmt.Fprintf(out, "   Git dir: %s\n", git.GitDir)
	}
	if git.RepoName != "" {
		fmt.Fprintf(out, "   Repository: %s\n", git.RepoName)
	}
	if git.Branch != "" {
		fmt.Fprintf(out, "   Branch: %s\n", git.Branch)
	} else if git.Marker != internal.GitMarkerNone {
		say(warningStyle.Render("⚠️  No branch (detached or unreadable HEAD)"))
	}
	say()

	// Step 4: Rendering
	say(infoStyle.Render("Step 4: Checking color output..."))
	profile := render.ColorProfile(cfg.Color, out)
	fmt.Fprintf(out, "   Mode: %s\n", cfg.Color)
	fmt.Fprintf(out, "   Profile: %s\n", render.ProfileName(profile))
	say()

	// Summary
	label, ok := internal.NewGitLabeler().RepoLabel(dir)
	if !ok {
		label = internal.DirBasename(dir)
	}
	say(sectionStyle.Render("📊 Summary"))
	say()
	say(successStyle.Render("✅ Label: [" + label + "]"))
	return nil
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
}
