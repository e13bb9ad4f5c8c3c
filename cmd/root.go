package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/iksnae/statusline/internal"
	"github.com/iksnae/statusline/internal/render"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	logFile    string
	configPath string
	colorFlag  string
	formatFlag string
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"

	cfg = internal.Default()
)

// rootCmd renders the status line when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "statusline",
	Short: "Render a two-line status line from an assistant session payload",
	Long: `Reads the session JSON that the assistant runtime pipes to its status line
command and prints two lines:

  [Model] $cost - [repo:branch] - usedk/maxk (pct%) - elapsedus
  ~/path/to/cwd

Missing or malformed input never fails; every field falls back to a default.

Configure it as the status line command:
  "statusLine": {"type": "command", "command": "statusline"}`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = resolveConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		runStatusline(cmd, time.Now())
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to a rotating file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (.toml, .yaml); defaults to $"+internal.ConfigEnv)
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "Color output: always, auto, never (default always)")
	rootCmd.Flags().StringVar(&formatFlag, "format", "", "Output format: text, json, yaml (default text)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// resolveConfig layers flags over the config file over defaults. Problems are
// logged and never abort the run.
func resolveConfig(cmd *cobra.Command) internal.Config {
	c, loadErr := internal.LoadConfig(internal.ConfigPath(configPath))

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		c.Verbose = verbose
	}
	if flags.Changed("log-file") {
		c.LogFile = logFile
	}
	internal.ConfigureLogging(c.LogFile, c.Verbose)

	if loadErr != nil {
		internal.LogWarn("%v", loadErr)
	}

	if flags.Changed("color") {
		if mode, err := internal.ParseColorMode(colorFlag); err != nil {
			internal.LogWarn("%v", err)
		} else {
			c.Color = mode
		}
	}
	if f := flags.Lookup("format"); f != nil && f.Changed {
		c.Format = formatFlag
	}
	return c
}

// runStatusline reads the payload from the command's input and writes the
// status line to its output. It always writes two lines.
func runStatusline(cmd *cobra.Command, start time.Time) {
	out := cmd.OutOrStdout()
	defer func() {
		if r := recover(); r != nil {
			internal.LogError("status line panicked: %v", r)
			fmt.Fprint(out, "\n\n")
		}
	}()

	snap := internal.ReadSnapshot(cmd.InOrStdin())

	renderer, err := render.NewRenderer(cfg.Format, cfg, out)
	if err != nil {
		internal.LogWarn("%v", err)
		renderer = render.NewTextRenderer(cfg.Palette, render.ColorProfile(cfg.Color, out))
	}

	metrics := internal.NewStatusline(cfg).Derive(snap, start)
	if err := renderer.Render(metrics, out); err != nil {
		internal.LogError("%v", &internal.RenderError{Format: renderer.Format(), Err: err})
	}
}
