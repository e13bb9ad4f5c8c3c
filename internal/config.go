package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable that points at a config file
const ConfigEnv = "STATUSLINE_CONFIG"

// ColorMode controls when ANSI colors are emitted
type ColorMode string

const (
	ColorAlways ColorMode = "always"
	ColorAuto   ColorMode = "auto"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a color mode string
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case ColorAlways, ColorAuto, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("unsupported color mode: %s (supported: always, auto, never)", s)
}

// Palette holds hex colors for each status line segment. Empty entries keep the default.
type Palette struct {
	Model      string `yaml:"model" toml:"model"`
	Folder     string `yaml:"folder" toml:"folder"`
	Usage      string `yaml:"usage" toml:"usage"`
	CostLow    string `yaml:"cost_low" toml:"cost_low"`
	CostMedium string `yaml:"cost_medium" toml:"cost_medium"`
	CostHigh   string `yaml:"cost_high" toml:"cost_high"`
	Dim        string `yaml:"dim" toml:"dim"`
}

// DefaultPalette returns the Tokyo Night colors
func DefaultPalette() Palette {
	return Palette{
		Model:      "#7aa2f7",
		Folder:     "#bb9af7",
		Usage:      "#7dcfff",
		CostLow:    "#9ece6a",
		CostMedium: "#e0af68",
		CostHigh:   "#ff9e64",
		Dim:        "#565f89",
	}
}

// merge overlays non-empty entries of o
func (p Palette) merge(o Palette) Palette {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&p.Model, o.Model)
	set(&p.Folder, o.Folder)
	set(&p.Usage, o.Usage)
	set(&p.CostLow, o.CostLow)
	set(&p.CostMedium, o.CostMedium)
	set(&p.CostHigh, o.CostHigh)
	set(&p.Dim, o.Dim)
	return p
}

// Config holds everything the status line needs from its environment
type Config struct {
	Home                 string    `yaml:"-" toml:"-"`
	Color                ColorMode `yaml:"color" toml:"color"`
	Format               string    `yaml:"format" toml:"format"`
	Verbose              bool      `yaml:"verbose" toml:"verbose"`
	LogFile              string    `yaml:"log_file" toml:"log_file"`
	DefaultContextWindow uint64    `yaml:"default_context_window" toml:"default_context_window"`
	Palette              Palette   `yaml:"palette" toml:"palette"`
}

// Default returns the built-in configuration
func Default() Config {
	home, _ := os.LookupEnv("HOME")
	return Config{
		Home:                 home,
		Color:                ColorAlways,
		Format:               "text",
		DefaultContextWindow: DefaultContextWindow,
		Palette:              DefaultPalette(),
	}
}

// ConfigPath returns the explicit path if set, otherwise $STATUSLINE_CONFIG
func ConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return os.Getenv(ConfigEnv)
}

// LoadConfig reads path over the defaults. An empty path returns the defaults.
// The file format is chosen by extension: .toml, or .yaml/.yml.
func LoadConfig(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, &ConfigError{Path: path, Err: err}
	}

	var file Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &file)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	default:
		err = fmt.Errorf("unsupported config extension %q (supported: .toml, .yaml, .yml)", ext)
	}
	if err != nil {
		return cfg, &ConfigError{Path: path, Err: err}
	}

	merged, err := cfg.merge(file)
	if err != nil {
		return cfg, &ConfigError{Path: path, Err: err}
	}
	return merged, nil
}

// merge overlays values set in the file, validating them
func (c Config) merge(file Config) (Config, error) {
	if file.Color != "" {
		mode, err := ParseColorMode(string(file.Color))
		if err != nil {
			return c, err
		}
		c.Color = mode
	}
	if file.Format != "" {
		c.Format = file.Format
	}
	if file.Verbose {
		c.Verbose = true
	}
	if file.LogFile != "" {
		c.LogFile = file.LogFile
	}
	if file.DefaultContextWindow > 0 {
		c.DefaultContextWindow = file.DefaultContextWindow
	}
	c.Palette = c.Palette.merge(file.Palette)
	return c, nil
}
