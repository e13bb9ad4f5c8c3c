package render

import (
	"fmt"
	"io"

	"github.com/iksnae/statusline/internal"
)

// Renderer defines the interface for all output formats
type Renderer interface {
	Render(m *internal.Metrics, w io.Writer) error
	Format() string
}

// NewRenderer creates a renderer for format. The text renderer uses cfg's
// palette and color mode, resolving "auto" against out.
func NewRenderer(format string, cfg internal.Config, out io.Writer) (Renderer, error) {
	switch format {
	case "", "text":
		return NewTextRenderer(cfg.Palette, ColorProfile(cfg.Color, out)), nil
	case "json":
		return &JSONRenderer{}, nil
	case "yaml":
		return &YAMLRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: text, json, yaml)", format)
	}
}
