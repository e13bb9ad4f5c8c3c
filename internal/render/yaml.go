package render

import (
	"io"

	"github.com/iksnae/statusline/internal"
	"gopkg.in/yaml.v3"
)

// YAMLRenderer writes the derived metrics as YAML
type YAMLRenderer struct{}

// Render writes m to w
func (r *YAMLRenderer) Render(m *internal.Metrics, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(m)
}

// Format returns the format name
func (r *YAMLRenderer) Format() string {
	return "yaml"
}
