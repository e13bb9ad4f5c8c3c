package render

import (
	"encoding/json"
	"io"

	"github.com/iksnae/statusline/internal"
)

// JSONRenderer writes the derived metrics as pretty-printed JSON
type JSONRenderer struct{}

// Render writes m to w
func (r *JSONRenderer) Render(m *internal.Metrics, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(m)
}

// Format returns the format name
func (r *JSONRenderer) Format() string {
	return "json"
}
