package render

import (
	"bytes"
	"testing"

	"github.com/iksnae/statusline/internal"
	"github.com/iksnae/statusline/testutil"
)

func TestJSONRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	r := &JSONRenderer{}

	if err := r.Render(internal.CreateTestMetrics(), &buf); err != nil {
		t.Fatalf("JSONRenderer.Render() error = %v", err)
	}

	var got map[string]interface{}
	testutil.JSONUnmarshal(t, buf.Bytes(), &got)

	if got["model_name"] != "Opus 4.5" {
		t.Errorf("model_name = %v, want Opus 4.5", got["model_name"])
	}
	if got["cost_tier"] != "low" {
		t.Errorf("cost_tier = %v, want low", got["cost_tier"])
	}
	if got["max_kilotokens"] != float64(200) {
		t.Errorf("max_kilotokens = %v, want 200", got["max_kilotokens"])
	}
	if got["repo_label"] != "project:main" {
		t.Errorf("repo_label = %v, want project:main", got["repo_label"])
	}
}
