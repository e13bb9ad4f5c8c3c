package testutil

// Sample status line payloads as the assistant runtime sends them
const (
	FullPayload = `{
  "session_id": "abc123",
  "model": {"id": "claude-opus-4-5", "display_name": "Opus 4.5"},
  "cost": {"total_cost_usd": 4.6, "total_duration_ms": 120000},
  "cwd": "/home/alice/src/project",
  "workspace": {"current_dir": "/home/alice/src/project", "project_dir": "/home/alice/src/project"},
  "context_window": {"context_window_size": 100000, "used_percentage": 50.0}
}`

	MinimalPayload = `{"model": {"id": "claude-sonnet"}}`

	TruncatedPayload = `{"model": {"id": "claude-opus", "display_name": "Opus`

	WrongTypePayload = `{"model": {"id": 42}, "cwd": "/tmp/x"}`

	NegativeSizePayload = `{"context_window": {"context_window_size": -1, "used_percentage": 10}}`
)
