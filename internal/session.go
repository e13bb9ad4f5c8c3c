package internal

import (
	"encoding/json"
	"io"
)

// SessionSnapshot is the decoded status line payload sent by the assistant runtime.
// Every field holds a usable value once decoding is complete.
type SessionSnapshot struct {
	Model            Model         `json:"model" yaml:"model"`
	Cost             Cost          `json:"cost" yaml:"cost"`
	WorkingDirectory string        `json:"cwd" yaml:"cwd"`
	ContextWindow    ContextWindow `json:"context_window" yaml:"context_window"`
}

// Model identifies the model driving the session
type Model struct {
	ID          string `json:"id" yaml:"id"`
	DisplayName string `json:"display_name" yaml:"display_name"`
}

// Cost holds the accumulated session cost
type Cost struct {
	TotalCostUSD float64 `json:"total_cost_usd" yaml:"total_cost_usd"`
}

// ContextWindow describes how much of the model's context is in use
type ContextWindow struct {
	SizeTokens     uint64  `json:"context_window_size" yaml:"context_window_size"`
	UsedPercentage float64 `json:"used_percentage" yaml:"used_percentage"`
}

// rawSnapshot mirrors SessionSnapshot with every field optional
type rawSnapshot struct {
	Model *struct {
		ID          *string `json:"id"`
		DisplayName *string `json:"display_name"`
	} `json:"model"`
	Cost *struct {
		TotalCostUSD *float64 `json:"total_cost_usd"`
	} `json:"cost"`
	Cwd           *string `json:"cwd"`
	ContextWindow *struct {
		SizeTokens     *uint64  `json:"context_window_size"`
		UsedPercentage *float64 `json:"used_percentage"`
	} `json:"context_window"`
}

// resolve fills every missing field with its default
func (r *rawSnapshot) resolve() SessionSnapshot {
	var s SessionSnapshot
	if r.Model != nil {
		s.Model.ID = stringOr(r.Model.ID, "")
		s.Model.DisplayName = stringOr(r.Model.DisplayName, "")
	}
	if r.Cost != nil && r.Cost.TotalCostUSD != nil {
		s.Cost.TotalCostUSD = *r.Cost.TotalCostUSD
	}
	s.WorkingDirectory = stringOr(r.Cwd, "")
	if r.ContextWindow != nil {
		if r.ContextWindow.SizeTokens != nil {
			s.ContextWindow.SizeTokens = *r.ContextWindow.SizeTokens
		}
		if r.ContextWindow.UsedPercentage != nil {
			s.ContextWindow.UsedPercentage = *r.ContextWindow.UsedPercentage
		}
	}
	return s
}

func stringOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

// DecodeSnapshot decodes a status line payload. It never fails: any parse error
// or type mismatch yields the fully defaulted snapshot, and the error is returned
// only so callers can log it.
func DecodeSnapshot(data []byte) (SessionSnapshot, error) {
	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return SessionSnapshot{}, &DecodeError{Stage: "parse", Err: err}
	}
	return raw.resolve(), nil
}

// ReadSnapshot reads the whole stream and decodes it. Read and decode failures
// are logged and degrade to the default snapshot.
func ReadSnapshot(r io.Reader) SessionSnapshot {
	data, err := io.ReadAll(r)
	if err != nil {
		LogDebug("%v", &DecodeError{Stage: "read", Err: err})
		return SessionSnapshot{}
	}

	snap, err := DecodeSnapshot(data)
	if err != nil {
		LogDebug("%v", err)
	}
	return snap
}
