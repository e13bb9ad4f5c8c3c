package internal

import "time"

// Metrics are the display-ready values derived from a SessionSnapshot
type Metrics struct {
	ModelName      string   `json:"model_name" yaml:"model_name"`
	CostRoundedUSD int64    `json:"cost_rounded_usd" yaml:"cost_rounded_usd"`
	CostTier       CostTier `json:"cost_tier" yaml:"cost_tier"`
	UsedKilotokens uint64   `json:"used_kilotokens" yaml:"used_kilotokens"`
	MaxKilotokens  uint64   `json:"max_kilotokens" yaml:"max_kilotokens"`
	UsedPercentage float64  `json:"used_percentage" yaml:"used_percentage"`
	RepoLabel      string   `json:"repo_label" yaml:"repo_label"`
	ShortPath      string   `json:"short_path" yaml:"short_path"`
	ElapsedMicros  uint64   `json:"elapsed_micros" yaml:"elapsed_micros"`
}

// Statusline turns snapshots into Metrics. The zero value is not usable; build
// one with NewStatusline.
type Statusline struct {
	home          string
	contextWindow uint64
	labeler       RepoLabeler
	now           func() time.Time
}

// Option customizes a Statusline
type Option func(*Statusline)

// WithLabeler replaces the git-backed repo labeler
func WithLabeler(l RepoLabeler) Option {
	return func(s *Statusline) {
		s.labeler = l
	}
}

// WithClock replaces time.Now for elapsed time measurement
func WithClock(now func() time.Time) Option {
	return func(s *Statusline) {
		s.now = now
	}
}

// NewStatusline creates a Statusline from cfg
func NewStatusline(cfg Config, opts ...Option) *Statusline {
	s := &Statusline{
		home:          cfg.Home,
		contextWindow: cfg.DefaultContextWindow,
		labeler:       NewGitLabeler(),
		now:           time.Now,
	}
	if s.contextWindow == 0 {
		s.contextWindow = DefaultContextWindow
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Derive computes Metrics for snap. Elapsed time is measured from start up to
// the end of derivation.
func (s *Statusline) Derive(snap SessionSnapshot, start time.Time) *Metrics {
	usedK, maxK, pct := snap.ContextWindow.Stats(s.contextWindow)
	cost := snap.Cost.Rounded()

	label, ok := s.labeler.RepoLabel(snap.WorkingDirectory)
	if !ok {
		label = DirBasename(snap.WorkingDirectory)
	}

	m := &Metrics{
		ModelName:      snap.Model.Name(),
		CostRoundedUSD: cost,
		CostTier:       CostTierFor(cost),
		UsedKilotokens: usedK,
		MaxKilotokens:  maxK,
		UsedPercentage: pct,
		RepoLabel:      label,
		ShortPath:      ShortenPath(snap.WorkingDirectory, s.home),
	}

	if elapsed := s.now().Sub(start); elapsed > 0 {
		m.ElapsedMicros = uint64(elapsed.Microseconds())
	}
	return m
}
