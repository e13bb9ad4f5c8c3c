package internal

// CreateTestSnapshot creates a snapshot with sample data
func CreateTestSnapshot(cwd string) SessionSnapshot {
	return SessionSnapshot{
		Model: Model{
			ID:          "claude-opus-4-5",
			DisplayName: "Opus 4.5",
		},
		Cost:             Cost{TotalCostUSD: 4.6},
		WorkingDirectory: cwd,
		ContextWindow: ContextWindow{
			SizeTokens:     200_000,
			UsedPercentage: 42.5,
		},
	}
}

// CreateTestMetrics creates derived metrics with sample data
func CreateTestMetrics() *Metrics {
	return &Metrics{
		ModelName:      "Opus 4.5",
		CostRoundedUSD: 5,
		CostTier:       CostTierLow,
		UsedKilotokens: 85,
		MaxKilotokens:  200,
		UsedPercentage: 42.5,
		RepoLabel:      "project:main",
		ShortPath:      "~/src/project",
		ElapsedMicros:  123,
	}
}

// StubLabeler is a RepoLabeler with a fixed answer per directory
type StubLabeler map[string]string

// RepoLabel implements RepoLabeler
func (s StubLabeler) RepoLabel(dir string) (string, bool) {
	label, ok := s[dir]
	return label, ok
}
