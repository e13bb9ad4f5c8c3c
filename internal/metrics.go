package internal

import "math"

// DefaultContextWindow is the context size assumed when the payload does not report one
const DefaultContextWindow uint64 = 200_000

// UnknownLabel is shown when a name cannot be determined
const UnknownLabel = "?"

// CostTier classifies the rounded session cost for display
type CostTier int

const (
	CostTierLow CostTier = iota
	CostTierMedium
	CostTierHigh
)

func (t CostTier) String() string {
	switch t {
	case CostTierLow:
		return "low"
	case CostTierMedium:
		return "medium"
	case CostTierHigh:
		return "high"
	default:
		return "unknown"
	}
}

// MarshalText lets the tier serialize by name
func (t CostTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// CostTierFor returns the tier for a rounded dollar amount
func CostTierFor(cost int64) CostTier {
	switch {
	case cost <= 5:
		return CostTierLow
	case cost <= 20:
		return CostTierMedium
	default:
		return CostTierHigh
	}
}

// Name returns the display name, falling back to the id and then to UnknownLabel
func (m Model) Name() string {
	if m.DisplayName != "" {
		return m.DisplayName
	}
	if m.ID != "" {
		return m.ID
	}
	return UnknownLabel
}

// Rounded returns the total cost rounded to the nearest dollar
func (c Cost) Rounded() int64 {
	r := math.Round(c.TotalCostUSD)
	switch {
	case math.IsNaN(r):
		return 0
	case r >= math.MaxInt64:
		return math.MaxInt64
	case r <= math.MinInt64:
		return math.MinInt64
	}
	return int64(r)
}

// Stats returns used and maximum kilotokens plus the unrounded used percentage.
// fallback replaces a zero context size; pass DefaultContextWindow for the
// standard behavior.
//
// Used tokens are rounded once at token granularity and once more at kilotoken
// granularity.
func (cw ContextWindow) Stats(fallback uint64) (usedK, maxK uint64, pct float64) {
	maxTokens := cw.SizeTokens
	if maxTokens == 0 {
		maxTokens = fallback
	}

	pct = cw.UsedPercentage
	usedTokens := math.Round(float64(maxTokens) * (pct / 100))
	usedK = toUint(math.Round(usedTokens / 1000))
	maxK = toUint(math.Round(float64(maxTokens) / 1000))
	return usedK, maxK, pct
}

// toUint converts a rounded float, saturating at the bounds of uint64
func toUint(f float64) uint64 {
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= math.MaxUint64:
		return math.MaxUint64
	}
	return uint64(f)
}
