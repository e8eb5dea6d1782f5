package score

// Bounds of the reported credit-style score range.
const (
	MinScore = 300
	MaxScore = 850
)

// RangeLabel is the literal range tag carried on every response.
const RangeLabel = "300-850"

// Scaler maps a weighted total from its raw range onto [MinScore, MaxScore].
type Scaler struct {
	MinRaw float64
	MaxRaw float64
}

// DefaultScaler assumes weighted totals in [0, 100].
var DefaultScaler = Scaler{MinRaw: 0, MaxRaw: 100}

// Scale linearly interpolates rawScore into [MinScore, MaxScore]. The
// normalized fraction is clamped to [0, 1] first, so out-of-range inputs
// saturate rather than escaping the output range. The result is truncated,
// not rounded.
func (s Scaler) Scale(rawScore float64) int {
	if s.MaxRaw <= s.MinRaw {
		return MinScore
	}
	normalized := (rawScore - s.MinRaw) / (s.MaxRaw - s.MinRaw)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}
	return MinScore + int(float64(MaxScore-MinScore)*normalized)
}

// RiskLevel labels a scaled score. The five buckets are contiguous and
// cover every integer, with boundaries at 450/550/650/750.
func RiskLevel(score int) string {
	switch {
	case score >= 750:
		return "Very Low Risk"
	case score >= 650:
		return "Low Risk"
	case score >= 550:
		return "Medium Risk"
	case score >= 450:
		return "High Risk"
	default:
		return "Very High Risk"
	}
}
