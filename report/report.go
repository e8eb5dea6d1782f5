// Package report assembles per-profile score results into the aggregated
// response record consumed by the API layer and the callback hook.
package report

import (
	"errors"
	"math"
	"time"

	"github.com/faydalink/socialscore/score"
)

// ErrNoResults is returned when aggregation is invoked with zero scored
// profiles. Callers are expected to reject such requests before this point.
var ErrNoResults = errors.New("no results to aggregate")

// ResponseType tags every outbound record.
const ResponseType = "SOCIAL_SCORE"

// Breakdown bucket names and their maxima.
const (
	BucketProfile  = "profile_score"
	BucketNetwork  = "network_score"
	BucketActivity = "activity_score"

	maxProfile  = 200.0
	maxNetwork  = 100.0
	maxActivity = 200.0
)

// BreakdownItem is one reported bucket: the achieved value against the
// bucket's fixed maximum.
type BreakdownItem struct {
	Value float64 `json:"value"`
	Max   float64 `json:"max"`
}

// Result is one profile's contribution to aggregation: its scaled score and
// three-bucket breakdown.
type Result struct {
	Score     int
	Breakdown map[string]BreakdownItem
}

// NewResult buckets one profile's raw dimension scores:
// profile = verification + completeness, network = followers,
// activity = engagement + activity.
func NewResult(scaled int, b score.Breakdown) Result {
	return Result{
		Score: scaled,
		Breakdown: map[string]BreakdownItem{
			BucketProfile: {
				Value: b.RawScores[score.DimVerification] + b.RawScores[score.DimCompleteness],
				Max:   maxProfile,
			},
			BucketNetwork: {
				Value: b.RawScores[score.DimFollowers],
				Max:   maxNetwork,
			},
			BucketActivity: {
				Value: b.RawScores[score.DimEngagement] + b.RawScores[score.DimActivity],
				Max:   maxActivity,
			},
		},
	}
}

// Response is the aggregated outbound record for one requesting identity.
type Response struct {
	FaydaNumber    string                   `json:"fayda_number"`
	Score          int                      `json:"score"`
	ScoreRange     string                   `json:"score_range"`
	RiskLevel      string                   `json:"risk_level"`
	ScoreBreakdown map[string]BreakdownItem `json:"score_breakdown"`
	Timestamp      string                   `json:"timestamp"`
	Type           string                   `json:"type"`
}

// Aggregate averages the given results into a single response. The reported
// score is the mean rounded half away from zero, and the risk label is
// computed from that same rounded value. Bucket values are averaged; bucket
// maxima are identical across contributors and carried through.
func Aggregate(faydaNumber string, results []Result) (*Response, error) {
	if len(results) == 0 {
		return nil, ErrNoResults
	}

	n := float64(len(results))
	sum := 0
	for _, r := range results {
		sum += r.Score
	}
	avgScore := int(math.Round(float64(sum) / n))

	breakdown := map[string]BreakdownItem{}
	for _, bucket := range []string{BucketProfile, BucketNetwork, BucketActivity} {
		var total float64
		var maxVal float64
		for _, r := range results {
			item := r.Breakdown[bucket]
			total += item.Value
			maxVal = item.Max
		}
		breakdown[bucket] = BreakdownItem{Value: total / n, Max: maxVal}
	}

	return &Response{
		FaydaNumber:    faydaNumber,
		Score:          avgScore,
		ScoreRange:     score.RangeLabel,
		RiskLevel:      score.RiskLevel(avgScore),
		ScoreBreakdown: breakdown,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		Type:           ResponseType,
	}, nil
}
