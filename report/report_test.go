package report

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/faydalink/socialscore/profile"
	"github.com/faydalink/socialscore/score"
)

func TestNewResultBuckets(t *testing.T) {
	sig := profile.Defaults("u")
	sig.IsVerified = true
	b := score.Calculate(sig)

	r := NewResult(640, b)

	if r.Score != 640 {
		t.Errorf("Score = %d, want 640", r.Score)
	}

	wantProfile := b.RawScores[score.DimVerification] + b.RawScores[score.DimCompleteness]
	if got := r.Breakdown[BucketProfile]; got.Value != wantProfile || got.Max != 200 {
		t.Errorf("profile bucket = %+v, want value %v max 200", got, wantProfile)
	}
	if got := r.Breakdown[BucketNetwork]; got.Value != b.RawScores[score.DimFollowers] || got.Max != 100 {
		t.Errorf("network bucket = %+v, want followers raw with max 100", got)
	}
	wantActivity := b.RawScores[score.DimEngagement] + b.RawScores[score.DimActivity]
	if got := r.Breakdown[BucketActivity]; got.Value != wantActivity || got.Max != 200 {
		t.Errorf("activity bucket = %+v, want value %v max 200", got, wantActivity)
	}
}

func TestAggregateEmpty(t *testing.T) {
	_, err := Aggregate("123", nil)
	if !errors.Is(err, ErrNoResults) {
		t.Errorf("Aggregate(nil) error = %v, want ErrNoResults", err)
	}
}

func TestAggregateSingleIsIdentity(t *testing.T) {
	r := Result{
		Score: 612,
		Breakdown: map[string]BreakdownItem{
			BucketProfile:  {Value: 110, Max: 200},
			BucketNetwork:  {Value: 85.5, Max: 100},
			BucketActivity: {Value: 42.25, Max: 200},
		},
	}

	resp, err := Aggregate("614079852391", []Result{r})
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	if resp.Score != 612 {
		t.Errorf("Score = %d, want 612", resp.Score)
	}
	if resp.RiskLevel != "Medium Risk" {
		t.Errorf("RiskLevel = %q, want Medium Risk", resp.RiskLevel)
	}
	if resp.FaydaNumber != "614079852391" {
		t.Errorf("FaydaNumber = %q", resp.FaydaNumber)
	}
	if resp.ScoreRange != "300-850" {
		t.Errorf("ScoreRange = %q, want 300-850", resp.ScoreRange)
	}
	if resp.Type != ResponseType {
		t.Errorf("Type = %q, want %q", resp.Type, ResponseType)
	}
	if resp.Timestamp == "" {
		t.Error("Timestamp is empty")
	}
	if diff := cmp.Diff(r.Breakdown, resp.ScoreBreakdown); diff != "" {
		t.Errorf("breakdown not identical for mean-of-one (-want +got):\n%s", diff)
	}
}

func TestAggregateThreeProfiles(t *testing.T) {
	results := []Result{
		fixedResult(600, 90, 60, 30),
		fixedResult(700, 120, 70, 60),
		fixedResult(800, 150, 80, 90),
	}

	resp, err := Aggregate("123", results)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	if resp.Score != 700 {
		t.Errorf("Score = %d, want 700", resp.Score)
	}
	if resp.RiskLevel != "Low Risk" {
		t.Errorf("RiskLevel = %q, want Low Risk", resp.RiskLevel)
	}

	if got := resp.ScoreBreakdown[BucketProfile]; got.Value != 120 || got.Max != 200 {
		t.Errorf("profile bucket = %+v, want value 120 max 200", got)
	}
	if got := resp.ScoreBreakdown[BucketNetwork]; got.Value != 70 || got.Max != 100 {
		t.Errorf("network bucket = %+v, want value 70 max 100", got)
	}
	if got := resp.ScoreBreakdown[BucketActivity]; got.Value != 60 || got.Max != 200 {
		t.Errorf("activity bucket = %+v, want value 60 max 200", got)
	}
}

func TestAggregateRoundsHalfAwayFromZero(t *testing.T) {
	// Mean of 600 and 601 is 600.5; the reported score and the risk label
	// both come from the rounded value.
	resp, err := Aggregate("123", []Result{
		fixedResult(600, 0, 0, 0),
		fixedResult(601, 0, 0, 0),
	})
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	if resp.Score != 601 {
		t.Errorf("Score = %d, want 601", resp.Score)
	}
	if want := int(math.Round(600.5)); resp.Score != want {
		t.Errorf("rounding rule drifted: got %d, want %d", resp.Score, want)
	}
	if resp.RiskLevel != "Medium Risk" {
		t.Errorf("RiskLevel = %q, want Medium Risk", resp.RiskLevel)
	}
}

func fixedResult(scoreVal int, profileVal, networkVal, activityVal float64) Result {
	return Result{
		Score: scoreVal,
		Breakdown: map[string]BreakdownItem{
			BucketProfile:  {Value: profileVal, Max: 200},
			BucketNetwork:  {Value: networkVal, Max: 100},
			BucketActivity: {Value: activityVal, Max: 200},
		},
	}
}
