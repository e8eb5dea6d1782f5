// Package score turns extracted profile signals into a weighted credit-like
// score. Everything in this package is pure arithmetic over plain data: no
// I/O, no shared state, and no failure modes given a populated Signals
// record (counts are guarded to 1 before any logarithm).
package score

import (
	"math"

	"github.com/faydalink/socialscore/profile"
)

// Tier buckets a profile by reach and verification, independent of the
// numeric score.
type Tier string

// Tier levels, lowest to highest.
const (
	TierBasic    Tier = "Basic"
	TierStandard Tier = "Standard"
	TierPremium  Tier = "Premium"
	TierElite    Tier = "Elite"
)

// Scored dimension names, used as keys in Breakdown maps.
const (
	DimVerification = "verification"
	DimFollowers    = "followers"
	DimEngagement   = "engagement"
	DimCompleteness = "completeness"
	DimActivity     = "activity"
)

// Weights applied to each dimension's raw score. They sum to 1.0, which
// keeps the weighted total inside [0, 100].
var weights = map[string]float64{
	DimVerification: 0.15,
	DimFollowers:    0.30,
	DimEngagement:   0.25,
	DimCompleteness: 0.15,
	DimActivity:     0.15,
}

// Breakdown holds the per-dimension raw scores, their weighted
// contributions, the weighted total, and the tier classification.
type Breakdown struct {
	RawScores      map[string]float64 `json:"raw_scores"`
	WeightedScores map[string]float64 `json:"weighted_scores"`
	TotalScore     float64            `json:"total_score"`
	Tier           Tier               `json:"tier"`
}

// Calculate derives the full score breakdown for one profile.
func Calculate(sig profile.Signals) Breakdown {
	followers := max(1, sig.Followers)
	posts := max(1, sig.PostsCount)

	bonus := 0.0
	if sig.IsVerified {
		bonus = 10
	}

	verification := 0.0
	if sig.IsVerified {
		verification = 100
	}

	raw := map[string]float64{
		DimVerification: verification,
		DimFollowers:    math.Min(100, math.Log10(float64(followers))*20+bonus),
		DimEngagement:   math.Min(100, sig.EngagementRate*100),
		DimCompleteness: completeness(sig),
		DimActivity:     math.Min(100, math.Log10(float64(posts))*25+bonus),
	}

	weighted := make(map[string]float64, len(raw))
	total := 0.0
	for dim, v := range raw {
		weighted[dim] = v * weights[dim]
		total += weighted[dim]
	}

	return Breakdown{
		RawScores:      raw,
		WeightedScores: weighted,
		TotalScore:     total,
		Tier:           DetermineTier(followers, sig.IsVerified),
	}
}

// completeness rewards having a profile photo (40), a cover photo (30), and
// up to 30 points for bio length at one point per ten characters.
func completeness(sig profile.Signals) float64 {
	v := math.Min(30, float64(sig.BioLength)/10)
	if sig.HasProfilePic {
		v += 40
	}
	if sig.HasCoverPhoto {
		v += 30
	}
	return v
}

// DetermineTier classifies a profile by follower count and verification.
// Verified profiles clear each tier at lower follower thresholds, and never
// rank below Standard.
func DetermineTier(followers int, verified bool) Tier {
	if verified {
		switch {
		case followers >= 5_000_000:
			return TierElite
		case followers >= 500_000:
			return TierPremium
		default:
			return TierStandard
		}
	}

	switch {
	case followers >= 10_000_000:
		return TierElite
	case followers >= 1_000_000:
		return TierPremium
	case followers >= 100_000:
		return TierStandard
	default:
		return TierBasic
	}
}
