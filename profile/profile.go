// Package profile defines the common types for Facebook profile signal extraction.
package profile

import "errors"

// Common errors returned across the scoring pipeline.
var (
	ErrNoCookies       = errors.New("no cookies available")
	ErrProfileNotFound = errors.New("profile not found")
	ErrRateLimited     = errors.New("rate limited")

	// ErrNoProfiles means none of the requested identifiers yielded a
	// usable profile document. Maps to a "not found" outcome at the API
	// boundary, distinct from request-validation failures.
	ErrNoProfiles = errors.New("no usable profiles")
)

// Default values substituted when a signal's markup pattern does not match.
// Count defaults are deliberately non-zero so a missed pattern cannot zero
// out the network or activity score; photo defaults are deliberately true
// because absent markup is not proof of an absent photo.
const (
	DefaultFollowers  = 10000
	DefaultPostsCount = 10
	DefaultBioLength  = 100
)

// Signals is the structured record extracted from a profile's HTML snapshot.
// It is always fully populated: every field either matched a pattern or
// carries its documented default.
type Signals struct {
	Username       string  `json:"username"`
	IsVerified     bool    `json:"is_verified"`
	Followers      int     `json:"followers"`
	PostsCount     int     `json:"posts_count"`
	EngagementRate float64 `json:"engagement_rate"`
	BioLength      int     `json:"bio_length"`
	HasProfilePic  bool    `json:"has_profile_photo"`
	HasCoverPhoto  bool    `json:"has_cover_photo"`
}

// Defaults returns a Signals record populated entirely with fallback values.
// Extraction starts from this record and overwrites whatever it can match.
func Defaults(username string) Signals {
	return Signals{
		Username:       username,
		IsVerified:     false,
		Followers:      DefaultFollowers,
		PostsCount:     DefaultPostsCount,
		EngagementRate: 0,
		BioLength:      DefaultBioLength,
		HasProfilePic:  true,
		HasCoverPhoto:  true,
	}
}
