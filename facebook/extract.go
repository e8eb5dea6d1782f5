package facebook

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/faydalink/socialscore/htmlutil"
	"github.com/faydalink/socialscore/profile"
)

// Facebook markup shifts constantly, so every signal is matched against the
// whole document with its own pattern group and its own fallback. A rule
// that does not match leaves the field at its default; extraction as a whole
// never fails.
var (
	// Verification markers. Any one of the three is sufficient.
	verifiedPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)"is_verified":\s*true`),
		regexp.MustCompile(`(?i)verified_badge`),
		regexp.MustCompile(`(?i)aria-label="Verified"`),
	}

	// Follower count forms, tried in order. The first pattern that matches
	// and parses wins; later forms are not consulted.
	followerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)"followersCount":\s*(\d+)`),
		regexp.MustCompile(`(?i)(\d[\d,]+)\s+people\s+follow\s+this`),
		regexp.MustCompile(`(?i)([\d,]+)\s+followers`),
	}

	reactionPattern = regexp.MustCompile(`(?i)aria-label="[^"]*(Like|Love|Wow|Haha|Sad|Angry)[^"]*"`)
	commentPattern  = regexp.MustCompile(`(?i)comments?`)

	profilePicPattern = regexp.MustCompile(`(?i)profile_pic|profile.*picture`)
	coverPhotoPattern = regexp.MustCompile(`(?i)cover_photo|cover.*image`)

	// First block whose opening div mentions "about" or "bio", captured
	// across lines up to the closing tag.
	bioPattern = regexp.MustCompile(`(?is)<div[^>]*?(about|bio)[^>]*>(.*?)</div>`)
)

// Extract converts a raw HTML document into a fully-populated Signals
// record. The identifier is carried through unchanged. Unmatched patterns
// keep their documented defaults, so any input, including the empty string,
// yields a usable record.
func Extract(html, username string) profile.Signals {
	sig := profile.Defaults(username)

	for _, p := range verifiedPatterns {
		if p.MatchString(html) {
			sig.IsVerified = true
			break
		}
	}

	for _, p := range followerPatterns {
		matches := p.FindStringSubmatch(html)
		if len(matches) < 2 {
			continue
		}
		n, err := strconv.Atoi(strings.ReplaceAll(matches[1], ",", ""))
		if err != nil {
			continue
		}
		sig.Followers = n
		break
	}

	reactions := len(reactionPattern.FindAllString(html, -1))
	comments := len(commentPattern.FindAllString(html, -1))
	sig.EngagementRate = min(0.9, safeDivide(float64(reactions+comments), float64(sig.PostsCount*3)))

	// Photo markers can only confirm presence. Missing markup is not proof
	// of a missing photo, so the optimistic defaults stand.
	if profilePicPattern.MatchString(html) {
		sig.HasProfilePic = true
	}
	if coverPhotoPattern.MatchString(html) {
		sig.HasCoverPhoto = true
	}

	if matches := bioPattern.FindStringSubmatch(html); len(matches) > 2 {
		sig.BioLength = utf8.RuneCountInString(htmlutil.StripTags(matches[2]))
	}

	return sig
}

// safeDivide returns a/b, or 0 when the denominator is zero.
func safeDivide(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
