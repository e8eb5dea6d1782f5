package facebook

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/faydalink/socialscore/profile"
)

func TestExtractEmptyDocument(t *testing.T) {
	got := Extract("", "someuser")

	want := profile.Signals{
		Username:       "someuser",
		IsVerified:     false,
		Followers:      10000,
		PostsCount:     10,
		EngagementRate: 0,
		BioLength:      100,
		HasProfilePic:  true,
		HasCoverPhoto:  true,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Extract mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractVerifiedWithFollowerCount(t *testing.T) {
	html := `<script>{"followersCount": 2500000}</script><span class="verified_badge"></span>`

	got := Extract(html, "bigpage")

	if !got.IsVerified {
		t.Error("IsVerified = false, want true")
	}
	if got.Followers != 2500000 {
		t.Errorf("Followers = %d, want 2500000", got.Followers)
	}
	if got.EngagementRate != 0 {
		t.Errorf("EngagementRate = %v, want 0", got.EngagementRate)
	}
	if got.BioLength != 100 {
		t.Errorf("BioLength = %d, want default 100", got.BioLength)
	}
	if !got.HasProfilePic {
		t.Error("HasProfilePic = false, want default true")
	}
}

func TestExtractVerificationMarkers(t *testing.T) {
	tests := []struct {
		name string
		html string
		want bool
	}{
		{"structured flag", `{"is_verified": true}`, true},
		{"structured flag spaced", `{"is_verified":    true}`, true},
		{"badge class", `<i class="VERIFIED_BADGE"></i>`, true},
		{"aria label", `<div aria-label="Verified"></div>`, true},
		{"structured flag false", `{"is_verified": false}`, false},
		{"unrelated text", `totally normal profile`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.html, "u").IsVerified; got != tt.want {
				t.Errorf("IsVerified = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractFollowers(t *testing.T) {
	tests := []struct {
		name string
		html string
		want int
	}{
		{"structured count", `"followersCount": 123456`, 123456},
		{"people follow this", `1,234,567 people follow this`, 1234567},
		{"followers suffix", `98,765 followers`, 98765},
		{"case insensitive", `12,000 FOLLOWERS`, 12000},
		{"no match keeps default", `nothing relevant here`, 10000},
		// The structured form wins even when later forms are present.
		{"first pattern wins", `"followersCount": 42` + ` and also 9,999 followers`, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.html, "u").Followers; got != tt.want {
				t.Errorf("Followers = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExtractEngagementRate(t *testing.T) {
	// 4 reactions + 2 comment mentions over posts_count(10) * 3.
	html := `<div aria-label="Like this post"></div>
<div aria-label="Love reaction"></div>
<div aria-label="Wow"></div>
<div aria-label="Angry face"></div>
<span>3 comments</span><span>add a comment</span>`

	got := Extract(html, "u")

	want := 6.0 / 30.0
	if math.Abs(got.EngagementRate-want) > 1e-9 {
		t.Errorf("EngagementRate = %v, want %v", got.EngagementRate, want)
	}
}

func TestExtractEngagementRateCapped(t *testing.T) {
	// Far more reaction labels than the cap allows.
	html := strings.Repeat(`<div aria-label="Like"></div>`, 200)

	got := Extract(html, "u")

	if got.EngagementRate != 0.9 {
		t.Errorf("EngagementRate = %v, want cap 0.9", got.EngagementRate)
	}
}

func TestExtractBioLength(t *testing.T) {
	tests := []struct {
		name string
		html string
		want int
	}{
		{
			"about block",
			`<div class="about-section">hello world</div>`,
			11,
		},
		{
			"bio block with nested markup stripped",
			`<div id="bio"><b>short</b> text</div>`,
			10, // "short text"
		},
		{
			"multi-line block",
			"<div data-bio>line one\nline two</div>",
			17,
		},
		{
			"whitespace trimmed",
			`<div class="about">   padded   </div>`,
			6,
		},
		{"no block keeps default", `<div class="header">x</div>`, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.html, "u").BioLength; got != tt.want {
				t.Errorf("BioLength = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExtractPhotoFlagsStayOptimistic(t *testing.T) {
	// No photo markup anywhere: absence is not proof of absence.
	got := Extract(`<html><body>nothing</body></html>`, "u")
	if !got.HasProfilePic || !got.HasCoverPhoto {
		t.Errorf("photo flags = (%v, %v), want (true, true)", got.HasProfilePic, got.HasCoverPhoto)
	}

	got = Extract(`<img src="profile_pic.jpg"><div class="cover_photo"></div>`, "u")
	if !got.HasProfilePic || !got.HasCoverPhoto {
		t.Errorf("photo flags with markers = (%v, %v), want (true, true)", got.HasProfilePic, got.HasCoverPhoto)
	}
}

func TestExtractDeterministic(t *testing.T) {
	html := `"followersCount": 5000 <div class="about">bio text</div> 3 comments`

	first := Extract(html, "u")
	second := Extract(html, "u")

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated Extract differs (-first +second):\n%s", diff)
	}
}
