package facebook

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://facebook.com/zuck", true},
		{"https://www.facebook.com/zuck", true},
		{"https://FACEBOOK.COM/zuck", true},
		{"https://facebook.com/people/John-Doe/100044213212345", true},
		{"https://facebook.com/profile.php?id=100044213212345", true},
		{"https://facebook.com/groups/golang", false},
		{"https://facebook.com/marketplace/item", false},
		{"https://facebook.com/login", false},
		{"https://twitter.com/zuck", false},
		{"https://example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := Match(tt.url); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestAuthRequired(t *testing.T) {
	if !AuthRequired() {
		t.Error("Facebook should require auth")
	}
}

func TestExtractUsername(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://facebook.com/zuck", "zuck"},
		{"https://www.facebook.com/zuck?ref=bookmarks", "zuck"},
		{"https://facebook.com/people/John-Doe/100044213212345", "100044213212345"},
		{"zuck", "zuck"},
		{"100044213212345", "100044213212345"},
		{"https://facebook.com/profile.php", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ExtractUsername(tt.input); got != tt.want {
				t.Errorf("ExtractUsername(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestUnavailable(t *testing.T) {
	if !unavailable(`<html>This Content Isn't Available Right Now</html>`) {
		t.Error("unavailable should detect the placeholder page")
	}
	if !unavailable(`<html><title>Facebook</title></html>`) {
		t.Error("unavailable should detect the bare shell title")
	}
	if unavailable(`<html><title>John Doe | Facebook</title></html>`) {
		t.Error("unavailable should pass a normal profile page")
	}
}
