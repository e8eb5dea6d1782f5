package htmlutil

import "testing"

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{"title tag", `<html><title>John Doe | Facebook</title></html>`, "John Doe | Facebook"},
		{"entities unescaped", `<title>Tom &amp; Jerry</title>`, "Tom & Jerry"},
		{"og title fallback", `<meta property="og:title" content="Jane Doe">`, "Jane Doe"},
		{"no title", `<html><body>hi</body></html>`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Title(tt.html); got != tt.want {
				t.Errorf("Title = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"nested markup", `<b>bold</b> and <a href="#">link</a>`, "bold and link"},
		{"whitespace trimmed", "  <p>text</p>  ", "text"},
		{"plain text untouched", "just text", "just text"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripTags(tt.in); got != tt.want {
				t.Errorf("StripTags(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
