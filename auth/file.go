package auth

import (
	"context"
	"encoding/json"
	"os"
)

// fileCookie is one entry in a persisted cookie file. The format matches
// browser-automation cookie exports: a JSON array of objects with at least
// name and value fields.
type fileCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// FileSource reads session cookies from a JSON cookie file persisted by an
// earlier login flow.
type FileSource struct {
	path string
}

// NewFileSource creates a cookie source backed by the given file path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Cookies returns cookies from the file. A missing or malformed file is not
// an error; the chain moves on to the next source.
func (s *FileSource) Cookies(_ context.Context) (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, nil //nolint:nilnil // missing cookie file is not an error
	}

	var entries []fileCookie
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, nil //nolint:nilnil // unreadable cookie file is not an error
	}

	cookies := make(map[string]string)
	for _, e := range entries {
		if e.Name != "" && e.Value != "" {
			cookies[e.Name] = e.Value
		}
	}

	if len(cookies) == 0 {
		return nil, nil //nolint:nilnil // empty cookie file is not an error
	}
	return cookies, nil
}
