// Package facebook fetches Facebook profile HTML through an authenticated
// session and extracts scoring signals from it.
// Note: Facebook heavily restricts scraping, so limited data may be available.
package facebook

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/faydalink/socialscore/auth"
	"github.com/faydalink/socialscore/htmlutil"
	"github.com/faydalink/socialscore/httpcache"
	"github.com/faydalink/socialscore/profile"
)

// Platform is the network name this package handles, as it appears in the
// social_media field of inbound requests.
const Platform = "facebook"

var usernamePattern = regexp.MustCompile(`(?i)facebook\.com/(?:people/[^/]+/)?([a-zA-Z0-9.]+)`)

// Match returns true if the URL is a Facebook profile URL.
func Match(urlStr string) bool {
	lower := strings.ToLower(urlStr)
	if !strings.Contains(lower, "facebook.com/") {
		return false
	}
	// Exclude common non-profile paths
	excluded := []string{
		"/sharer", "/share", "/dialog", "/login", "/help", "/policies",
		"/events/", "/groups/", "/pages/", "/watch/", "/marketplace/",
		"/gaming/", "/business/", "/ads/", "/privacy/", "/legal/",
		"/settings", "/messenger", "/hashtag/",
	}
	for _, ex := range excluded {
		if strings.Contains(lower, ex) {
			return false
		}
	}
	return usernamePattern.MatchString(urlStr)
}

// AuthRequired returns true: profile pages render little more than a login
// wall without session cookies.
func AuthRequired() bool { return true }

// ExtractUsername pulls the profile identifier out of a Facebook URL.
// Bare identifiers are returned unchanged.
func ExtractUsername(urlStr string) string {
	if !strings.Contains(strings.ToLower(urlStr), "facebook.com/") {
		return strings.TrimSpace(urlStr)
	}
	matches := usernamePattern.FindStringSubmatch(urlStr)
	if len(matches) < 2 {
		return ""
	}
	username := matches[1]
	if idx := strings.Index(username, "?"); idx > 0 {
		username = username[:idx]
	}
	if idx := strings.Index(username, "#"); idx > 0 {
		username = username[:idx]
	}
	lower := strings.ToLower(username)
	if lower == "profile.php" || lower == "index.php" {
		return ""
	}
	return username
}

// Client fetches Facebook profile documents with session cookies.
type Client struct {
	httpClient    *http.Client
	cache         httpcache.Cacher
	logger        *slog.Logger
	authenticated bool
}

// Option configures a Client.
type Option func(*config)

type config struct {
	cookies        map[string]string
	cookieFile     string
	cache          httpcache.Cacher
	logger         *slog.Logger
	browserCookies bool
	strictAuth     bool
}

// WithCookies sets explicit cookie values.
func WithCookies(cookies map[string]string) Option {
	return func(c *config) { c.cookies = cookies }
}

// WithCookieFile reads cookies from a JSON cookie file.
func WithCookieFile(path string) Option {
	return func(c *config) { c.cookieFile = path }
}

// WithBrowserCookies enables reading cookies from browser stores.
func WithBrowserCookies() Option {
	return func(c *config) { c.browserCookies = true }
}

// WithHTTPCache sets the HTTP cache.
func WithHTTPCache(httpCache httpcache.Cacher) Option {
	return func(c *config) { c.cache = httpCache }
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithStrictAuth makes New fail with ErrNoCookies when no cookie source
// yields a session. Without it the client fetches unauthenticated and each
// profile either resolves or is skipped downstream.
func WithStrictAuth() Option {
	return func(c *config) { c.strictAuth = true }
}

// New creates a Facebook client.
// Cookie sources are checked in order: WithCookies > environment > cookie
// file > browser.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	var sources []auth.Source
	if len(cfg.cookies) > 0 {
		sources = append(sources, auth.NewStaticSource(cfg.cookies))
	}
	sources = append(sources, auth.EnvSource{})
	if cfg.cookieFile != "" {
		sources = append(sources, auth.NewFileSource(cfg.cookieFile))
	}
	if cfg.browserCookies {
		sources = append(sources, auth.NewBrowserSource(cfg.logger))
	}

	cookies, err := auth.ChainSources(ctx, sources...)
	if err != nil {
		return nil, fmt.Errorf("cookie retrieval failed: %w", err)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	switch {
	case len(cookies) > 0:
		jar, jarErr := auth.NewCookieJar("facebook.com", cookies)
		if jarErr != nil {
			return nil, fmt.Errorf("cookie jar creation failed: %w", jarErr)
		}
		client.Jar = jar
	case cfg.strictAuth:
		return nil, fmt.Errorf("%w: set %v or use WithCookies/WithCookieFile/WithBrowserCookies",
			profile.ErrNoCookies, auth.EnvVars())
	default:
		cfg.logger.WarnContext(ctx, "no facebook cookies found, fetching unauthenticated")
	}

	cfg.logger.InfoContext(ctx, "facebook client created", "cookie_count", len(cookies))

	return &Client{
		httpClient:    client,
		cache:         cfg.cache,
		logger:        cfg.logger,
		authenticated: len(cookies) > 0,
	}, nil
}

// Authenticated reports whether the client carries session cookies.
func (c *Client) Authenticated() bool { return c.authenticated }

// Fetch retrieves the HTML snapshot of a profile. The identifier may be a
// vanity username or a numeric profile ID; both URL forms are tried before
// giving up with ErrProfileNotFound.
func (c *Client) Fetch(ctx context.Context, identifier string) (string, error) {
	username := ExtractUsername(identifier)
	if username == "" {
		return "", fmt.Errorf("could not extract username from %q", identifier)
	}

	c.logger.InfoContext(ctx, "fetching facebook profile", "username", username)

	candidates := []string{
		"https://www.facebook.com/" + username,
		"https://www.facebook.com/profile.php?id=" + username,
	}

	for _, candidate := range candidates {
		html, err := c.fetchURL(ctx, candidate)
		if err != nil {
			c.logger.WarnContext(ctx, "profile fetch attempt failed", "url", candidate, "error", err)
			continue
		}
		if unavailable(html) {
			c.logger.Debug("profile content unavailable", "url", candidate)
			continue
		}
		return html, nil
	}

	return "", fmt.Errorf("%w: %s", profile.ErrProfileNotFound, username)
}

func (c *Client) fetchURL(ctx context.Context, urlStr string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("User-Agent", httpcache.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	body, err := httpcache.FetchURL(ctx, c.cache, c.httpClient, req, c.logger)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// unavailable detects Facebook's placeholder page for missing, deleted, or
// fully private profiles. Missing profiles sometimes render a generic shell
// with a bare "Facebook" title instead of the placeholder text.
func unavailable(html string) bool {
	if strings.Contains(strings.ToLower(html), "content isn't available") {
		return true
	}
	return htmlutil.Title(html) == "Facebook"
}
