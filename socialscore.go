// Package socialscore converts Facebook profile snapshots into aggregated
// credit-style scores.
//
// Basic usage:
//
//	client, _ := facebook.New(ctx, facebook.WithBrowserCookies())
//	svc := socialscore.NewService(client)
//	resp, err := svc.Score(ctx, socialscore.CentralScoreRequest{
//	    FaydaNumber: "614079852391",
//	    Requests: []socialscore.ScoreRequest{{
//	        Type: "SOCIAL_SCORE",
//	        Data: []socialscore.SocialMediaRequest{{SocialMedia: "facebook", Username: "zuck"}},
//	    }},
//	})
//
// The pipeline per profile is: fetch HTML -> extract signals -> score ->
// scale to [300, 850]. Profiles whose documents cannot be obtained are
// dropped; the request fails only when none resolve.
package socialscore

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/faydalink/socialscore/callback"
	"github.com/faydalink/socialscore/facebook"
	"github.com/faydalink/socialscore/profile"
	"github.com/faydalink/socialscore/report"
	"github.com/faydalink/socialscore/score"
)

// ErrNoFacebookRequests means the request carried no entries for the one
// network this service handles. This is a validation failure, distinct from
// ErrNoProfiles which means the entries existed but none resolved.
var ErrNoFacebookRequests = errors.New("no facebook score requests found")

// SocialMediaRequest identifies one profile on one network.
type SocialMediaRequest struct {
	SocialMedia string `json:"social_media"`
	Username    string `json:"username"`
}

// ScoreRequest groups profile identifiers under a request type tag.
type ScoreRequest struct {
	Type string               `json:"type"`
	Data []SocialMediaRequest `json:"data"`
}

// CentralScoreRequest is the inbound request for one identity.
type CentralScoreRequest struct {
	FaydaNumber string         `json:"fayda_number"`
	Requests    []ScoreRequest `json:"requests"`
	CallbackURL string         `json:"callbackUrl,omitempty"`
}

// CentralScoreResponse wraps the aggregated score keyed by request type.
type CentralScoreResponse struct {
	FaydaNumber    string                      `json:"fayda_number"`
	CombinedScores map[string]*report.Response `json:"combined_scores"`
}

// Fetcher retrieves the HTML snapshot for a profile identifier. It is the
// injected session/transport capability; the service never touches the
// network directly.
type Fetcher interface {
	Fetch(ctx context.Context, identifier string) (string, error)
}

// Service runs the fetch-extract-score-aggregate pipeline.
type Service struct {
	fetcher     Fetcher
	deliverer   *callback.Deliverer
	logger      *slog.Logger
	scaler      score.Scaler
	concurrency int
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) { s.logger = logger }
}

// WithScaler overrides the raw score range mapped onto [300, 850].
func WithScaler(sc score.Scaler) ServiceOption {
	return func(s *Service) { s.scaler = sc }
}

// WithConcurrency bounds how many profile fetches run in parallel.
func WithConcurrency(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithDeliverer sets the callback deliverer.
func WithDeliverer(d *callback.Deliverer) ServiceOption {
	return func(s *Service) { s.deliverer = d }
}

// NewService creates a scoring service around an authenticated fetcher.
func NewService(fetcher Fetcher, opts ...ServiceOption) *Service {
	s := &Service{
		fetcher:     fetcher,
		logger:      slog.Default(),
		scaler:      score.DefaultScaler,
		concurrency: 4,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.deliverer == nil {
		s.deliverer = callback.New(s.logger)
	}
	return s
}

// Score processes one central score request. Identifiers whose documents
// cannot be obtained are skipped; the request fails with ErrNoProfiles only
// when every identifier failed. When a callback URL is present, the
// response is additionally delivered on a detached goroutine; the returned
// response never waits on delivery.
func (s *Service) Score(ctx context.Context, req CentralScoreRequest) (*CentralScoreResponse, error) {
	identifiers := facebookIdentifiers(req)
	if len(identifiers) == 0 {
		return nil, ErrNoFacebookRequests
	}

	results := s.scoreProfiles(ctx, identifiers)
	if len(results) == 0 {
		return nil, profile.ErrNoProfiles
	}

	aggregated, err := report.Aggregate(req.FaydaNumber, results)
	if err != nil {
		return nil, err
	}

	resp := &CentralScoreResponse{
		FaydaNumber:    req.FaydaNumber,
		CombinedScores: map[string]*report.Response{report.ResponseType: aggregated},
	}

	if req.CallbackURL != "" {
		// Fire and forget: the caller gets the response regardless of
		// delivery outcome.
		dctx := context.WithoutCancel(ctx)
		go func() {
			if err := s.deliverer.Deliver(dctx, req.CallbackURL, resp); err != nil {
				s.logger.Warn("callback delivery failed", "url", req.CallbackURL, "error", err)
			}
		}()
	}

	return resp, nil
}

// facebookIdentifiers flattens the request down to the usernames this
// service scores.
func facebookIdentifiers(req CentralScoreRequest) []string {
	var identifiers []string
	for _, r := range req.Requests {
		if r.Type != report.ResponseType {
			continue
		}
		for _, sm := range r.Data {
			if sm.SocialMedia == facebook.Platform {
				identifiers = append(identifiers, sm.Username)
			}
		}
	}
	return identifiers
}

// scoreProfiles fetches and scores each identifier with bounded
// concurrency. Results keep input order; failed fetches leave gaps that are
// compacted out. A failure on one identifier never aborts the others.
func (s *Service) scoreProfiles(ctx context.Context, identifiers []string) []report.Result {
	slots := make([]*report.Result, len(identifiers))
	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup

	for i, username := range identifiers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			html, err := s.fetcher.Fetch(ctx, username)
			if err != nil {
				s.logger.WarnContext(ctx, "skipping profile", "username", username, "error", err)
				return
			}

			signals := facebook.Extract(html, username)
			breakdown := score.Calculate(signals)
			scaled := s.scaler.Scale(breakdown.TotalScore)
			result := report.NewResult(scaled, breakdown)
			slots[i] = &result

			s.logger.InfoContext(ctx, "profile scored",
				"username", username, "score", scaled, "tier", breakdown.Tier)
		}()
	}
	wg.Wait()

	results := make([]report.Result, 0, len(slots))
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}
	return results
}
