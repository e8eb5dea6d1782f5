// Package callback delivers finished score responses to a caller-supplied
// URL. Delivery is best effort: a bounded retry loop, then give up. The
// original caller already has the response, so nothing depends on the
// outcome.
package callback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/codeGROOVE-dev/retry"
)

const (
	maxAttempts    = 3
	baseDelay      = 1 * time.Second
	requestTimeout = 10 * time.Second
)

// Deliverer posts JSON payloads to callback URLs.
type Deliverer struct {
	httpClient *http.Client
	logger     *slog.Logger
	delay      time.Duration
}

// New creates a Deliverer. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Deliverer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Deliverer{
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
		delay:      baseDelay,
	}
}

// Deliver POSTs the payload as JSON to url, retrying transient failures
// with delays of 1x then 2x the base delay. Exhausted retries are reported
// as an error but callers are expected to log and move on.
func (d *Deliverer) Deliver(ctx context.Context, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode callback payload: %w", err)
	}

	err = retry.Do(
		func() error {
			req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
			if reqErr != nil {
				return reqErr
			}
			req.Header.Set("Content-Type", "application/json")

			resp, doErr := d.httpClient.Do(req)
			if doErr != nil {
				return doErr
			}
			defer resp.Body.Close() //nolint:errcheck // intentional

			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				return fmt.Errorf("callback returned HTTP %d", resp.StatusCode)
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(maxAttempts),
		retry.Delay(d.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			d.logger.Debug("retrying callback delivery", "attempt", n+1, "url", url, "error", err)
		}),
	)
	if err != nil {
		return fmt.Errorf("callback delivery to %s failed: %w", url, err)
	}

	d.logger.InfoContext(ctx, "callback delivered", "url", url)
	return nil
}
