package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/pricediff/internal/domain/models"
	"github.com/guttosm/pricediff/internal/logger"
)

const (
	comparisonPath = "/api/comparison"
	configPath     = "/api/config"

	// FailurePrefix starts every fetch failure message.
	FailurePrefix = "Error al consultar el backend: "
)

// Client fetches comparison results from the upstream price backend.
//
// Responsibilities:
//   - Issue GET /api/comparison and decode the ComparisonResponse body.
//   - Translate non-2xx statuses, transport faults and malformed bodies into
//     an unsuccessful ComparisonResponse instead of returning an error.
//   - Provide a cheap reachability probe for readiness checks.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client for the backend at baseURL.
//
// Parameters:
//   - baseURL (string): scheme and host of the backend, e.g. "http://localhost:8000".
//   - timeout (time.Duration): per-request timeout; zero disables it.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchComparison retrieves the current comparison. It never fails: every
// problem is reported as Success=false with a human readable Error.
func (c *Client) FetchComparison(ctx context.Context) models.ComparisonResponse {
	start := time.Now()
	url := c.baseURL + comparisonPath
	log := logger.With("backend")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.Failure(FailurePrefix + err.Error())
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("comparison fetch failed")
		return models.Failure(FailurePrefix + err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn().Int("status", resp.StatusCode).Str("url", url).Msg("comparison fetch rejected")
		return models.Failure(FailurePrefix + statusText(resp))
	}

	var out models.ComparisonResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Error().Err(err).Str("url", url).Msg("comparison body invalid")
		return models.Failure(FailurePrefix + fmt.Sprintf("invalid response body: %v", err))
	}

	log.Info().
		Bool("success", out.Success).
		Int("changes", len(out.Changes)).
		Dur("elapsed", time.Since(start)).
		Msg("comparison fetched")
	return out
}

// Ping reports whether the backend answers its configuration endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+configPath, nil)
	if err != nil {
		return fmt.Errorf("build ping request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("ping backend: %w", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("ping backend: unexpected status %s", resp.Status)
	}
	return nil
}

// statusText returns the reason phrase of resp, e.g. "Internal Server Error".
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
