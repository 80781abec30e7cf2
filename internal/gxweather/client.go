// Package gxweather fetches city weather payloads from the gxweather.com
// regional weather service.
package gxweather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/huangwb/tianqi/internal/httputil"
)

// DefaultBaseURL is the production endpoint family.
const DefaultBaseURL = "https://www.gxweather.com"

// ErrNoData reports that no candidate endpoint produced a JSON payload.
// This is the expected outcome on a dead or blocked network; callers fall
// back to the demo dataset rather than surfacing it to the user.
var ErrNoData = errors.New("gxweather: no data from any endpoint")

// Client fetches weather payloads for provider city codes.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// New creates a Client. An empty baseURL selects DefaultBaseURL, a
// non-positive timeout selects httputil.DefaultTimeout, and a nil logger
// disables diagnostics.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: httputil.NewClient(timeout),
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

// candidateURLs returns the endpoints to try for a city code, in order:
// the JSON API first, then the static regional page that serves the same
// payload when the API is down.
func (c *Client) candidateURLs(code string) []string {
	return []string{
		fmt.Sprintf("%s/api/city/%s", c.baseURL, code),
		fmt.Sprintf("%s/lingshan/", c.baseURL),
	}
}

// FetchCity returns the first JSON payload any candidate endpoint serves
// for the city code. Candidates are tried strictly in order and a
// per-candidate failure only advances to the next one. When every
// candidate fails the error is ErrNoData; a cancelled ctx surfaces the
// context error instead.
func (c *Client) FetchCity(ctx context.Context, code string) ([]byte, error) {
	for _, url := range c.candidateURLs(code) {
		body, err := c.fetch(ctx, url)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Debug("candidate failed", zap.String("url", url), zap.Error(err))
			continue
		}
		c.logger.Debug("candidate succeeded", zap.String("url", url), zap.Int("bytes", len(body)))
		return body, nil
	}
	return nil, ErrNoData
}

// fetch performs one GET and returns the body only when the response both
// declares a JSON content type and parses as JSON.
func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", httputil.UserAgent)
	req.Header.Set("Accept", httputil.Accept)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "json") {
		return nil, fmt.Errorf("content type %q is not JSON", ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.New("body is not valid JSON")
	}
	return body, nil
}
