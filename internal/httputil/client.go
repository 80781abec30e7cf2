package httputil

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds each provider request. The service is slow from
// outside mainland China, so this is generous for a CLI.
const DefaultTimeout = 10 * time.Second

// Browser-masquerade headers. The provider serves its JSON endpoints only
// to clients that present a plausible browser signature.
const (
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	Accept    = "application/json, text/html"
)

// NewClient returns an HTTP client with standard timeout configuration.
// A non-positive timeout falls back to DefaultTimeout.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout: timeout,
	}
}
