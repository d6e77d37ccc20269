package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client so the adapter can extend it without
// touching call sites.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a resty client configured for JSON APIs. Retries are
// disabled: the sync layer decides what to retry.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
