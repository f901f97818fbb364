package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dashy/dashy/internal/source"
)

// Client is a thin HTTP client for JSON notification feeds. It handles
// optional Bearer token authentication and automatic retry with
// exponential backoff on HTTP 429.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	maxRetries int
}

// NewClient creates a new feed HTTP client. The baseURL should be the
// root URL of the feed service; token may be empty for public feeds.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxRetries: 3,
	}
}

// Get performs an HTTP GET request and unmarshals the JSON response.
func (c *Client) Get(ctx context.Context, path string, result interface{}) error {
	url := c.baseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}

		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("executing request: %w", err)
			continue
		}

		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("reading response body: %w", err)
		}

		switch {
		case resp.StatusCode == http.StatusUnauthorized ||
			resp.StatusCode == http.StatusForbidden:
			return &source.AuthError{
				SourceType: source.SourceTypeFeed,
				Message:    fmt.Sprintf("HTTP %d from %s", resp.StatusCode, url),
			}

		case resp.StatusCode == http.StatusTooManyRequests:
			// Honor Retry-After when present, otherwise back off
			// exponentially.
			delay := time.Duration(1<<attempt) * time.Second
			if ra := resp.Header.Get("Retry-After"); ra != "" {
				if secs, err := strconv.Atoi(ra); err == nil {
					delay = time.Duration(secs) * time.Second
				}
			}
			lastErr = fmt.Errorf("rate limited by %s", url)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			continue

		case resp.StatusCode < 200 || resp.StatusCode >= 300:
			return fmt.Errorf("HTTP %d from %s: %s", resp.StatusCode, url, truncate(data, 200))
		}

		if result != nil {
			if err := json.Unmarshal(data, result); err != nil {
				return fmt.Errorf("decoding response from %s: %w", url, err)
			}
		}
		return nil
	}

	return fmt.Errorf("request to %s failed after %d attempts: %w", url, c.maxRetries+1, lastErr)
}

func truncate(data []byte, n int) string {
	if len(data) <= n {
		return string(data)
	}
	return string(data[:n]) + "..."
}
