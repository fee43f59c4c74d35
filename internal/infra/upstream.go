package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const defaultUpstreamBaseURL = "https://trustzone.azurewebsites.net/api"

// UpstreamError carries the upstream's status and raw body so callers can
// recognize well-known failure bodies (the "no opening hours" 404, the
// "already favorited" 400) instead of treating everything as generic.
type UpstreamError struct {
	StatusCode int
	Body       string
	URL        string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d for %s: %s", e.StatusCode, e.URL, e.Body)
}

// UpstreamClient is the single HTTP doorway to the place directory API. It
// owns the base URL, the JSON headers and the bearer-token injection; the
// typed clients in internal/upstream build on it.
type UpstreamClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenProvider
}

func InitUpstreamClient(tokens TokenProvider) *UpstreamClient {
	baseURL := os.Getenv("UPSTREAM_BASE_URL")
	if baseURL == "" {
		baseURL = defaultUpstreamBaseURL
	}
	return NewUpstreamClient(baseURL, tokens)
}

func NewUpstreamClient(baseURL string, tokens TokenProvider) *UpstreamClient {
	return &UpstreamClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
	}
}

func (c *UpstreamClient) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *UpstreamClient) Post(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *UpstreamClient) Put(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *UpstreamClient) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *UpstreamClient) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens.Get(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("Upstream request failed: %s %s: %v", method, target, err)
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("Upstream request failed: %s %s -> %d", method, target, resp.StatusCode)
		return &UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       strings.Trim(strings.TrimSpace(string(raw)), `"`),
			URL:        target,
		}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}
