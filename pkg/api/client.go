// Package api is a thin HTTP client for the Moltbook REST API.
//
// The client is request/response only: one bearer-authenticated call per
// method, no retries, no caching. Responses decode into typed records that
// embed an Envelope and retain the raw JSON body for --json pass-through.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moltbook/moltbook-cli/pkg/logger"
	"github.com/moltbook/moltbook-cli/pkg/version"
)

// DefaultBaseURL is the production Moltbook API endpoint.
const DefaultBaseURL = "https://www.moltbook.com/api/v1"

const defaultTimeout = 30 * time.Second

// Client performs authenticated requests against the Moltbook API.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	logger  *slog.Logger
}

// New creates a Client authenticating with the given API key.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: defaultTimeout},
		logger:  logger.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.baseURL = strings.TrimRight(c.baseURL, "/")

	return c
}

// do performs one request and decodes the JSON response into out.
// Transport failures, non-2xx statuses, and envelope-level failures
// (success == false) all surface as errors; nothing is retried.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any, out rawSetter) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "moltbook-cli/"+version.Version)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("api request", "method", method, "url", reqURL)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("connecting to Moltbook API at %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	c.logger.Debug("api response", "status", resp.StatusCode, "bytes", len(raw))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiErrorFromBody(resp.StatusCode, raw)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	out.setRaw(raw)

	if apiErr := out.envelopeError(); apiErr != nil {
		apiErr.StatusCode = resp.StatusCode
		return apiErr
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out rawSetter) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, payload any, out rawSetter) error {
	return c.do(ctx, http.MethodPost, path, nil, payload, out)
}
