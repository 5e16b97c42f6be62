// Package sarvam is a thin REST client for the Sarvam AI translate and
// text-to-speech endpoints.
package sarvam

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"dhwani/apperr"
)

const defaultBaseURL = "https://api.sarvam.ai"

// Client talks to the Sarvam API. All methods are safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Sarvam API client authenticated with apiKey.
func NewClient(apiKey string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: time.Second * 60,
		},
	}
}

// SetBaseURL overrides the API base URL. Used for tests and proxies.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// SetTimeout overrides the request timeout.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.httpClient.Timeout = timeout
}

// postJSON sends a JSON request to path and decodes a JSON response into
// out. Non-2xx responses are returned as an error carrying the status code.
func (c *Client) postJSON(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-subscription-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Body is logged by the caller, never shown to end users.
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &statusError{Status: resp.StatusCode, Body: string(msg), Path: path}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// statusError is a non-2xx response from the Sarvam API.
type statusError struct {
	Status int
	Body   string
	Path   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("sarvam %s returned status %d: %s", e.Path, e.Status, e.Body)
}

// serviceErr wraps err as a service failure unless it already carries an
// application error kind.
func serviceErr(msg string, err error) error {
	return apperr.Wrap(apperr.KindService, msg, err)
}
