package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	fallbackMessage = "The request could not be completed. Please try again."

	// maxBodySize caps how much of a response body is read when decoding.
	maxBodySize = 1 << 20
)

// Client talks to the TutorHub REST backend. Every request carries the
// current access token as a bearer credential when one is present.
type Client struct {
	baseURL string
	http    *http.Client
	limiter Limiter
}

// NewClient constructs a Client for the backend at baseURL. A zero timeout
// falls back to ten seconds so a dead network surfaces as an error rather
// than a hang.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, limiter Limiter) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: &Transport{Tokens: tokens},
		},
		limiter: limiter,
	}
}

// do issues a JSON request and decodes a 2xx response into out (when out is
// non-nil). Non-2xx responses are converted into the client error taxonomy.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &NetworkError{Err: err}
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFor(resp.StatusCode, data)
	}

	if out != nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// errorFor maps a non-2xx response onto the error taxonomy. Unauthorized
// always surfaces as an authentication failure so the caller can re-trigger
// login.
func (c *Client) errorFor(status int, body []byte) error {
	message := ExtractMessage(body, fallbackMessage)
	if status == http.StatusUnauthorized {
		return &AuthenticationError{Message: message}
	}
	return &RemoteError{StatusCode: status, Message: message}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}
