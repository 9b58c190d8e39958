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

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultBaseURL = "https://api.tally.dev/v1"

// Client talks to the tally backend. Every response is wrapped in the
// {success, data} envelope; non-2xx statuses and success:false bodies
// are both failures. The client never retries: failed writes must stay
// invisible to local state, and retry policy belongs to the caller.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(token, baseURL string, logger zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		token:   token,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// envelope is the canonical response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *errorBody      `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// do issues one request and decodes the envelope's data field into out
// (out may be nil for calls with no interesting response body).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	reqID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", reqID)

	c.logger.Debug().Str("method", method).Str("path", path).Str("request_id", reqID).Msg("api request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Str("request_id", reqID).Msg("api transport error")
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", reqID).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api response")

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
	}

	// A bare 2xx with no body (e.g. 204 on delete) counts as success.
	if len(respBody) == 0 && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var env envelope
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &env); err != nil {
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				return fmt.Errorf("API error (status %d): %s", resp.StatusCode, truncate(string(respBody), 200))
			}
			return fmt.Errorf("parsing response envelope: %w", err)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		if env.Error != nil {
			return &APIError{Code: env.Error.Code, Message: env.Error.Message}
		}
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("parsing response data: %w", err)
		}
	}
	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
