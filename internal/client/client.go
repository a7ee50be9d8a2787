package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const fallbackMessage = "An error occurred from the API."

// Client talks to a running transform server.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// Result is a successful transform.
type Result struct {
	Text     string `json:"result"`
	TimingMs int64  `json:"timing_ms"`
}

// ModelInfo mirrors GET /api/models entries.
type ModelInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}

// APIError is a non-2xx answer from the server. Message is the server's
// "error" field, or a generic message when the body has none.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// New returns a client for baseURL. A nil httpClient means
// http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    httpClient,
	}
}

// Transform posts text to /api/transform.
func (c *Client) Transform(ctx context.Context, text string) (Result, error) {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return Result{}, fmt.Errorf("client: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/transform", bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("client: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var res Result
	if err := c.do(req, &res); err != nil {
		return Result{}, err
	}
	return res, nil
}

// Models lists the models the server exposes.
func (c *Client) Models(ctx context.Context) ([]ModelInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/models", nil)
	if err != nil {
		return nil, fmt.Errorf("client: create request: %w", err)
	}

	var models []ModelInfo
	if err := c.do(req, &models); err != nil {
		return nil, err
	}
	return models, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("client: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		var er struct {
			Error string `json:"error"`
		}
		msg := fallbackMessage
		if json.Unmarshal(body, &er) == nil && er.Error != "" {
			msg = er.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	return nil
}
