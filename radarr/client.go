package radarr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const apiPrefix = "/api/v3/"

// Client is the gateway to the Radarr v3 API. A single Client is created
// at startup, shared by every concurrent tool handler, and closed exactly
// once at shutdown. The zero value is not usable; use NewClient.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Radarr gateway client
func NewClient(baseURL, apiKey string, logger zerolog.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: URL is required", ErrInvalidConfig)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}, nil
}

// Close releases the client's pooled connections. Call once, after the
// last request has finished.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// do performs an authenticated request against the versioned API path and
// returns the raw response body with the HTTP status code. Any non-2xx
// status becomes an *APIError; transport failures are wrapped with their
// original cause. No retries happen at this layer.
func (c *Client) do(ctx context.Context, method, endpoint string, body any) ([]byte, int, error) {
	requestURL := c.baseURL + apiPrefix + strings.TrimLeft(endpoint, "/")

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Msg("Making Radarr API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s %s: %w", ErrNoConnection, method, endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, &APIError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Endpoint:   endpoint,
			Body:       truncateBody(respBody),
		}
	}

	return respBody, resp.StatusCode, nil
}

// get performs a GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	body, _, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	return decode(body, out)
}

// post performs a POST with a JSON body and decodes the response into out.
// Pass a nil out to discard the response.
func (c *Client) post(ctx context.Context, endpoint string, in, out any) error {
	body, _, err := c.do(ctx, http.MethodPost, endpoint, in)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decode(body, out)
}

// put performs a PUT with a JSON body and decodes the response into out.
func (c *Client) put(ctx context.Context, endpoint string, in, out any) error {
	body, _, err := c.do(ctx, http.MethodPut, endpoint, in)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decode(body, out)
}

// del performs a DELETE and returns the HTTP status code; no response
// body is assumed.
func (c *Client) del(ctx context.Context, endpoint string) (int, error) {
	_, status, err := c.do(ctx, http.MethodDelete, endpoint, nil)
	return status, err
}

func decode(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// truncateBody keeps error payloads readable in logs and messages.
func truncateBody(body []byte) string {
	const maxLen = 200
	s := string(body)
	if len(s) > maxLen {
		return s[:maxLen]
	}
	return s
}
