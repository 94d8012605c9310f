package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrMorphBackendUnavailable is returned when no morphology backend is
// configured or it cannot be reached
var ErrMorphBackendUnavailable = errors.New("morphology backend unavailable")

// MorphClient talks to the morphology backend that provides Russian lemmas
type MorphClient struct {
	baseURL    string
	httpClient *http.Client
	retries    int
	backoff    time.Duration
}

// NewMorphClient creates a new morphology client with default settings
func NewMorphClient(baseURL string) *MorphClient {
	return NewMorphClientWithOptions(baseURL, 30*time.Second, 3)
}

// NewMorphClientWithOptions creates a client with custom settings
func NewMorphClientWithOptions(baseURL string, timeout time.Duration, retries int) *MorphClient {
	return &MorphClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		retries: retries,
		backoff: time.Second,
	}
}

// lemmatizeRequest is the body of POST /lemmatize
type lemmatizeRequest struct {
	Tokens []string `json:"tokens"`
}

// lemmatizeResponse is the reply of POST /lemmatize
type lemmatizeResponse struct {
	Lemmas []string `json:"lemmas"`
}

// Lemmatize returns one lemma per token, in token order
func (c *MorphClient) Lemmatize(ctx context.Context, tokens []string) ([]string, error) {
	if len(tokens) == 0 {
		return []string{}, nil
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/lemmatize", &lemmatizeRequest{Tokens: tokens})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMorphBackendUnavailable, err)
	}

	var result lemmatizeResponse
	if err := parseResponse(resp, &result); err != nil {
		return nil, err
	}

	if len(result.Lemmas) != len(tokens) {
		return nil, fmt.Errorf("morphology backend returned %d lemmas for %d tokens", len(result.Lemmas), len(tokens))
	}
	return result.Lemmas, nil
}

// HealthCheck checks that the backend answers GET /health
func (c *MorphClient) HealthCheck(ctx context.Context) (bool, error) {
	resp, err := c.makeRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrMorphBackendUnavailable, err)
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}

// doRequest performs an HTTP request with retry logic
func (c *MorphClient) doRequest(ctx context.Context, method, endpoint string, body interface{}) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			// Exponential backoff
			backoff := time.Duration(attempt*attempt) * c.backoff
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		resp, err := c.makeRequest(ctx, method, endpoint, body)
		if err == nil && resp.StatusCode < 500 {
			// Success or client error (don't retry 4xx)
			return resp, nil
		}

		lastErr = err
		if resp != nil {
			lastErr = fmt.Errorf("HTTP %d", resp.StatusCode)
			resp.Body.Close()
		}
	}

	return nil, fmt.Errorf("request failed after %d retries: %w", c.retries, lastErr)
}

// makeRequest creates and executes an HTTP request
func (c *MorphClient) makeRequest(ctx context.Context, method, endpoint string, body interface{}) (*http.Response, error) {
	url := c.baseURL + endpoint

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

// parseResponse reads and parses JSON response
func parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(bodyBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
