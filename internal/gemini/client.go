package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"tourism/internal/config"
)

// ErrInvalidResponse is returned when a 2xx reply is not a JSON document.
var ErrInvalidResponse = errors.New("gemini returned a non-JSON body")

// APIError carries a non-2xx response from the upstream API.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini api returned status %d", e.StatusCode)
}

// Client calls the generateContent endpoint of the Generative Language REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
}

func NewClient(cfg config.GeminiConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultGeminiBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = config.DefaultGeminiModel
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		apiKey:     cfg.APIKey,
	}
}

// Model returns the model identifier requests are sent to.
func (c *Client) Model() string {
	return c.model
}

// NewGenerateContentRequest wraps a prompt, and the system instruction when
// non-empty, in the upstream request structure.
func NewGenerateContentRequest(prompt, systemInstruction string) GenerateContentRequest {
	req := GenerateContentRequest{
		Contents: []Content{{Parts: []Part{{Text: prompt}}}},
	}
	if systemInstruction != "" {
		req.SystemInstruction = &Content{Parts: []Part{{Text: systemInstruction}}}
	}
	return req
}

// GenerateContent sends one generation request and returns the upstream body
// untouched on success.
func (c *Client) GenerateContent(ctx context.Context, prompt, systemInstruction string) (json.RawMessage, error) {
	payload, err := json.Marshal(NewGenerateContentRequest(prompt, systemInstruction))
	if err != nil {
		return nil, fmt.Errorf("failed to encode gemini request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	query := url.Values{}
	query.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"?"+query.Encode(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", redact(err, endpoint))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gemini response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: body}
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w (content type %q)", ErrInvalidResponse, resp.Header.Get("Content-Type"))
	}

	return json.RawMessage(body), nil
}

// redact drops the query string, which holds the API key, from transport errors.
func redact(err error, endpoint string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = endpoint
	}
	return err
}
