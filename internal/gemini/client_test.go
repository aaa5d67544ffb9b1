package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/internal/config"
)

const candidatesBody = `{"candidates":[{"content":{"parts":[{"text":"Hi there!"}],"role":"model"}}]}`

func newTestClient(url string) *Client {
	return NewClient(config.GeminiConfig{APIKey: "test-key", BaseURL: url, Model: "gemini-test"}, nil)
}

func TestGenerateContentSuccess(t *testing.T) {
	var got map[string]json.RawMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(candidatesBody))
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).GenerateContent(context.Background(), "Hello", "")
	require.NoError(t, err)
	assert.Equal(t, candidatesBody, string(resp))

	assert.JSONEq(t, `[{"parts":[{"text":"Hello"}]}]`, string(got["contents"]))
	assert.NotContains(t, got, "systemInstruction")
}

func TestGenerateContentWithSystemInstruction(t *testing.T) {
	var got map[string]json.RawMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(candidatesBody))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GenerateContent(context.Background(), "Plan a trip", "You are a travel agent.")
	require.NoError(t, err)

	require.Contains(t, got, "systemInstruction")
	assert.JSONEq(t, `{"parts":[{"text":"You are a travel agent."}]}`, string(got["systemInstruction"]))
}

func TestGenerateContentUpstreamError(t *testing.T) {
	upstreamErr := `{"error":{"code":400,"message":"API key not valid.","status":"INVALID_ARGUMENT"}}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(upstreamErr))
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).GenerateContent(context.Background(), "Hello", "")
	assert.Nil(t, resp)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.JSONEq(t, upstreamErr, string(apiErr.Body))
}

func TestGenerateContentTransportErrorHidesKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestClient(url).GenerateContent(context.Background(), "Hello", "")
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.NotContains(t, err.Error(), "test-key")
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(config.GeminiConfig{APIKey: "k"}, nil)
	assert.Equal(t, config.DefaultGeminiModel, c.Model())
	assert.Equal(t, config.DefaultGeminiBaseURL, c.baseURL)
}

func TestGenerateContentRejectsNonJSONSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html>proxy login page</html>`))
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).GenerateContent(context.Background(), "Hello", "")
	assert.Nil(t, resp)
	require.ErrorIs(t, err, ErrInvalidResponse)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
