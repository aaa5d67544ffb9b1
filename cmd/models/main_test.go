package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/internal/config"
	"tourism/internal/gemini"
)

func TestRunRequiresAPIKey(t *testing.T) {
	called := false
	list := func(ctx context.Context, apiKey string) ([]gemini.ModelInfo, error) {
		called = true
		return nil, nil
	}

	var out bytes.Buffer
	err := run(context.Background(), &config.Config{}, &out, list)

	require.ErrorIs(t, err, config.ErrMissingGeminiAPIKey)
	assert.False(t, called, "catalog must not be queried without a key")
	assert.Empty(t, out.String())
}

func TestRunPrintsGenerativeModels(t *testing.T) {
	var gotKey string
	list := func(ctx context.Context, apiKey string) ([]gemini.ModelInfo, error) {
		gotKey = apiKey
		return []gemini.ModelInfo{
			{Name: "models/gemini-2.5-flash", DisplayName: "Gemini 2.5 Flash", SupportedGenerationMethods: []string{"generateContent"}},
			{Name: "models/text-embedding-004", DisplayName: "Text Embedding 004", SupportedGenerationMethods: []string{"embedContent"}},
		}, nil
	}

	cfg := &config.Config{Gemini: config.GeminiConfig{APIKey: "test-key"}}
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, &out, list))

	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t,
		"Fetching available models from Google AI...\n\nModels available to your API key:\n- Gemini 2.5 Flash (ID: models/gemini-2.5-flash)\n",
		out.String())
}

func TestRunListingFailure(t *testing.T) {
	list := func(ctx context.Context, apiKey string) ([]gemini.ModelInfo, error) {
		return nil, errors.New("permission denied")
	}

	cfg := &config.Config{Gemini: config.GeminiConfig{APIKey: "test-key"}}
	err := run(context.Background(), cfg, &bytes.Buffer{}, list)
	assert.Error(t, err)
}
