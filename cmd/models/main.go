// Command models lists the Gemini models available to GEMINI_API_KEY that
// support text generation.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tourism/internal/config"
	"tourism/internal/gemini"
)

type listFunc func(ctx context.Context, apiKey string) ([]gemini.ModelInfo, error)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = run(ctx, cfg, os.Stdout, listModels)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Model listing failed")
	}
}

func listModels(ctx context.Context, apiKey string) ([]gemini.ModelInfo, error) {
	return gemini.ListModels(ctx, apiKey)
}

// run performs one listing pass. It stops before any catalog call when no API
// key is configured.
func run(ctx context.Context, cfg *config.Config, w io.Writer, list listFunc) error {
	if err := cfg.RequireGeminiKey(); err != nil {
		return fmt.Errorf("check your .env file: %w", err)
	}

	fmt.Fprintln(w, "Fetching available models from Google AI...")

	models, err := list(ctx, cfg.Gemini.APIKey)
	if err != nil {
		return fmt.Errorf("failed to fetch models, check your network or API key: %w", err)
	}

	fmt.Fprintln(w, "\nModels available to your API key:")
	return gemini.WriteModels(w, gemini.FilterGenerative(models))
}
