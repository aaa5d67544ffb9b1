package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"tourism/internal/gemini"
	"tourism/internal/metrics"
	"tourism/internal/models"
)

// Generator is the upstream call the Gemini service relays.
type Generator interface {
	GenerateContent(ctx context.Context, prompt, systemInstruction string) (json.RawMessage, error)
}

type GeminiService interface {
	Generate(ctx context.Context, req models.GeminiRequest) (json.RawMessage, error)
}

type geminiServiceImpl struct {
	generator Generator
}

func NewGeminiService(generator Generator) GeminiService {
	return &geminiServiceImpl{generator: generator}
}

// Generate forwards one prompt upstream. Upstream error bodies are logged here
// and never returned to the caller.
func (s *geminiServiceImpl) Generate(ctx context.Context, req models.GeminiRequest) (json.RawMessage, error) {
	var prompt string
	if req.Prompt != nil {
		prompt = *req.Prompt
	}

	start := time.Now()
	resp, err := s.generator.GenerateContent(ctx, prompt, req.Instruction())
	metrics.GeminiRequestDurationSeconds.Observe(time.Since(start).Seconds())

	if err != nil {
		var apiErr *gemini.APIError
		if errors.As(err, &apiErr) {
			metrics.GeminiRequestsTotal.WithLabelValues(metrics.OutcomeUpstreamError).Inc()
			event := log.Error().Int("status", apiErr.StatusCode)
			if json.Valid(apiErr.Body) {
				event = event.RawJSON("upstream_error", apiErr.Body)
			} else {
				event = event.Bytes("upstream_error", apiErr.Body)
			}
			event.Msg("Error from Gemini API")
			return nil, err
		}
		metrics.GeminiRequestsTotal.WithLabelValues(metrics.OutcomeTransportError).Inc()
		log.Error().Err(err).Msg("Gemini API request failed")
		return nil, err
	}

	metrics.GeminiRequestsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	log.Debug().Int("bytes", len(resp)).Msg("Gemini response relayed")
	return resp, nil
}
