package gemini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const generateContentMethod = "generateContent"

// ListModels returns the full model catalog visible to apiKey.
func ListModels(ctx context.Context, apiKey string, opts ...option.ClientOption) ([]ModelInfo, error) {
	client, err := genai.NewClient(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	defer client.Close()

	var models []ModelInfo
	it := client.ListModels(ctx)
	for {
		m, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list models: %w", err)
		}
		models = append(models, ModelInfo{
			Name:                       m.Name,
			DisplayName:                m.DisplayName,
			SupportedGenerationMethods: m.SupportedGenerationMethods,
		})
	}
	return models, nil
}

// SupportsGenerateContent reports whether the model can be used for text generation.
func (m ModelInfo) SupportsGenerateContent() bool {
	return slices.Contains(m.SupportedGenerationMethods, generateContentMethod)
}

// FilterGenerative keeps the models that support generateContent, in catalog order.
func FilterGenerative(models []ModelInfo) []ModelInfo {
	out := make([]ModelInfo, 0, len(models))
	for _, m := range models {
		if m.SupportsGenerateContent() {
			out = append(out, m)
		}
	}
	return out
}

// WriteModels prints one line per model.
func WriteModels(w io.Writer, models []ModelInfo) error {
	for _, m := range models {
		if _, err := fmt.Fprintf(w, "- %s (ID: %s)\n", m.DisplayName, m.Name); err != nil {
			return err
		}
	}
	return nil
}
