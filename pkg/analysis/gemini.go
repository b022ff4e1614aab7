package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"go.mau.fi/util/ptr"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when the config does not name one.
const DefaultModel = "gemini-2.0-flash-exp"

// Gemini implements Analyzer over the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
	log    zerolog.Logger
}

// NewGemini creates a Gemini analyzer from an API key.
func NewGemini(ctx context.Context, apiKey, model string, log zerolog.Logger) (*Gemini, error) {
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Gemini{
		client: client,
		model:  model,
		log:    log.With().Str("provider", "gemini").Logger(),
	}, nil
}

// Analyze sends the prompt as a single user turn and returns the concatenated
// candidate text.
func (g *Gemini) Analyze(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: prompt}}},
	}
	config := &genai.GenerateContentConfig{
		Temperature: ptr.Ptr(float32(0.7)),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("Gemini generation failed: %w", err)
	}

	var text strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				text.WriteString(part.Text)
			}
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("Gemini returned no text candidates")
	}
	g.log.Debug().Int("prompt_len", len(prompt)).Int("response_len", text.Len()).Msg("Generation completed")
	return text.String(), nil
}
