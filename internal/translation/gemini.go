package translation

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultGeminiModel is the Gemini model used when none is configured.
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiService translates text to Korean via the Google Gemini API.
type GeminiService struct {
	model  string
	client *genai.Client
}

// NewGeminiService creates a new Gemini-backed translation service.
func NewGeminiService(ctx context.Context, apiKey, model string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key not found")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{model: model, client: client}, nil
}

// Translate translates text to Korean.
func (s *GeminiService) Translate(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf("Translate the following text to Korean. Respond with only the Korean translation, nothing else.\n\n%s", text)

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translated := strings.TrimSpace(resp.Text())
	if translated == "" {
		return "", fmt.Errorf("no translation returned")
	}
	return translated, nil
}

// Name returns the provider name.
func (s *GeminiService) Name() string {
	return ProviderGemini
}
