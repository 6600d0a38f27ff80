package translation

import (
	"context"
	"fmt"
)

// Service performs a single translation request against an external
// provider. Implementations target Korean by construction.
type Service interface {
	// Translate returns the Korean translation of text.
	Translate(ctx context.Context, text string) (string, error)

	// Name returns the provider name for logging.
	Name() string
}

// Provider names accepted by NewService.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// NewService creates a translation service for the named provider.
func NewService(ctx context.Context, provider, apiKey, model string) (Service, error) {
	switch provider {
	case ProviderOpenAI, "":
		return NewOpenAIService(apiKey, model), nil
	case ProviderGemini:
		return NewGeminiService(ctx, apiKey, model)
	default:
		return nil, fmt.Errorf("unknown translation provider: %q", provider)
	}
}
