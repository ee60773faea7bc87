package explain

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUpstream marks a failed or unusable provider answer. It never reaches
// API callers.
var ErrUpstream = errors.New("text generation failed")

// Provider turns a prompt into generated text with a single attempt.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// ProviderConfig selects and configures the text-generation backend.
type ProviderConfig struct {
	Name    string
	APIKey  string
	Model   string
	BaseURL string
}

// NewProvider builds the configured provider. Without an API key it returns
// a provider that always fails, so explanations degrade to the fallback
// instead of keeping the server from starting.
func NewProvider(ctx context.Context, cfg ProviderConfig) (Provider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return unavailable{reason: "no API key configured for " + cfg.Name}, nil
	}
	switch cfg.Name {
	case ProviderGemini, "":
		return NewGemini(ctx, cfg)
	case ProviderOpenAI:
		return NewOpenAI(cfg), nil
	default:
		return nil, fmt.Errorf("unknown text provider %q", cfg.Name)
	}
}

type unavailable struct {
	reason string
}

func (u unavailable) Generate(context.Context, string) (string, error) {
	return "", fmt.Errorf("%w: %s", ErrUpstream, u.reason)
}

// cleanAnswer rejects blank answers.
func cleanAnswer(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty answer", ErrUpstream)
	}
	return text, nil
}
