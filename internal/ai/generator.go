// Package ai talks to the Gemini text generation model.
package ai

import (
	"context"

	"github.com/justsurfingit/resume-legend/internal/config"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=./generator.go -package=mocks -destination=mocks/generator.mock.go Generator

// ErrNoCandidates means the model answered but produced no text.
var ErrNoCandidates = errors.New("model returned no candidates")

type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// New picks the Gemini client named by cfg.Provider.
func New(ctx context.Context, cfg config.AIConfig) (Generator, error) {
	switch cfg.Provider {
	case config.ProviderLangChain:
		return NewLangChainGenerator(ctx, cfg.APIKey, cfg.Model)
	case config.ProviderREST, "":
		return NewGeminiClient(cfg.APIKey, cfg.Model, cfg.Endpoint), nil
	default:
		return nil, errors.Errorf("unknown ai provider %q", cfg.Provider)
	}
}
