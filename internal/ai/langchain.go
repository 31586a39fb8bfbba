package ai

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// LangChainGenerator reaches Gemini through langchaingo's googleai model.
type LangChainGenerator struct {
	model llms.Model
}

func NewLangChainGenerator(ctx context.Context, apiKey, model string) (*LangChainGenerator, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create gemini client")
	}
	return &LangChainGenerator{model: llm}, nil
}

func (g *LangChainGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt)
	if err != nil {
		// googleai reports an empty candidate list as a plain error.
		if strings.Contains(err.Error(), "no content") || strings.Contains(err.Error(), "no candidates") {
			return "", ErrNoCandidates
		}
		return "", errors.Wrap(err, "generate")
	}
	if resp == "" {
		return "", ErrNoCandidates
	}
	return resp, nil
}
