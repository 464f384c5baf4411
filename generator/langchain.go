package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/imkonsowa/restaurants-challenges/config"
	"github.com/imkonsowa/restaurants-challenges/models"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
)

type LangChain struct {
	llm         llms.Model
	timeout     time.Duration
	temperature float64
}

func NewLangChain(llm llms.Model, timeout time.Duration, temperature float64) *LangChain {
	return &LangChain{
		llm:         llm,
		timeout:     timeout,
		temperature: temperature,
	}
}

// New builds the model client for the configured provider.
func New(ctx context.Context, cfg config.LLM) (*LangChain, error) {
	var (
		llm llms.Model
		err error
	)

	switch cfg.Provider {
	case config.ProviderGoogleAI:
		llm, err = googleai.New(
			ctx,
			googleai.WithAPIKey(cfg.APIKey),
			googleai.WithDefaultModel(cfg.Model),
		)
	case config.ProviderOllama:
		llm, err = ollama.New(
			ollama.WithServerURL(cfg.Ollama.Address()),
			ollama.WithModel(cfg.Model),
		)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}

	return NewLangChain(llm, cfg.Timeout, cfg.Temperature), nil
}

func (g *LangChain) Generate(ctx context.Context, model, prompt string) models.GenerationResult {
	return g.generate(ctx, model, prompt)
}

func (g *LangChain) Stream(
	ctx context.Context,
	model, prompt string,
	onChunk func(chunk []byte) error,
) models.GenerationResult {
	return g.generate(ctx, model, prompt, llms.WithStreamingFunc(func(ctx context.Context, chunk []byte) error {
		return onChunk(chunk)
	}))
}

func (g *LangChain) generate(
	ctx context.Context,
	model, prompt string,
	extra ...llms.CallOption,
) models.GenerationResult {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	options := append([]llms.CallOption{
		llms.WithModel(model),
		llms.WithTemperature(g.temperature),
	}, extra...)

	text, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, options...)
	if err != nil {
		return models.Failed(fmt.Errorf("failed to generate content: %w", err))
	}

	return models.Succeeded(text)
}
