package challenge

import (
	"context"
	"strings"
	"time"

	"github.com/imkonsowa/restaurants-challenges/events"
	"github.com/imkonsowa/restaurants-challenges/generator"
	"github.com/imkonsowa/restaurants-challenges/models"
	"github.com/rs/zerolog"
)

type Options struct {
	Model          string
	Fallback       string
	AnnotateErrors bool
}

// Service runs one submission through prompt building, generation and
// normalization.
type Service struct {
	generator  generator.Generator
	publisher  events.Publisher
	normalizer Normalizer
	model      string
	fallback   string
	logger     *zerolog.Logger
}

func NewService(gen generator.Generator, publisher events.Publisher, opts Options, logger *zerolog.Logger) *Service {
	if publisher == nil {
		publisher = events.Nop{}
	}

	return &Service{
		generator:  gen,
		publisher:  publisher,
		normalizer: Normalizer{AnnotateErrors: opts.AnnotateErrors},
		model:      opts.Model,
		fallback:   opts.Fallback,
		logger:     logger,
	}
}

// Prompt returns ErrUnknownTheme or ErrInputMissing for invalid requests.
func (s *Service) Prompt(req models.ChallengeRequest) (string, error) {
	_, prompt, err := s.prepare(req)
	return prompt, err
}

func (s *Service) prepare(req models.ChallengeRequest) (Theme, string, error) {
	theme, err := Lookup(req.Theme)
	if err != nil {
		return Theme{}, "", err
	}

	prompt, err := NewBuilder(theme).Build(req.Category, req.Text)
	if err != nil {
		return Theme{}, "", err
	}

	return theme, prompt, nil
}

func (s *Service) Generate(ctx context.Context, req models.ChallengeRequest) (*models.Challenge, error) {
	theme, prompt, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	result := s.generator.Generate(ctx, s.model, prompt)

	return s.complete(ctx, theme, req, result), nil
}

func (s *Service) Stream(
	ctx context.Context,
	req models.ChallengeRequest,
	onChunk func(chunk []byte) error,
) (*models.Challenge, error) {
	theme, prompt, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	result := s.generator.Stream(ctx, s.model, prompt, onChunk)

	return s.complete(ctx, theme, req, result), nil
}

func (s *Service) complete(
	ctx context.Context,
	theme Theme,
	req models.ChallengeRequest,
	result models.GenerationResult,
) *models.Challenge {
	predefined := theme.HasCategory(req.Category)

	challenge := &models.Challenge{
		Theme:    req.Theme,
		Category: req.Category,
		Output:   s.normalizer.Normalize(result, s.fallback),
		Degraded: !result.OK() || strings.TrimSpace(result.Text) == "",
	}

	if result.Err != nil {
		s.logger.Warn().
			Err(result.Err).
			Str("theme", req.Theme).
			Str("category", req.Category).
			Bool("predefined", predefined).
			Msg("Generation failed, using fallback")
	} else {
		s.logger.Info().
			Str("theme", req.Theme).
			Str("category", req.Category).
			Bool("predefined", predefined).
			Bool("degraded", challenge.Degraded).
			Msg("Challenge generated")
	}

	err := s.publisher.Publish(ctx, events.ChallengeGenerated{
		Theme:      req.Theme,
		Category:   req.Category,
		Model:      s.model,
		Predefined: predefined,
		Degraded:   challenge.Degraded,
		At:         time.Now(),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("theme", req.Theme).Msg("Failed to publish challenge event")
	}

	return challenge
}
