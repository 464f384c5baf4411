package generator

import (
	"context"

	"github.com/imkonsowa/restaurants-challenges/models"
)

// Generator is the hosted text-generation collaborator. Failures are
// reported inside the result instead of as a separate error.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) models.GenerationResult
	Stream(ctx context.Context, model, prompt string, onChunk func(chunk []byte) error) models.GenerationResult
}
