package main

import (
	"context"
	"fmt"

	"github.com/imkonsowa/restaurants-challenges/models"
	"github.com/rs/zerolog"
)

// ChallengeService is satisfied by *challenge.Service.
type ChallengeService interface {
	Prompt(req models.ChallengeRequest) (string, error)
	Generate(ctx context.Context, req models.ChallengeRequest) (*models.Challenge, error)
	Stream(ctx context.Context, req models.ChallengeRequest, onChunk func(chunk []byte) error) (*models.Challenge, error)
}

type Handler struct {
	service ChallengeService
	logger  *zerolog.Logger
}

func NewHandler(service ChallengeService, logger *zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) GenerateChallenge(ctx context.Context, req models.ChallengeRequest) (*models.Challenge, error) {
	h.logger.Info().
		Str("request", req.Stringify()).
		Msg("Start challenge generation")

	return h.service.Generate(ctx, req)
}

// StreamChallenge validates the request up front and then streams chunks on
// the returned channel, finishing with a single result message. The channel
// is closed when generation ends or ctx is cancelled.
func (h *Handler) StreamChallenge(ctx context.Context, req models.ChallengeRequest) (chan *ProcessingResult, error) {
	if _, err := h.service.Prompt(req); err != nil {
		return nil, err
	}

	h.logger.Info().
		Str("request", req.Stringify()).
		Msg("Start challenge stream")

	resultChan := make(chan *ProcessingResult)

	go func() {
		defer close(resultChan)

		result, err := h.service.Stream(ctx, req, func(chunk []byte) error {
			return send(ctx, resultChan, &ProcessingResult{
				Msg: WebSocketsMessage{
					Type: MessageTypeChunk,
					Data: string(chunk),
				},
			})
		})
		if err != nil {
			_ = send(ctx, resultChan, &ProcessingResult{
				Err: fmt.Errorf("challenge stream failed: %w", err),
			})

			return
		}

		_ = send(ctx, resultChan, &ProcessingResult{
			Msg: WebSocketsMessage{
				Type: MessageTypeResult,
				Data: result,
			},
		})
	}()

	return resultChan, nil
}

func send(ctx context.Context, resultChan chan<- *ProcessingResult, result *ProcessingResult) error {
	select {
	case resultChan <- result:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
