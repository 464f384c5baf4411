package main

import (
	"github.com/imkonsowa/restaurants-challenges/models"
)

const (
	MessageTypeChunk  = "chunk"
	MessageTypeResult = "result"
	MessageTypeError  = "error"
)

// ChallengeForm is the body of POST /challenges/:theme and the query of the
// streaming endpoint.
type ChallengeForm struct {
	Category string `json:"category" form:"category"`
	Text     string `json:"text" form:"text"`
}

func (f ChallengeForm) ToModel(theme string) models.ChallengeRequest {
	return models.NewChallengeRequest(theme, f.Category, f.Text)
}

type ProcessingResult struct {
	Err error
	Msg WebSocketsMessage
}

type WebSocketsMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
