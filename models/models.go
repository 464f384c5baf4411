package models

import (
	"errors"
	"fmt"
	"strings"
)

var errUnknownFailure = errors.New("generation failed")

// ChallengeRequest is built once per submission and discarded afterwards.
type ChallengeRequest struct {
	Theme    string `json:"theme"`
	Category string `json:"category"`
	Text     string `json:"text,omitempty"`
}

// NewChallengeRequest trims the user input once so the prompt, the response
// and the published event all see the same values.
func NewChallengeRequest(theme, category, text string) ChallengeRequest {
	return ChallengeRequest{
		Theme:    strings.TrimSpace(theme),
		Category: strings.TrimSpace(category),
		Text:     strings.TrimSpace(text),
	}
}

func (r ChallengeRequest) Stringify() string {
	return fmt.Sprintf("Theme: %s, Category: %s, Text: %s", r.Theme, r.Category, r.Text)
}

// GenerationResult holds either the generated text or the error of the
// generation call, never both.
type GenerationResult struct {
	Text string
	Err  error
}

func Succeeded(text string) GenerationResult {
	return GenerationResult{Text: text}
}

func Failed(err error) GenerationResult {
	if err == nil {
		err = errUnknownFailure
	}

	return GenerationResult{Err: err}
}

func (g GenerationResult) OK() bool {
	return g.Err == nil
}

type Challenge struct {
	Theme    string `json:"theme"`
	Category string `json:"category,omitempty"`
	Output   string `json:"output"`
	Degraded bool   `json:"degraded"`
}
