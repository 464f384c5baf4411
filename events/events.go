package events

import (
	"context"
	"time"
)

type ChallengeGenerated struct {
	Theme      string    `json:"theme"`
	Category   string    `json:"category,omitempty"`
	Model      string    `json:"model"`
	Predefined bool      `json:"predefined"`
	Degraded   bool      `json:"degraded"`
	At         time.Time `json:"at"`
}

type Publisher interface {
	Publish(ctx context.Context, event ChallengeGenerated) error
	Close()
}

// Nop drops every event. Used when nats is disabled.
type Nop struct{}

func (Nop) Publish(context.Context, ChallengeGenerated) error { return nil }

func (Nop) Close() {}
