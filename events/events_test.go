package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/imkonsowa/restaurants-challenges/config"
)

func TestNewPublisher_DisabledReturnsNop(t *testing.T) {
	publisher, err := NewPublisher(config.Nats{Enabled: false})
	if err != nil {
		t.Fatalf("NewPublisher failed: %v", err)
	}

	if _, ok := publisher.(Nop); !ok {
		t.Fatalf("expected Nop publisher, got %T", publisher)
	}

	if err := publisher.Publish(context.Background(), ChallengeGenerated{Theme: "sustainability"}); err != nil {
		t.Errorf("expected Nop publish to succeed, got %v", err)
	}
	publisher.Close()
}

func TestChallengeGenerated_JSONShape(t *testing.T) {
	event := ChallengeGenerated{
		Theme:      "sustainability",
		Category:   "Waste Reduction",
		Model:      "gemini-1.5-pro",
		Predefined: true,
		Degraded:   true,
		At:         time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("failed to marshal event: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("failed to parse event: %v", err)
	}

	expected := map[string]any{
		"theme":      "sustainability",
		"category":   "Waste Reduction",
		"model":      "gemini-1.5-pro",
		"predefined": true,
		"degraded":   true,
		"at":         "2026-10-16T12:00:00Z",
	}
	if len(payload) != len(expected) {
		t.Errorf("expected %d keys, got %d: %v", len(expected), len(payload), payload)
	}
	for key, want := range expected {
		if payload[key] != want {
			t.Errorf("expected %s=%v, got %v", key, want, payload[key])
		}
	}
}

func TestChallengeGenerated_OmitsEmptyCategory(t *testing.T) {
	data, err := json.Marshal(ChallengeGenerated{Theme: "decision-making", Model: "llama3"})
	if err != nil {
		t.Fatalf("failed to marshal event: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("failed to parse event: %v", err)
	}

	if _, ok := payload["category"]; ok {
		t.Errorf("expected category to be omitted, got %v", payload)
	}
}
