package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/imkonsowa/restaurants-challenges/config"
	"github.com/nats-io/nats.go"
)

type NatsPublisher struct {
	conn    *nats.Conn
	js      nats.JetStreamContext
	subject string
}

func NewNatsPublisher(cfg config.Nats) (*NatsPublisher, error) {
	nc, err := nats.Connect(cfg.ConnStr())
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("get jetstream context: %w", err)
	}

	_, err = js.AddStream(&nats.StreamConfig{
		Name:      cfg.Stream,
		Subjects:  []string{cfg.Subject},
		Storage:   nats.FileStorage,
		Retention: nats.LimitsPolicy,
		MaxAge:    time.Hour * 24 * 7,
	})
	if err != nil && !errors.Is(err, nats.ErrStreamNameAlreadyInUse) {
		nc.Close()
		return nil, fmt.Errorf("create stream %s: %w", cfg.Stream, err)
	}

	return &NatsPublisher{conn: nc, js: js, subject: cfg.Subject}, nil
}

func (p *NatsPublisher) Publish(ctx context.Context, event ChallengeGenerated) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if _, err := p.js.Publish(p.subject, data, nats.Context(ctx)); err != nil {
		return fmt.Errorf("publish to %s: %w", p.subject, err)
	}

	return nil
}

func (p *NatsPublisher) Close() {
	p.conn.Close()
}

// NewPublisher returns a NatsPublisher when nats is enabled and Nop otherwise.
func NewPublisher(cfg config.Nats) (Publisher, error) {
	if !cfg.Enabled {
		return Nop{}, nil
	}

	publisher, err := NewNatsPublisher(cfg)
	if err != nil {
		return nil, err
	}

	return publisher, nil
}
