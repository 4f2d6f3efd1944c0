package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/segmentio/kafka-go"
)

// Publisher mirrors audit records onto a Kafka topic so external
// consumers can follow the authority's decisions. The relational audit
// table stays the source of truth; publishing is best effort.
type Publisher struct {
	writer *kafka.Writer
	mu     sync.Mutex
	closed bool
}

// NewPublisher returns nil when no brokers are configured, which
// callers treat as "publishing disabled".
func NewPublisher(brokers []string, topic string) *Publisher {
	if len(brokers) == 0 {
		return nil
	}

	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{}, // key by room for per-room ordering
			RequiredAcks: kafka.RequireOne,
			Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		},
	}
}

// Publish marshals the payload as JSON and writes it under the given key.
func (p *Publisher) Publish(ctx context.Context, key string, payload any) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return fmt.Errorf("publisher is closed")
	}
	p.mu.Unlock()

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}
