package mock

import (
	"context"
	"sync"
)

// Publisher records published events for assertions.
type Publisher struct {
	mu     sync.Mutex
	Events []PublishedEvent
}

type PublishedEvent struct {
	Key   []byte
	Value []byte
}

func NewPublisher() *Publisher { return &Publisher{} }

func (p *Publisher) Publish(_ context.Context, key, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Events = append(p.Events, PublishedEvent{Key: key, Value: value})
	return nil
}

func (p *Publisher) Close() error { return nil }
