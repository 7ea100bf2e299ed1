package events

import "context"

// NopPublisher is used when no kafka brokers are configured.
type NopPublisher struct{}

func NewNopPublisher() NopPublisher { return NopPublisher{} }

func (NopPublisher) Publish(_ context.Context, _, _ []byte) error { return nil }

func (NopPublisher) Close() error { return nil }
