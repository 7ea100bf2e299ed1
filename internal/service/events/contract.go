package events

import "context"

type Publisher interface {
	Publish(ctx context.Context, key, value []byte) error
	Close() error
}
