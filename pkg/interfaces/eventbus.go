package interfaces

import (
	"context"
)

// Event is something that happened to user-owned state (favorites, theme).
type Event interface {
	// EventType is the routing key, e.g. "favorite.added".
	EventType() string

	// Timestamp is the occurrence time in unix nanoseconds.
	Timestamp() int64

	// AggregateID identifies the affected entity (movie id, preference key).
	AggregateID() string
}

// EventHandler handles events of a single type.
type EventHandler interface {
	Handle(ctx context.Context, event Event) error
	EventType() string
}

// EventBus provides pub/sub for events raised by the favorites and preferences stores.
type EventBus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType string, handler EventHandler) error
	Unsubscribe(eventType string, handler EventHandler) error
	Stop() error
}
