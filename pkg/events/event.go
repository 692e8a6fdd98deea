package events

import (
	"time"
)

// Event types raised by the favorites and preferences stores.
const (
	FavoriteAdded   = "favorite.added"
	FavoriteRemoved = "favorite.removed"
	ThemeChanged    = "theme.changed"
)

// BaseEvent is a basic implementation of the Event interface
type BaseEvent struct {
	Type  string         `json:"type"`
	Time  int64          `json:"timestamp"`
	AggID string         `json:"aggregate_id"`
	Data  map[string]any `json:"data,omitempty"`
}

// NewEvent creates a new event
func NewEvent(eventType string, data map[string]any) *BaseEvent {
	return &BaseEvent{
		Type: eventType,
		Time: time.Now().UnixNano(),
		Data: data,
	}
}

// NewAggregateEvent creates a new event with an aggregate ID
func NewAggregateEvent(eventType string, aggregateID string, data map[string]any) *BaseEvent {
	return &BaseEvent{
		Type:  eventType,
		Time:  time.Now().UnixNano(),
		AggID: aggregateID,
		Data:  data,
	}
}

func (e *BaseEvent) EventType() string {
	return e.Type
}

func (e *BaseEvent) Timestamp() int64 {
	return e.Time
}

func (e *BaseEvent) AggregateID() string {
	return e.AggID
}
