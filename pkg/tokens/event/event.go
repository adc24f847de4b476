package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event is the interface for all events published on a Bus.
// Events are immutable once created.
type Event interface {
	ID() string           // Unique event identifier
	Type() string         // Event type (e.g., "navigation.started")
	Source() string       // Event source (e.g., "router")
	Timestamp() time.Time // When the event occurred
	Data() any            // Payload
	DataBytes() []byte    // Serialized payload
}

// Metadata contains common event metadata fields.
type Metadata struct {
	EventID     string    `json:"id"`
	EventType   string    `json:"type"`
	EventSource string    `json:"source"`
	Timestamp   time.Time `json:"timestamp"`
}

// BaseEvent provides a generic event implementation.
// T is the payload type for type-safe access.
type BaseEvent[T any] struct {
	Meta    Metadata `json:"metadata"`
	Payload T        `json:"payload"`
}

// NewEvent creates an event with a fresh ID and the current time.
func NewEvent[T any](eventType, source string, payload T) *BaseEvent[T] {
	return &BaseEvent[T]{
		Meta: Metadata{
			EventID:     uuid.NewString(),
			EventType:   eventType,
			EventSource: source,
			Timestamp:   time.Now().UTC(),
		},
		Payload: payload,
	}
}

// ID returns the unique event identifier.
func (e *BaseEvent[T]) ID() string {
	return e.Meta.EventID
}

// Type returns the event type.
func (e *BaseEvent[T]) Type() string {
	return e.Meta.EventType
}

// Source returns the event source.
func (e *BaseEvent[T]) Source() string {
	return e.Meta.EventSource
}

// Timestamp returns when the event occurred.
func (e *BaseEvent[T]) Timestamp() time.Time {
	return e.Meta.Timestamp
}

// Data returns the event payload.
func (e *BaseEvent[T]) Data() any {
	return e.Payload
}

// TypedData returns the strongly-typed payload.
func (e *BaseEvent[T]) TypedData() T {
	return e.Payload
}

// DataBytes returns the JSON-encoded payload, or nil if it cannot be encoded.
func (e *BaseEvent[T]) DataBytes() []byte {
	data, err := json.Marshal(e.Payload)
	if err != nil {
		return nil
	}
	return data
}

// Handler processes events delivered by a Bus.
type Handler interface {
	Handle(ctx context.Context, evt Event) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, evt Event) error

// Handle calls f(ctx, evt).
func (f HandlerFunc) Handle(ctx context.Context, evt Event) error {
	return f(ctx, evt)
}
