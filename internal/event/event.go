package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// EventSchemaVersion is the current event payload schema version
const EventSchemaVersion = "1.0"

// Type represents the type of an event
type Type string

// Profile lifecycle event types
const (
	ProfileGenerated   Type = "profile.generated"
	ProfileInvalidated Type = "profile.invalidated"
	ProfileStaleServed Type = "profile.stale_served"
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// ProfileGeneratedPayloadV1 is the typed payload for profile generation events
type ProfileGeneratedPayloadV1 struct {
	UserID         string `json:"user_id"`
	Sport          string `json:"sport"`
	DataConfidence string `json:"data_confidence"`
	Trigger        string `json:"trigger"` // miss, expired, forced
	Timestamp      int64  `json:"timestamp"`
}

// ProfileInvalidatedPayloadV1 is the typed payload for invalidation events
type ProfileInvalidatedPayloadV1 struct {
	UserID    string `json:"user_id"`
	Sport     string `json:"sport"`
	Timestamp int64  `json:"timestamp"`
}

// ProfileStaleServedPayloadV1 is the typed payload for stale-serve events
type ProfileStaleServedPayloadV1 struct {
	UserID    string `json:"user_id"`
	Sport     string `json:"sport"`
	Reason    string `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}

// NewProfileGeneratedEvent creates a profile generation event with a type-safe payload
func NewProfileGeneratedEvent(userID, sport, dataConfidence, trigger string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ProfileGenerated,
		Payload: ProfileGeneratedPayloadV1{
			UserID:         userID,
			Sport:          sport,
			DataConfidence: dataConfidence,
			Trigger:        trigger,
			Timestamp:      time.Now().Unix(),
		},
	}
}

// NewProfileInvalidatedEvent creates a profile invalidation event
func NewProfileInvalidatedEvent(userID, sport string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ProfileInvalidated,
		Payload: ProfileInvalidatedPayloadV1{
			UserID:    userID,
			Sport:     sport,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewProfileStaleServedEvent creates a stale-serve event
func NewProfileStaleServedEvent(userID, sport, reason string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ProfileStaleServed,
		Payload: ProfileStaleServedPayloadV1{
			UserID:    userID,
			Sport:     sport,
			Reason:    reason,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run
// synchronously; a handler error never blocks the remaining handlers.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d handler error(s) for %s: %v", len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
