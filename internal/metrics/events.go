package metrics

import (
	"context"

	"github.com/leaguemind/LeagueMind_Go/internal/event"
	"github.com/leaguemind/LeagueMind_Go/internal/logger"
)

// EventMetricsCollector subscribes to profile lifecycle events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.ProfileGenerated,
		event.ProfileInvalidated,
		event.ProfileStaleServed,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment the event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.ProfileGenerated:
		if payload, ok := evt.Payload.(event.ProfileGeneratedPayloadV1); ok {
			ProfileRebuilds.WithLabelValues(payload.Sport, payload.Trigger).Inc()
		}
	case event.ProfileStaleServed:
		ProfileStaleServed.Inc()
	}

	log.Debug("Metrics recorded for event", "type", evt.Type)
	return nil
}
