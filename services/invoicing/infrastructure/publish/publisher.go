// Package publish adapts the Watermill event bus to the domain's
// event-publishing port. Events are delivered after the aggregate snapshot
// is saved; delivery is at-least-once and never rolls back a committed save.
package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	domainevents "github.com/ghuser/invoicing/services/invoicing/domain/events"
)

// bus is the slice of pkg/events.EventBus the publisher needs.
type bus interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// DomainEventPublisher implements repositories.EventPublisher by marshaling
// each domain event to JSON and publishing it on the event's own topic.
type DomainEventPublisher struct {
	bus bus
}

// NewDomainEventPublisher returns a publisher backed by the given event bus.
func NewDomainEventPublisher(b bus) *DomainEventPublisher {
	return &DomainEventPublisher{bus: b}
}

// PublishAll delivers the batch in order. The first failure aborts the rest;
// redelivery of already-published events on retry is acceptable
// (at-least-once semantics, handlers must be idempotent).
func (p *DomainEventPublisher) PublishAll(ctx context.Context, evts []domainevents.DomainEvent) error {
	for _, evt := range evts {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal %s event: %w", evt.Topic(), err)
		}
		msg := message.NewMessage(watermill.NewUUID(), payload)
		msg.Metadata.Set("aggregate_id", evt.AggregateID())
		msg.Metadata.Set("occurred_at", evt.OccurredOn().UTC().Format(time.RFC3339Nano))
		if err := p.bus.Publish(ctx, evt.Topic(), msg); err != nil {
			return fmt.Errorf("publish %s event: %w", evt.Topic(), err)
		}
	}
	return nil
}
