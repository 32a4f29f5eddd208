// Package events defines the domain events for the invoicing bounded context.
//
// Events are immutable records of business-significant state changes,
// timestamped at construction. They accumulate on the in-memory aggregate
// between load and save and are handed to the event publisher after a
// successful save; they are not reloaded from storage.
package events

import "time"

// DomainEvent is implemented by every event in this package. Topic names the
// event kind (and the Watermill topic it is published on), so consumers can
// switch on it like a tagged union.
type DomainEvent interface {
	// Topic returns the publish topic for this event kind.
	Topic() string
	// AggregateID returns the id of the aggregate the event belongs to.
	AggregateID() string
	// OccurredOn returns the timestamp captured when the event was created.
	OccurredOn() time.Time
}
