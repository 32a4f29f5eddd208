package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics for client lifecycle events.
const (
	TopicClientCreated  = "client.created"
	TopicClientUpdated  = "client.updated"
	TopicClientArchived = "client.archived"
)

// ClientCreated records that a new client was registered.
type ClientCreated struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ClientID   string    `json:"client_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewClientCreated stamps a new ClientCreated event with the current time.
func NewClientCreated(clientID, name, email string) ClientCreated {
	return ClientCreated{
		EventID:    uuid.New(),
		Version:    1,
		ClientID:   clientID,
		Name:       name,
		Email:      email,
		OccurredAt: time.Now().UTC(),
	}
}

func (e ClientCreated) Topic() string         { return TopicClientCreated }
func (e ClientCreated) AggregateID() string   { return e.ClientID }
func (e ClientCreated) OccurredOn() time.Time { return e.OccurredAt }

// ClientUpdated records a change to a client's contact details or status.
type ClientUpdated struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ClientID   string    `json:"client_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewClientUpdated stamps a new ClientUpdated event with the current time.
func NewClientUpdated(clientID string) ClientUpdated {
	return ClientUpdated{
		EventID:    uuid.New(),
		Version:    1,
		ClientID:   clientID,
		OccurredAt: time.Now().UTC(),
	}
}

func (e ClientUpdated) Topic() string         { return TopicClientUpdated }
func (e ClientUpdated) AggregateID() string   { return e.ClientID }
func (e ClientUpdated) OccurredOn() time.Time { return e.OccurredAt }

// ClientArchived records a client soft delete.
type ClientArchived struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ClientID   string    `json:"client_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewClientArchived stamps a new ClientArchived event with the current time.
func NewClientArchived(clientID string) ClientArchived {
	return ClientArchived{
		EventID:    uuid.New(),
		Version:    1,
		ClientID:   clientID,
		OccurredAt: time.Now().UTC(),
	}
}

func (e ClientArchived) Topic() string         { return TopicClientArchived }
func (e ClientArchived) AggregateID() string   { return e.ClientID }
func (e ClientArchived) OccurredOn() time.Time { return e.OccurredAt }
