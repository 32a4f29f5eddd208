package models

import (
	"fmt"
	"regexp"
	"strings"

	domain "github.com/ghuser/invoicing/services/invoicing/domain"
	"github.com/ghuser/invoicing/services/invoicing/domain/events"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactInfo groups the optional contact fields of a client.
type ContactInfo struct {
	Phone   string
	Address string
	TaxID   string
}

// Client is the aggregate root for billing recipients. Like Invoice it uses
// immutable-snapshot transitions: every operation returns a new Client.
type Client struct {
	id      string
	name    string
	email   string
	contact ContactInfo
	status  ClientStatus
	events  []events.DomainEvent
}

// NewClient constructs an active client and records a ClientCreated event.
func NewClient(id, name, email string, contact ContactInfo) (Client, error) {
	if err := validateClientFields(id, name, email); err != nil {
		return Client{}, err
	}
	return Client{
		id:      id,
		name:    name,
		email:   email,
		contact: contact,
		status:  ClientActive,
		events:  []events.DomainEvent{events.NewClientCreated(id, name, email)},
	}, nil
}

// RestoreClient rebuilds a client from persisted state with an empty event
// log. It is the reconstruction path for the persistence layer.
func RestoreClient(id, name, email string, contact ContactInfo, status ClientStatus) (Client, error) {
	if err := validateClientFields(id, name, email); err != nil {
		return Client{}, err
	}
	if !status.Valid() {
		return Client{}, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidClientData, status)
	}
	return Client{
		id:      id,
		name:    name,
		email:   email,
		contact: contact,
		status:  status,
	}, nil
}

// UpdateContactInfo replaces the client's name, email, and contact details.
// Archived clients cannot be updated.
func (c Client) UpdateContactInfo(name, email string, contact ContactInfo) (Client, error) {
	if c.status == ClientArchived {
		return Client{}, domain.ErrClientArchived
	}
	if err := validateClientFields(c.id, name, email); err != nil {
		return Client{}, err
	}
	next := c.snapshot()
	next.name = name
	next.email = email
	next.contact = contact
	next.events = append(next.events, events.NewClientUpdated(c.id))
	return next, nil
}

// Archive soft-deletes the client. Archiving twice is rejected.
func (c Client) Archive() (Client, error) {
	if c.status == ClientArchived {
		return Client{}, domain.NewStateTransitionError(c.status.String(), "archive")
	}
	next := c.snapshot()
	next.status = ClientArchived
	next.events = append(next.events, events.NewClientArchived(c.id))
	return next, nil
}

// Activate returns an inactive client to active. Archived clients stay archived.
func (c Client) Activate() (Client, error) {
	if c.status != ClientInactive {
		return Client{}, domain.NewStateTransitionError(c.status.String(), "activate")
	}
	next := c.snapshot()
	next.status = ClientActive
	next.events = append(next.events, events.NewClientUpdated(c.id))
	return next, nil
}

// Deactivate suspends an active client.
func (c Client) Deactivate() (Client, error) {
	if c.status != ClientActive {
		return Client{}, domain.NewStateTransitionError(c.status.String(), "deactivate")
	}
	next := c.snapshot()
	next.status = ClientInactive
	next.events = append(next.events, events.NewClientUpdated(c.id))
	return next, nil
}

// ID returns the immutable client identity.
func (c Client) ID() string { return c.id }

// Name returns the client's display name.
func (c Client) Name() string { return c.name }

// Email returns the client's billing email.
func (c Client) Email() string { return c.email }

// Contact returns the optional contact fields.
func (c Client) Contact() ContactInfo { return c.contact }

// Status returns the current lifecycle state.
func (c Client) Status() ClientStatus { return c.status }

// Events returns a defensive copy of the accumulated events.
func (c Client) Events() []events.DomainEvent {
	return append([]events.DomainEvent(nil), c.events...)
}

func (c Client) snapshot() Client {
	next := c
	next.events = append([]events.DomainEvent(nil), c.events...)
	return next
}

func validateClientFields(id, name, email string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", domain.ErrInvalidClientData)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidClientData)
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", domain.ErrInvalidClientData)
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", domain.ErrInvalidClientData)
	}
	return nil
}
