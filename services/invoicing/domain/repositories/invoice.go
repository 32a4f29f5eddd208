package repositories

import (
	"context"
	"time"

	"github.com/ghuser/invoicing/services/invoicing/domain/events"
	"github.com/ghuser/invoicing/services/invoicing/domain/models"
)

// InvoiceRepository is the persistence port for the Invoice aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Save persists the aggregate's current field values; GetByID must
// reconstruct an equivalent invoice exactly (id, currency, items, status,
// issuedAt, dueAt). The event log is transient and is not reloaded.
type InvoiceRepository interface {
	Save(ctx context.Context, invoice models.Invoice) error

	// GetByID returns ErrInvoiceNotFound when no invoice has the given id.
	GetByID(ctx context.Context, id string) (models.Invoice, error)

	// FindIssuedDueBefore returns the ids of ISSUED invoices whose due date
	// is strictly before t. Used by the overdue sweep.
	FindIssuedDueBefore(ctx context.Context, t time.Time) ([]string, error)

	// Exists reports whether an invoice with the given id exists.
	Exists(ctx context.Context, id string) (bool, error)
}

// EventPublisher is the event-delivery port. PublishAll delivers a batch of
// domain events after a successful save; delivery is at-least-once and a
// failure must not roll back the already-persisted state change.
type EventPublisher interface {
	PublishAll(ctx context.Context, evts []events.DomainEvent) error
}
