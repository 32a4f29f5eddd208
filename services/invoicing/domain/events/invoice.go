package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics for invoice lifecycle events.
const (
	TopicInvoiceIssued  = "invoice.issued"
	TopicInvoicePaid    = "invoice.paid"
	TopicInvoiceOverdue = "invoice.overdue"
	TopicInvoiceVoided  = "invoice.voided"
)

// InvoiceIssued records that a draft invoice was issued with a due date.
type InvoiceIssued struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	InvoiceID  string    `json:"invoice_id"`
	IssuedAt   time.Time `json:"issued_at"`
	DueAt      time.Time `json:"due_at"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewInvoiceIssued stamps a new InvoiceIssued event with the current time.
func NewInvoiceIssued(invoiceID string, issuedAt, dueAt time.Time) InvoiceIssued {
	return InvoiceIssued{
		EventID:    uuid.New(),
		Version:    1,
		InvoiceID:  invoiceID,
		IssuedAt:   issuedAt,
		DueAt:      dueAt,
		OccurredAt: time.Now().UTC(),
	}
}

func (e InvoiceIssued) Topic() string         { return TopicInvoiceIssued }
func (e InvoiceIssued) AggregateID() string   { return e.InvoiceID }
func (e InvoiceIssued) OccurredOn() time.Time { return e.OccurredAt }

// InvoicePaid records that an issued or overdue invoice was paid.
type InvoicePaid struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	InvoiceID  string    `json:"invoice_id"`
	PaidAt     time.Time `json:"paid_at"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewInvoicePaid stamps a new InvoicePaid event with the current time.
func NewInvoicePaid(invoiceID string, paidAt time.Time) InvoicePaid {
	return InvoicePaid{
		EventID:    uuid.New(),
		Version:    1,
		InvoiceID:  invoiceID,
		PaidAt:     paidAt,
		OccurredAt: time.Now().UTC(),
	}
}

func (e InvoicePaid) Topic() string         { return TopicInvoicePaid }
func (e InvoicePaid) AggregateID() string   { return e.InvoiceID }
func (e InvoicePaid) OccurredOn() time.Time { return e.OccurredAt }

// InvoiceOverdue records that an issued invoice passed its due date unpaid.
type InvoiceOverdue struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	InvoiceID  string    `json:"invoice_id"`
	OverdueAt  time.Time `json:"overdue_at"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewInvoiceOverdue stamps a new InvoiceOverdue event with the current time.
func NewInvoiceOverdue(invoiceID string, overdueAt time.Time) InvoiceOverdue {
	return InvoiceOverdue{
		EventID:    uuid.New(),
		Version:    1,
		InvoiceID:  invoiceID,
		OverdueAt:  overdueAt,
		OccurredAt: time.Now().UTC(),
	}
}

func (e InvoiceOverdue) Topic() string         { return TopicInvoiceOverdue }
func (e InvoiceOverdue) AggregateID() string   { return e.InvoiceID }
func (e InvoiceOverdue) OccurredOn() time.Time { return e.OccurredAt }

// InvoiceVoided records that a non-paid invoice was voided.
type InvoiceVoided struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	InvoiceID  string    `json:"invoice_id"`
	VoidedAt   time.Time `json:"voided_at"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewInvoiceVoided stamps a new InvoiceVoided event with the current time.
func NewInvoiceVoided(invoiceID string, voidedAt time.Time) InvoiceVoided {
	return InvoiceVoided{
		EventID:    uuid.New(),
		Version:    1,
		InvoiceID:  invoiceID,
		VoidedAt:   voidedAt,
		OccurredAt: time.Now().UTC(),
	}
}

func (e InvoiceVoided) Topic() string         { return TopicInvoiceVoided }
func (e InvoiceVoided) AggregateID() string   { return e.InvoiceID }
func (e InvoiceVoided) OccurredOn() time.Time { return e.OccurredAt }
