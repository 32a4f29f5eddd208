package models

import (
	"fmt"
	"strings"
	"time"

	domain "github.com/ghuser/invoicing/services/invoicing/domain"
	"github.com/ghuser/invoicing/services/invoicing/domain/events"
)

// Invoice is the aggregate root for this bounded context. It owns its line
// items, drives the draft → issued → overdue/paid/voided lifecycle, and
// records a domain event for every transition.
//
// Invoice values are immutable snapshots: every transition returns a new
// Invoice and leaves the receiver (and all prior snapshots) untouched, so
// multiple readers can safely hold references to different snapshots of the
// same logical invoice.
type Invoice struct {
	id       string
	currency string
	items    []InvoiceItem
	status   InvoiceStatus
	issuedAt *time.Time
	dueAt    *time.Time
	events   []events.DomainEvent
}

// NewInvoice constructs a draft invoice. The id and currency must be
// non-empty and every item must carry the invoice currency.
func NewInvoice(id, currency string, items []InvoiceItem) (Invoice, error) {
	if strings.TrimSpace(id) == "" {
		return Invoice{}, fmt.Errorf("%w: id is required", domain.ErrInvalidInvoiceData)
	}
	if strings.TrimSpace(currency) == "" {
		return Invoice{}, fmt.Errorf("%w: currency is required", domain.ErrInvalidInvoiceData)
	}
	for _, item := range items {
		if item.UnitPrice().Currency() != currency {
			return Invoice{}, fmt.Errorf("%w: item %s is in %s, invoice is in %s",
				domain.ErrInvalidInvoiceData, item.ID(), item.UnitPrice().Currency(), currency)
		}
	}
	return Invoice{
		id:       id,
		currency: currency,
		items:    append([]InvoiceItem(nil), items...),
		status:   StatusDraft,
	}, nil
}

// RestoreInvoice rebuilds an invoice from persisted state, bypassing the
// transition methods. It is the reconstruction path for the persistence
// layer: status and dates are restored exactly, the event log starts empty.
// Structural invariants (ids, currency match, known status) still apply.
func RestoreInvoice(id, currency string, items []InvoiceItem, status InvoiceStatus, issuedAt, dueAt *time.Time) (Invoice, error) {
	inv, err := NewInvoice(id, currency, items)
	if err != nil {
		return Invoice{}, err
	}
	if !status.Valid() {
		return Invoice{}, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInvoiceData, status)
	}
	inv.status = status
	inv.issuedAt = copyTime(issuedAt)
	inv.dueAt = copyTime(dueAt)
	return inv, nil
}

// Issue transitions a draft invoice with at least one item to issued,
// stamping the issue time and the given due date and appending an
// InvoiceIssued event.
func (inv Invoice) Issue(dueAt time.Time) (Invoice, error) {
	if inv.status != StatusDraft {
		return Invoice{}, domain.NewStateTransitionError(inv.status.String(), "issue")
	}
	if len(inv.items) == 0 {
		return Invoice{}, fmt.Errorf("%w: cannot issue invoice with no items", domain.ErrInvalidInvoiceData)
	}
	if dueAt.IsZero() {
		return Invoice{}, fmt.Errorf("%w: due date is required", domain.ErrInvalidInvoiceData)
	}

	now := time.Now().UTC()
	next := inv.snapshot()
	next.status = StatusIssued
	next.issuedAt = &now
	next.dueAt = &dueAt
	next.events = append(next.events, events.NewInvoiceIssued(inv.id, now, dueAt))
	return next, nil
}

// MarkAsPaid transitions an issued or overdue invoice to paid, appending an
// InvoicePaid event. Paid is terminal: a paid invoice cannot be voided.
func (inv Invoice) MarkAsPaid() (Invoice, error) {
	if inv.status != StatusIssued && inv.status != StatusOverdue {
		return Invoice{}, domain.NewStateTransitionError(inv.status.String(), "pay")
	}
	next := inv.snapshot()
	next.status = StatusPaid
	next.events = append(next.events, events.NewInvoicePaid(inv.id, time.Now().UTC()))
	return next, nil
}

// MarkAsOverdue transitions an issued invoice to overdue, appending an
// InvoiceOverdue event.
func (inv Invoice) MarkAsOverdue() (Invoice, error) {
	if inv.status != StatusIssued {
		return Invoice{}, domain.NewStateTransitionError(inv.status.String(), "mark as overdue")
	}
	next := inv.snapshot()
	next.status = StatusOverdue
	next.events = append(next.events, events.NewInvoiceOverdue(inv.id, time.Now().UTC()))
	return next, nil
}

// Void transitions any non-paid invoice to voided, appending an
// InvoiceVoided event. Voiding an already-voided invoice succeeds again and
// appends another event; callers relying on exactly-once voiding must check
// the status first.
func (inv Invoice) Void() (Invoice, error) {
	if inv.status == StatusPaid {
		return Invoice{}, domain.NewStateTransitionError(inv.status.String(), "void")
	}
	next := inv.snapshot()
	next.status = StatusVoided
	next.events = append(next.events, events.NewInvoiceVoided(inv.id, time.Now().UTC()))
	return next, nil
}

// Total sums all item subtotals in the invoice currency.
func (inv Invoice) Total() Money {
	total := Money{amount: 0, currency: inv.currency}
	for _, item := range inv.items {
		// Items were currency-checked at construction, so Add cannot fail.
		total = Money{amount: total.amount + item.Subtotal().amount, currency: inv.currency}
	}
	return total
}

// ID returns the immutable invoice identity.
func (inv Invoice) ID() string {
	return inv.id
}

// Currency returns the immutable invoice currency.
func (inv Invoice) Currency() string {
	return inv.currency
}

// Status returns the current lifecycle state.
func (inv Invoice) Status() InvoiceStatus {
	return inv.status
}

// IssuedAt returns the issue timestamp, or nil before issuing.
func (inv Invoice) IssuedAt() *time.Time {
	return copyTime(inv.issuedAt)
}

// DueAt returns the due date, or nil before issuing.
func (inv Invoice) DueAt() *time.Time {
	return copyTime(inv.dueAt)
}

// Items returns a defensive copy of the line items in insertion order.
func (inv Invoice) Items() []InvoiceItem {
	return append([]InvoiceItem(nil), inv.items...)
}

// Events returns a defensive copy of the events accumulated across this
// aggregate's in-memory lifetime since the last reload.
func (inv Invoice) Events() []events.DomainEvent {
	return append([]events.DomainEvent(nil), inv.events...)
}

// snapshot clones the invoice with fresh backing slices so the returned
// value shares no mutable state with the receiver.
func (inv Invoice) snapshot() Invoice {
	return Invoice{
		id:       inv.id,
		currency: inv.currency,
		items:    append([]InvoiceItem(nil), inv.items...),
		status:   inv.status,
		issuedAt: copyTime(inv.issuedAt),
		dueAt:    copyTime(inv.dueAt),
		events:   append([]events.DomainEvent(nil), inv.events...),
	}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
