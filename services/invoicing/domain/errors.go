package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the invoicing domain. Use errors.Is() to check these.
var (
	// ErrInvalidAmount indicates a monetary amount is negative.
	ErrInvalidAmount = errors.New("amount must be zero or greater")

	// ErrInvalidCurrency indicates an empty currency tag.
	ErrInvalidCurrency = errors.New("currency is required")

	// ErrCurrencyMismatch indicates an operation across two different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrInsufficientFunds indicates a subtraction that would go below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidItemID indicates an invoice item with an empty id.
	ErrInvalidItemID = errors.New("item id is required")

	// ErrInvalidUnitPrice indicates an invoice item without a unit price.
	ErrInvalidUnitPrice = errors.New("unit price is required")

	// ErrInvalidQuantity indicates a zero or negative item quantity.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrInvalidDescription indicates an invoice item with an empty description.
	ErrInvalidDescription = errors.New("description is required")

	// ErrInvalidInvoiceData indicates the invoice constructor rejected its input.
	ErrInvalidInvoiceData = errors.New("invalid invoice data")

	// ErrInvalidStateTransition indicates a guarded state-machine operation
	// was attempted from a state that does not allow it.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrInvoiceNotFound indicates the requested invoice does not exist.
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrInvoiceAlreadyExists indicates a create with an id already in use.
	ErrInvoiceAlreadyExists = errors.New("invoice already exists")

	// ErrInvalidClientData indicates the client constructor rejected its input.
	ErrInvalidClientData = errors.New("invalid client data")

	// ErrClientNotFound indicates the requested client does not exist.
	ErrClientNotFound = errors.New("client not found")

	// ErrClientArchived indicates a modification was attempted on an archived client.
	ErrClientArchived = errors.New("client is archived")

	// ErrEventPublishing indicates domain events could not be delivered after
	// the aggregate was already persisted. The state change is committed.
	ErrEventPublishing = errors.New("event publishing failed")
)

// StateTransitionError carries the aggregate's current status and the
// operation that was rejected. It matches ErrInvalidStateTransition under
// errors.Is so callers can map it without knowing the concrete type.
type StateTransitionError struct {
	CurrentStatus string
	Operation     string
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("cannot %s invoice in %s state", e.Operation, e.CurrentStatus)
}

func (e *StateTransitionError) Is(target error) bool {
	return target == ErrInvalidStateTransition
}

// NewStateTransitionError builds the guard-failure error for a rejected
// state-machine operation.
func NewStateTransitionError(currentStatus, operation string) error {
	return &StateTransitionError{CurrentStatus: currentStatus, Operation: operation}
}
