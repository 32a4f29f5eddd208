package models

import (
	"strings"

	domain "github.com/ghuser/invoicing/services/invoicing/domain"
)

// InvoiceItem is an immutable line item on an invoice. It is owned by the
// invoice that contains it and is never persisted or referenced on its own.
type InvoiceItem struct {
	id          string
	unitPrice   Money
	quantity    int
	description string
}

// NewInvoiceItem constructs a valid InvoiceItem or returns an error if
// constraints are violated. The unit price must be a constructed Money value.
func NewInvoiceItem(id string, unitPrice Money, quantity int, description string) (InvoiceItem, error) {
	if strings.TrimSpace(id) == "" {
		return InvoiceItem{}, domain.ErrInvalidItemID
	}
	if unitPrice.Currency() == "" {
		return InvoiceItem{}, domain.ErrInvalidUnitPrice
	}
	if quantity <= 0 {
		return InvoiceItem{}, domain.ErrInvalidQuantity
	}
	if strings.TrimSpace(description) == "" {
		return InvoiceItem{}, domain.ErrInvalidDescription
	}
	return InvoiceItem{
		id:          id,
		unitPrice:   unitPrice,
		quantity:    quantity,
		description: description,
	}, nil
}

// ID returns the item id, unique within its invoice.
func (i InvoiceItem) ID() string {
	return i.id
}

// UnitPrice returns the per-unit price.
func (i InvoiceItem) UnitPrice() Money {
	return i.unitPrice
}

// Quantity returns the number of units.
func (i InvoiceItem) Quantity() int {
	return i.quantity
}

// Description returns the human-readable line description.
func (i InvoiceItem) Description() string {
	return i.description
}

// Subtotal returns unit price times quantity. The multiplication is
// numerically identical to accumulating the unit price quantity times.
func (i InvoiceItem) Subtotal() Money {
	return Money{
		amount:   i.unitPrice.amount * int64(i.quantity),
		currency: i.unitPrice.currency,
	}
}

// Equals reports structural equality across all four fields.
func (i InvoiceItem) Equals(other InvoiceItem) bool {
	return i.id == other.id &&
		i.unitPrice.Equals(other.unitPrice) &&
		i.quantity == other.quantity &&
		i.description == other.description
}
