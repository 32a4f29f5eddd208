package models

// InvoiceStatus is the lifecycle state of an invoice. Transitions happen only
// through the Invoice methods; the stored values match the wire/database form.
type InvoiceStatus string

const (
	StatusDraft   InvoiceStatus = "DRAFT"
	StatusIssued  InvoiceStatus = "ISSUED"
	StatusOverdue InvoiceStatus = "OVERDUE"
	StatusPaid    InvoiceStatus = "PAID"
	StatusVoided  InvoiceStatus = "VOIDED"
)

// String returns the underlying status value.
func (s InvoiceStatus) String() string {
	return string(s)
}

// Valid reports whether s is one of the known lifecycle states.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusIssued, StatusOverdue, StatusPaid, StatusVoided:
		return true
	}
	return false
}
