package services

import (
	"fmt"
	"strings"
	"time"

	domain "github.com/ghuser/invoicing/services/invoicing/domain"
)

// CreateInvoiceItem is one line of a CreateInvoiceCommand.
type CreateInvoiceItem struct {
	ID              string
	Description     string
	Quantity        int
	UnitPriceAmount int64
}

// CreateInvoiceCommand requests creation of a new draft invoice.
type CreateInvoiceCommand struct {
	InvoiceID string
	Currency  string
	Items     []CreateInvoiceItem
}

// NewCreateInvoiceCommand validates the required fields and returns the command.
func NewCreateInvoiceCommand(invoiceID, currency string, items []CreateInvoiceItem) (CreateInvoiceCommand, error) {
	if strings.TrimSpace(invoiceID) == "" {
		return CreateInvoiceCommand{}, fmt.Errorf("%w: invoice id is required", domain.ErrInvalidInvoiceData)
	}
	if strings.TrimSpace(currency) == "" {
		return CreateInvoiceCommand{}, fmt.Errorf("%w: currency is required", domain.ErrInvalidInvoiceData)
	}
	if len(items) == 0 {
		return CreateInvoiceCommand{}, fmt.Errorf("%w: items cannot be empty", domain.ErrInvalidInvoiceData)
	}
	return CreateInvoiceCommand{InvoiceID: invoiceID, Currency: currency, Items: items}, nil
}

// IssueInvoiceCommand requests the draft → issued transition. IssueAt
// defaults to the current time when left zero; the due date is derived from
// it by the service.
type IssueInvoiceCommand struct {
	InvoiceID string
	IssueAt   time.Time
}

// NewIssueInvoiceCommand validates the required fields and returns the command.
func NewIssueInvoiceCommand(invoiceID string, issueAt time.Time) (IssueInvoiceCommand, error) {
	if strings.TrimSpace(invoiceID) == "" {
		return IssueInvoiceCommand{}, fmt.Errorf("%w: invoice id is required", domain.ErrInvalidInvoiceData)
	}
	if issueAt.IsZero() {
		issueAt = time.Now().UTC()
	}
	return IssueInvoiceCommand{InvoiceID: invoiceID, IssueAt: issueAt}, nil
}

// PayInvoiceCommand requests the issued/overdue → paid transition.
type PayInvoiceCommand struct {
	InvoiceID string
}

// NewPayInvoiceCommand validates the required fields and returns the command.
func NewPayInvoiceCommand(invoiceID string) (PayInvoiceCommand, error) {
	if strings.TrimSpace(invoiceID) == "" {
		return PayInvoiceCommand{}, fmt.Errorf("%w: invoice id is required", domain.ErrInvalidInvoiceData)
	}
	return PayInvoiceCommand{InvoiceID: invoiceID}, nil
}

// MarkAsOverdueCommand requests the issued → overdue transition.
type MarkAsOverdueCommand struct {
	InvoiceID string
}

// NewMarkAsOverdueCommand validates the required fields and returns the command.
func NewMarkAsOverdueCommand(invoiceID string) (MarkAsOverdueCommand, error) {
	if strings.TrimSpace(invoiceID) == "" {
		return MarkAsOverdueCommand{}, fmt.Errorf("%w: invoice id is required", domain.ErrInvalidInvoiceData)
	}
	return MarkAsOverdueCommand{InvoiceID: invoiceID}, nil
}

// VoidInvoiceCommand requests a transition to voided.
type VoidInvoiceCommand struct {
	InvoiceID string
}

// NewVoidInvoiceCommand validates the required fields and returns the command.
func NewVoidInvoiceCommand(invoiceID string) (VoidInvoiceCommand, error) {
	if strings.TrimSpace(invoiceID) == "" {
		return VoidInvoiceCommand{}, fmt.Errorf("%w: invoice id is required", domain.ErrInvalidInvoiceData)
	}
	return VoidInvoiceCommand{InvoiceID: invoiceID}, nil
}

// CreateClientCommand requests registration of a new client.
type CreateClientCommand struct {
	ClientID string
	Name     string
	Email    string
	Phone    string
	Address  string
	TaxID    string
}

// NewCreateClientCommand validates the required fields and returns the command.
func NewCreateClientCommand(clientID, name, email string) (CreateClientCommand, error) {
	if strings.TrimSpace(clientID) == "" {
		return CreateClientCommand{}, fmt.Errorf("%w: client id is required", domain.ErrInvalidClientData)
	}
	if strings.TrimSpace(name) == "" {
		return CreateClientCommand{}, fmt.Errorf("%w: name is required", domain.ErrInvalidClientData)
	}
	if strings.TrimSpace(email) == "" {
		return CreateClientCommand{}, fmt.Errorf("%w: email is required", domain.ErrInvalidClientData)
	}
	return CreateClientCommand{ClientID: clientID, Name: name, Email: email}, nil
}

// UpdateClientCommand requests a change to a client's contact details.
type UpdateClientCommand struct {
	ClientID string
	Name     string
	Email    string
	Phone    string
	Address  string
	TaxID    string
}

// NewUpdateClientCommand validates the required fields and returns the command.
func NewUpdateClientCommand(clientID, name, email string) (UpdateClientCommand, error) {
	if strings.TrimSpace(clientID) == "" {
		return UpdateClientCommand{}, fmt.Errorf("%w: client id is required", domain.ErrInvalidClientData)
	}
	if strings.TrimSpace(name) == "" {
		return UpdateClientCommand{}, fmt.Errorf("%w: name is required", domain.ErrInvalidClientData)
	}
	if strings.TrimSpace(email) == "" {
		return UpdateClientCommand{}, fmt.Errorf("%w: email is required", domain.ErrInvalidClientData)
	}
	return UpdateClientCommand{ClientID: clientID, Name: name, Email: email}, nil
}

// ArchiveClientCommand requests a client soft delete.
type ArchiveClientCommand struct {
	ClientID string
}

// NewArchiveClientCommand validates the required fields and returns the command.
func NewArchiveClientCommand(clientID string) (ArchiveClientCommand, error) {
	if strings.TrimSpace(clientID) == "" {
		return ArchiveClientCommand{}, fmt.Errorf("%w: client id is required", domain.ErrInvalidClientData)
	}
	return ArchiveClientCommand{ClientID: clientID}, nil
}
