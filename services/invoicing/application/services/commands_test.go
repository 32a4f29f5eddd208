package services

import (
	"errors"
	"testing"
	"time"

	domain "github.com/ghuser/invoicing/services/invoicing/domain"
)

func TestNewCreateInvoiceCommand(t *testing.T) {
	items := []CreateInvoiceItem{{ID: "line-1", Description: "Work", Quantity: 1, UnitPriceAmount: 100}}

	t.Run("valid", func(t *testing.T) {
		cmd, err := NewCreateInvoiceCommand("INV-1", "USD", items)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cmd.InvoiceID != "INV-1" || cmd.Currency != "USD" {
			t.Fatalf("unexpected command: %+v", cmd)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		if _, err := NewCreateInvoiceCommand("  ", "USD", items); !errors.Is(err, domain.ErrInvalidInvoiceData) {
			t.Fatalf("expected ErrInvalidInvoiceData, got %v", err)
		}
	})

	t.Run("blank currency", func(t *testing.T) {
		if _, err := NewCreateInvoiceCommand("INV-1", "", items); !errors.Is(err, domain.ErrInvalidInvoiceData) {
			t.Fatalf("expected ErrInvalidInvoiceData, got %v", err)
		}
	})

	t.Run("no items", func(t *testing.T) {
		if _, err := NewCreateInvoiceCommand("INV-1", "USD", nil); !errors.Is(err, domain.ErrInvalidInvoiceData) {
			t.Fatalf("expected ErrInvalidInvoiceData, got %v", err)
		}
	})
}

func TestNewIssueInvoiceCommand(t *testing.T) {
	t.Run("explicit issue date is kept", func(t *testing.T) {
		issueAt := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		cmd, err := NewIssueInvoiceCommand("INV-1", issueAt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cmd.IssueAt.Equal(issueAt) {
			t.Fatalf("expected %v, got %v", issueAt, cmd.IssueAt)
		}
	})

	t.Run("zero issue date defaults to now", func(t *testing.T) {
		before := time.Now().UTC()
		cmd, err := NewIssueInvoiceCommand("INV-1", time.Time{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cmd.IssueAt.Before(before) || cmd.IssueAt.After(time.Now().UTC()) {
			t.Fatalf("IssueAt not defaulted to now: %v", cmd.IssueAt)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		if _, err := NewIssueInvoiceCommand("", time.Now()); !errors.Is(err, domain.ErrInvalidInvoiceData) {
			t.Fatalf("expected ErrInvalidInvoiceData, got %v", err)
		}
	})
}

func TestTransitionCommands_RequireID(t *testing.T) {
	if _, err := NewPayInvoiceCommand(""); !errors.Is(err, domain.ErrInvalidInvoiceData) {
		t.Fatalf("pay: expected ErrInvalidInvoiceData, got %v", err)
	}
	if _, err := NewMarkAsOverdueCommand(" "); !errors.Is(err, domain.ErrInvalidInvoiceData) {
		t.Fatalf("overdue: expected ErrInvalidInvoiceData, got %v", err)
	}
	if _, err := NewVoidInvoiceCommand(""); !errors.Is(err, domain.ErrInvalidInvoiceData) {
		t.Fatalf("void: expected ErrInvalidInvoiceData, got %v", err)
	}
	if _, err := NewArchiveClientCommand(""); !errors.Is(err, domain.ErrInvalidClientData) {
		t.Fatalf("archive: expected ErrInvalidClientData, got %v", err)
	}
}

func TestNewCreateClientCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := NewCreateClientCommand("CLI-1", "Acme", "billing@acme.example")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cmd.ClientID != "CLI-1" {
			t.Fatalf("unexpected command: %+v", cmd)
		}
	})

	for _, tt := range []struct {
		name             string
		id, cname, email string
	}{
		{"blank id", "", "Acme", "a@b.example"},
		{"blank name", "CLI-1", "", "a@b.example"},
		{"blank email", "CLI-1", "Acme", "  "},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCreateClientCommand(tt.id, tt.cname, tt.email); !errors.Is(err, domain.ErrInvalidClientData) {
				t.Fatalf("expected ErrInvalidClientData, got %v", err)
			}
		})
	}
}
