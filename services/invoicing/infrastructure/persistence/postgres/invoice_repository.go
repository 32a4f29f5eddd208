// Package postgres implements the invoicing repository ports against
// PostgreSQL. Aggregates are stored as field snapshots (invoice row + item
// rows); the domain event log is transient and never persisted.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ghuser/invoicing/pkg/database"
	domain "github.com/ghuser/invoicing/services/invoicing/domain"
	"github.com/ghuser/invoicing/services/invoicing/domain/models"
)

// InvoiceRepository implements repositories.InvoiceRepository against PostgreSQL.
type InvoiceRepository struct {
	db *database.Database
}

// NewInvoiceRepository returns an InvoiceRepository backed by the given pool.
func NewInvoiceRepository(db *database.Database) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Save upserts the invoice snapshot and replaces its items in one transaction.
func (r *InvoiceRepository) Save(ctx context.Context, invoice models.Invoice) error {
	return r.db.WithTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO invoices (id, currency, status, issued_at, due_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, now())
			ON CONFLICT (id) DO UPDATE
			SET status = EXCLUDED.status,
			    issued_at = EXCLUDED.issued_at,
			    due_at = EXCLUDED.due_at,
			    updated_at = now()`,
			invoice.ID(), invoice.Currency(), invoice.Status().String(),
			invoice.IssuedAt(), invoice.DueAt(),
		)
		if err != nil {
			return fmt.Errorf("upsert invoice: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1`, invoice.ID()); err != nil {
			return fmt.Errorf("clear invoice items: %w", err)
		}

		for pos, item := range invoice.Items() {
			_, err := tx.Exec(ctx, `
				INSERT INTO invoice_items (invoice_id, id, description, quantity, unit_price_amount, currency, position)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				invoice.ID(), item.ID(), item.Description(), item.Quantity(),
				item.UnitPrice().Amount(), item.UnitPrice().Currency(), pos,
			)
			if err != nil {
				return fmt.Errorf("insert invoice item %s: %w", item.ID(), err)
			}
		}
		return nil
	})
}

// GetByID loads an invoice and rebuilds the aggregate with its full state
// (status and dates included) through the domain reconstruction path.
// Returns ErrInvoiceNotFound when no row matches.
func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (models.Invoice, error) {
	var (
		currency string
		status   string
		issuedAt *time.Time
		dueAt    *time.Time
	)
	err := r.db.Pool().QueryRow(ctx, `
		SELECT currency, status, issued_at, due_at
		FROM invoices WHERE id = $1`, id,
	).Scan(&currency, &status, &issuedAt, &dueAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Invoice{}, domain.ErrInvoiceNotFound
		}
		return models.Invoice{}, fmt.Errorf("query invoice: %w", err)
	}

	items, err := r.loadItems(ctx, id)
	if err != nil {
		return models.Invoice{}, err
	}

	invoice, err := models.RestoreInvoice(id, currency, items, models.InvoiceStatus(status), issuedAt, dueAt)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("restore invoice %s: %w", id, err)
	}
	return invoice, nil
}

// FindIssuedDueBefore returns the ids of ISSUED invoices due strictly before t.
func (r *InvoiceRepository) FindIssuedDueBefore(ctx context.Context, t time.Time) ([]string, error) {
	rows, err := r.db.Pool().Query(ctx, `
		SELECT id FROM invoices
		WHERE status = $1 AND due_at < $2
		ORDER BY due_at`, models.StatusIssued.String(), t,
	)
	if err != nil {
		return nil, fmt.Errorf("query due invoices: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan invoice id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate due invoices: %w", err)
	}
	return ids, nil
}

// Exists reports whether an invoice with the given id exists.
func (r *InvoiceRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.Pool().QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM invoices WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check invoice exists: %w", err)
	}
	return exists, nil
}

func (r *InvoiceRepository) loadItems(ctx context.Context, invoiceID string) ([]models.InvoiceItem, error) {
	rows, err := r.db.Pool().Query(ctx, `
		SELECT id, description, quantity, unit_price_amount, currency
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY position`, invoiceID,
	)
	if err != nil {
		return nil, fmt.Errorf("query invoice items: %w", err)
	}
	defer rows.Close()

	var items []models.InvoiceItem
	for rows.Next() {
		var (
			id, description, currency string
			quantity                  int
			unitPriceAmount           int64
		)
		if err := rows.Scan(&id, &description, &quantity, &unitPriceAmount, &currency); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		unitPrice, err := models.NewMoney(unitPriceAmount, currency)
		if err != nil {
			return nil, fmt.Errorf("restore item %s price: %w", id, err)
		}
		item, err := models.NewInvoiceItem(id, unitPrice, quantity, description)
		if err != nil {
			return nil, fmt.Errorf("restore item %s: %w", id, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoice items: %w", err)
	}
	return items, nil
}
