package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ghuser/invoicing/pkg/database"
	domain "github.com/ghuser/invoicing/services/invoicing/domain"
	"github.com/ghuser/invoicing/services/invoicing/domain/models"
	"github.com/ghuser/invoicing/services/invoicing/domain/repositories"
)

// ClientRepository implements repositories.ClientRepository against PostgreSQL.
type ClientRepository struct {
	db *database.Database
}

// NewClientRepository returns a ClientRepository backed by the given pool.
func NewClientRepository(db *database.Database) *ClientRepository {
	return &ClientRepository{db: db}
}

// Save upserts the client snapshot.
func (r *ClientRepository) Save(ctx context.Context, client models.Client) error {
	contact := client.Contact()
	_, err := r.db.Pool().Exec(ctx, `
		INSERT INTO clients (id, name, email, phone, address, tax_id, status, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    email = EXCLUDED.email,
		    phone = EXCLUDED.phone,
		    address = EXCLUDED.address,
		    tax_id = EXCLUDED.tax_id,
		    status = EXCLUDED.status,
		    updated_at = now()`,
		client.ID(), client.Name(), client.Email(),
		contact.Phone, contact.Address, contact.TaxID, client.Status().String(),
	)
	if err != nil {
		return fmt.Errorf("upsert client: %w", err)
	}
	return nil
}

// GetByID loads a client. Returns ErrClientNotFound when no row matches.
func (r *ClientRepository) GetByID(ctx context.Context, id string) (models.Client, error) {
	var (
		name, email, status  string
		phone, address, taxID string
	)
	err := r.db.Pool().QueryRow(ctx, `
		SELECT name, email, phone, address, tax_id, status
		FROM clients WHERE id = $1`, id,
	).Scan(&name, &email, &phone, &address, &taxID, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Client{}, domain.ErrClientNotFound
		}
		return models.Client{}, fmt.Errorf("query client: %w", err)
	}

	client, err := models.RestoreClient(id, name, email, models.ContactInfo{
		Phone:   phone,
		Address: address,
		TaxID:   taxID,
	}, models.ClientStatus(status))
	if err != nil {
		return models.Client{}, fmt.Errorf("restore client %s: %w", id, err)
	}
	return client, nil
}

// List retrieves a page of clients ordered by name plus the total count.
func (r *ClientRepository) List(ctx context.Context, opts repositories.QueryOpts) ([]models.Client, int, error) {
	rows, err := r.db.Pool().Query(ctx, `
		SELECT id, name, email, phone, address, tax_id, status
		FROM clients
		ORDER BY name
		LIMIT $1 OFFSET $2`, opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query clients: %w", err)
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		var id, name, email, phone, address, taxID, status string
		if err := rows.Scan(&id, &name, &email, &phone, &address, &taxID, &status); err != nil {
			return nil, 0, fmt.Errorf("scan client: %w", err)
		}
		client, err := models.RestoreClient(id, name, email, models.ContactInfo{
			Phone:   phone,
			Address: address,
			TaxID:   taxID,
		}, models.ClientStatus(status))
		if err != nil {
			return nil, 0, fmt.Errorf("restore client %s: %w", id, err)
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate clients: %w", err)
	}

	var total int
	if err := r.db.Pool().QueryRow(ctx, `SELECT count(*) FROM clients`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count clients: %w", err)
	}
	return clients, total, nil
}
