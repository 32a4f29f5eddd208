package repositories

import (
	"context"

	"github.com/ghuser/invoicing/services/invoicing/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// ClientRepository is the persistence port for the Client aggregate.
type ClientRepository interface {
	Save(ctx context.Context, client models.Client) error

	// GetByID returns ErrClientNotFound when no client has the given id.
	GetByID(ctx context.Context, id string) (models.Client, error)

	// List retrieves a page of clients plus the total count (ignoring pagination).
	List(ctx context.Context, opts QueryOpts) ([]models.Client, int, error)
}
