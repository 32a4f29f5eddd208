package services

import (
	"context"
	"fmt"

	domain "github.com/ghuser/invoicing/services/invoicing/domain"
	"github.com/ghuser/invoicing/services/invoicing/domain/models"
	"github.com/ghuser/invoicing/services/invoicing/domain/repositories"
)

// ClientService orchestrates the client lifecycle with the same
// load → transition → save → publish pattern as InvoiceService.
type ClientService struct {
	repo      repositories.ClientRepository
	publisher repositories.EventPublisher
}

// NewClientService returns a ClientService wired with the given ports.
func NewClientService(repo repositories.ClientRepository, publisher repositories.EventPublisher) *ClientService {
	return &ClientService{repo: repo, publisher: publisher}
}

// Create registers a new active client.
func (s *ClientService) Create(ctx context.Context, cmd CreateClientCommand) (ClientResponse, error) {
	client, err := models.NewClient(cmd.ClientID, cmd.Name, cmd.Email, models.ContactInfo{
		Phone:   cmd.Phone,
		Address: cmd.Address,
		TaxID:   cmd.TaxID,
	})
	if err != nil {
		return ClientResponse{}, err
	}
	return s.persistAndPublish(ctx, client)
}

// Update replaces a client's contact details.
func (s *ClientService) Update(ctx context.Context, cmd UpdateClientCommand) (ClientResponse, error) {
	client, err := s.repo.GetByID(ctx, cmd.ClientID)
	if err != nil {
		return ClientResponse{}, fmt.Errorf("get client: %w", err)
	}
	updated, err := client.UpdateContactInfo(cmd.Name, cmd.Email, models.ContactInfo{
		Phone:   cmd.Phone,
		Address: cmd.Address,
		TaxID:   cmd.TaxID,
	})
	if err != nil {
		return ClientResponse{}, err
	}
	return s.persistAndPublish(ctx, updated)
}

// Archive soft-deletes a client.
func (s *ClientService) Archive(ctx context.Context, cmd ArchiveClientCommand) (ClientResponse, error) {
	client, err := s.repo.GetByID(ctx, cmd.ClientID)
	if err != nil {
		return ClientResponse{}, fmt.Errorf("get client: %w", err)
	}
	archived, err := client.Archive()
	if err != nil {
		return ClientResponse{}, err
	}
	return s.persistAndPublish(ctx, archived)
}

// Deactivate suspends an active client.
func (s *ClientService) Deactivate(ctx context.Context, clientID string) (ClientResponse, error) {
	client, err := s.repo.GetByID(ctx, clientID)
	if err != nil {
		return ClientResponse{}, fmt.Errorf("get client: %w", err)
	}
	deactivated, err := client.Deactivate()
	if err != nil {
		return ClientResponse{}, err
	}
	return s.persistAndPublish(ctx, deactivated)
}

// Activate returns an inactive client to active.
func (s *ClientService) Activate(ctx context.Context, clientID string) (ClientResponse, error) {
	client, err := s.repo.GetByID(ctx, clientID)
	if err != nil {
		return ClientResponse{}, fmt.Errorf("get client: %w", err)
	}
	activated, err := client.Activate()
	if err != nil {
		return ClientResponse{}, err
	}
	return s.persistAndPublish(ctx, activated)
}

// GetByID retrieves a single client projection.
func (s *ClientService) GetByID(ctx context.Context, clientID string) (ClientResponse, error) {
	client, err := s.repo.GetByID(ctx, clientID)
	if err != nil {
		return ClientResponse{}, fmt.Errorf("get client: %w", err)
	}
	return toClientResponse(client), nil
}

// List returns a page of client projections plus the total count.
func (s *ClientService) List(ctx context.Context, opts repositories.QueryOpts) ([]ClientResponse, int, error) {
	clients, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list clients: %w", err)
	}
	resps := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		resps = append(resps, toClientResponse(c))
	}
	return resps, total, nil
}

func (s *ClientService) persistAndPublish(ctx context.Context, client models.Client) (ClientResponse, error) {
	if err := s.repo.Save(ctx, client); err != nil {
		return ClientResponse{}, fmt.Errorf("save client: %w", err)
	}
	if err := s.publisher.PublishAll(ctx, client.Events()); err != nil {
		return ClientResponse{}, fmt.Errorf("%w: %w", domain.ErrEventPublishing, err)
	}
	return toClientResponse(client), nil
}
