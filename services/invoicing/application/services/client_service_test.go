package services

import (
	"context"
	"errors"
	"sort"
	"testing"

	domain "github.com/ghuser/invoicing/services/invoicing/domain"
	"github.com/ghuser/invoicing/services/invoicing/domain/events"
	"github.com/ghuser/invoicing/services/invoicing/domain/models"
	"github.com/ghuser/invoicing/services/invoicing/domain/repositories"
)

// fakeClientRepo is an in-memory ClientRepository.
type fakeClientRepo struct {
	clients map[string]models.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[string]models.Client)}
}

func (r *fakeClientRepo) Save(_ context.Context, client models.Client) error {
	r.clients[client.ID()] = client
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id string) (models.Client, error) {
	client, ok := r.clients[id]
	if !ok {
		return models.Client{}, domain.ErrClientNotFound
	}
	return client, nil
}

func (r *fakeClientRepo) List(_ context.Context, opts repositories.QueryOpts) ([]models.Client, int, error) {
	all := make([]models.Client, 0, len(r.clients))
	for _, c := range r.clients {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name() < all[j].Name() })

	total := len(all)
	if opts.Offset >= total {
		return nil, total, nil
	}
	end := min(opts.Offset+opts.Limit, total)
	return all[opts.Offset:end], total, nil
}

func newClientFixture(t *testing.T) (*ClientService, *fakeClientRepo, *fakePublisher) {
	t.Helper()
	repo := newFakeClientRepo()
	pub := &fakePublisher{}
	return NewClientService(repo, pub), repo, pub
}

func createClient(t *testing.T, svc *ClientService, id, name string) ClientResponse {
	t.Helper()
	cmd, err := NewCreateClientCommand(id, name, "billing@acme.example")
	if err != nil {
		t.Fatalf("NewCreateClientCommand: %v", err)
	}
	resp, err := svc.Create(context.Background(), cmd)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return resp
}

func TestClientService_Create(t *testing.T) {
	t.Run("persists an active client and publishes client.created", func(t *testing.T) {
		svc, repo, pub := newClientFixture(t)

		resp := createClient(t, svc, "CLI-1", "Acme")
		if resp.Status != "ACTIVE" {
			t.Fatalf("expected ACTIVE, got %s", resp.Status)
		}
		if _, ok := repo.clients["CLI-1"]; !ok {
			t.Fatal("client not persisted")
		}
		if len(pub.published) != 1 || pub.published[0].Topic() != events.TopicClientCreated {
			t.Fatalf("expected a single client.created event, got %v", pub.published)
		}
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		svc, _, _ := newClientFixture(t)

		cmd, err := NewCreateClientCommand("CLI-1", "Acme", "not-an-email")
		if err != nil {
			t.Fatalf("NewCreateClientCommand: %v", err)
		}
		if _, err := svc.Create(context.Background(), cmd); !errors.Is(err, domain.ErrInvalidClientData) {
			t.Fatalf("expected ErrInvalidClientData, got %v", err)
		}
	})
}

func TestClientService_Update(t *testing.T) {
	t.Run("replaces contact details", func(t *testing.T) {
		svc, repo, _ := newClientFixture(t)
		createClient(t, svc, "CLI-1", "Acme")

		cmd, err := NewUpdateClientCommand("CLI-1", "Acme Corp", "accounts@acme.example")
		if err != nil {
			t.Fatalf("NewUpdateClientCommand: %v", err)
		}
		cmd.Phone = "+1-555-0100"

		resp, err := svc.Update(context.Background(), cmd)
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if resp.Name != "Acme Corp" || resp.Email != "accounts@acme.example" || resp.Phone != "+1-555-0100" {
			t.Fatalf("unexpected projection: %+v", resp)
		}
		if repo.clients["CLI-1"].Name() != "Acme Corp" {
			t.Fatal("update not persisted")
		}
	})

	t.Run("archived client rejects updates", func(t *testing.T) {
		svc, _, _ := newClientFixture(t)
		createClient(t, svc, "CLI-1", "Acme")

		archiveCmd, _ := NewArchiveClientCommand("CLI-1")
		if _, err := svc.Archive(context.Background(), archiveCmd); err != nil {
			t.Fatalf("Archive: %v", err)
		}

		cmd, _ := NewUpdateClientCommand("CLI-1", "Acme Corp", "accounts@acme.example")
		if _, err := svc.Update(context.Background(), cmd); !errors.Is(err, domain.ErrClientArchived) {
			t.Fatalf("expected ErrClientArchived, got %v", err)
		}
	})

	t.Run("missing client returns ErrClientNotFound", func(t *testing.T) {
		svc, _, _ := newClientFixture(t)

		cmd, _ := NewUpdateClientCommand("missing", "Acme", "a@b.example")
		if _, err := svc.Update(context.Background(), cmd); !errors.Is(err, domain.ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})
}

func TestClientService_Archive(t *testing.T) {
	svc, repo, pub := newClientFixture(t)
	createClient(t, svc, "CLI-1", "Acme")

	cmd, _ := NewArchiveClientCommand("CLI-1")
	resp, err := svc.Archive(context.Background(), cmd)
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if resp.Status != "ARCHIVED" {
		t.Fatalf("expected ARCHIVED, got %s", resp.Status)
	}
	if repo.clients["CLI-1"].Status() != models.ClientArchived {
		t.Fatal("archived status not persisted")
	}

	last := pub.published[len(pub.published)-1]
	if last.Topic() != events.TopicClientArchived {
		t.Fatalf("expected %s, got %s", events.TopicClientArchived, last.Topic())
	}
}

func TestClientService_DeactivateActivate(t *testing.T) {
	svc, repo, _ := newClientFixture(t)
	createClient(t, svc, "CLI-1", "Acme")

	resp, err := svc.Deactivate(context.Background(), "CLI-1")
	if err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	if resp.Status != "INACTIVE" {
		t.Fatalf("expected INACTIVE, got %s", resp.Status)
	}

	// Deactivating twice is a state conflict.
	if _, err := svc.Deactivate(context.Background(), "CLI-1"); !errors.Is(err, domain.ErrInvalidStateTransition) {
		t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
	}

	resp, err = svc.Activate(context.Background(), "CLI-1")
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if resp.Status != "ACTIVE" {
		t.Fatalf("expected ACTIVE, got %s", resp.Status)
	}
	if repo.clients["CLI-1"].Status() != models.ClientActive {
		t.Fatal("active status not persisted")
	}
}

func TestClientService_List(t *testing.T) {
	svc, _, _ := newClientFixture(t)
	createClient(t, svc, "CLI-1", "Beta LLC")
	createClient(t, svc, "CLI-2", "Acme")
	createClient(t, svc, "CLI-3", "Gamma Inc")

	resps, total, err := svc.List(context.Background(), repositories.QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total 3, got %d", total)
	}
	if len(resps) != 2 || resps[0].Name != "Acme" || resps[1].Name != "Beta LLC" {
		t.Fatalf("unexpected page: %+v", resps)
	}

	resps, _, err = svc.List(context.Background(), repositories.QueryOpts{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(resps) != 1 || resps[0].Name != "Gamma Inc" {
		t.Fatalf("unexpected page: %+v", resps)
	}
}
