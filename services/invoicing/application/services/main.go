package services

import (
	"github.com/ghuser/invoicing/pkg/app"
	"github.com/ghuser/invoicing/pkg/cache"
	"github.com/ghuser/invoicing/services/invoicing/infrastructure/persistence/postgres"
	"github.com/ghuser/invoicing/services/invoicing/infrastructure/publish"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Invoice *InvoiceService
	Client  *ClientService
}

// New wires all invoicing application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	publisher := publish.NewDomainEventPublisher(a.EventBus)
	invoiceRepo := postgres.NewInvoiceRepository(a.Db)
	clientRepo := postgres.NewClientRepository(a.Db)
	invoiceCache := cache.NewInvoiceCache(a.Redis)
	return &Services{
		Invoice: NewInvoiceService(invoiceRepo, publisher, invoiceCache),
		Client:  NewClientService(clientRepo, publisher),
	}
}
