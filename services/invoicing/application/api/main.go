package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/invoicing/pkg/app"
	"github.com/ghuser/invoicing/services/invoicing/application/handlers"
	appsvcs "github.com/ghuser/invoicing/services/invoicing/application/services"
)

// InvoicingRoutes registers invoice and client endpoints on the provided chi router.
func InvoicingRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/invoices", func(r chi.Router) {
			r.Post("/", handlers.NewPostInvoiceHandler(svcs).Execute)
			r.Get("/{invoiceID}", handlers.NewGetInvoiceHandler(svcs).Execute)
			r.Post("/{invoiceID}/issue", handlers.NewIssueInvoiceHandler(svcs).Execute)
			r.Post("/{invoiceID}/pay", handlers.NewPayInvoiceHandler(svcs).Execute)
			r.Post("/{invoiceID}/overdue", handlers.NewOverdueInvoiceHandler(svcs).Execute)
			r.Post("/{invoiceID}/void", handlers.NewVoidInvoiceHandler(svcs).Execute)
		})
		r.Route("/clients", func(r chi.Router) {
			r.Post("/", handlers.NewPostClientHandler(svcs).Execute)
			r.Get("/", handlers.NewListClientsHandler(svcs).Execute)
			r.Get("/{clientID}", handlers.NewGetClientHandler(svcs).Execute)
			r.Put("/{clientID}", handlers.NewPutClientHandler(svcs).Execute)
			r.Delete("/{clientID}", handlers.NewArchiveClientHandler(svcs).Execute)
			r.Post("/{clientID}/deactivate", handlers.NewDeactivateClientHandler(svcs).Execute)
			r.Post("/{clientID}/activate", handlers.NewActivateClientHandler(svcs).Execute)
		})
	})
}
