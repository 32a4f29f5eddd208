package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/invoicing/pkg/errhttp"
	"github.com/ghuser/invoicing/pkg/httpx"
	appsvcs "github.com/ghuser/invoicing/services/invoicing/application/services"
)

// GetInvoiceHandler handles GET /invoices/{invoiceID} requests.
type GetInvoiceHandler struct {
	svc *appsvcs.Services
}

// NewGetInvoiceHandler returns a GetInvoiceHandler backed by the given services.
func NewGetInvoiceHandler(svc *appsvcs.Services) *GetInvoiceHandler {
	return &GetInvoiceHandler{svc: svc}
}

// Execute retrieves a single invoice projection.
//
//	@Summary		Get invoice
//	@Description	Returns the invoice with its items, status, total, and dates
//	@Tags			invoices
//	@Produce		json
//	@Param			invoiceID	path		string	true	"Invoice ID"
//	@Success		200			{object}	services.InvoiceResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/invoices/{invoiceID} [get]
func (h *GetInvoiceHandler) Execute(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "invoiceID")

	invoice, err := h.svc.Invoice.GetByID(r.Context(), invoiceID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, invoice)
}
