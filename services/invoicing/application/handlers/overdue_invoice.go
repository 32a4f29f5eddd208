package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/invoicing/pkg/errhttp"
	"github.com/ghuser/invoicing/pkg/httpx"
	appsvcs "github.com/ghuser/invoicing/services/invoicing/application/services"
)

// OverdueInvoiceHandler handles POST /invoices/{invoiceID}/overdue requests.
// The periodic sweep marks invoices overdue automatically; this endpoint
// exists for manual corrections.
type OverdueInvoiceHandler struct {
	svc *appsvcs.Services
}

// NewOverdueInvoiceHandler returns an OverdueInvoiceHandler backed by the given services.
func NewOverdueInvoiceHandler(svc *appsvcs.Services) *OverdueInvoiceHandler {
	return &OverdueInvoiceHandler{svc: svc}
}

// Execute marks an issued invoice as overdue.
//
//	@Summary		Mark invoice overdue
//	@Description	Marks an ISSUED invoice as OVERDUE
//	@Tags			invoices
//	@Produce		json
//	@Param			invoiceID	path		string	true	"Invoice ID"
//	@Success		200			{object}	services.InvoiceResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Router			/invoices/{invoiceID}/overdue [post]
func (h *OverdueInvoiceHandler) Execute(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "invoiceID")

	cmd, err := appsvcs.NewMarkAsOverdueCommand(invoiceID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	invoice, err := h.svc.Invoice.MarkAsOverdue(r.Context(), cmd)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, invoice)
}
