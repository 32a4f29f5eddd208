package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/invoicing/pkg/errhttp"
	"github.com/ghuser/invoicing/pkg/httpx"
	appsvcs "github.com/ghuser/invoicing/services/invoicing/application/services"
)

// VoidInvoiceHandler handles POST /invoices/{invoiceID}/void requests.
type VoidInvoiceHandler struct {
	svc *appsvcs.Services
}

// NewVoidInvoiceHandler returns a VoidInvoiceHandler backed by the given services.
func NewVoidInvoiceHandler(svc *appsvcs.Services) *VoidInvoiceHandler {
	return &VoidInvoiceHandler{svc: svc}
}

// Execute cancels an invoice. Paid invoices cannot be voided.
//
//	@Summary		Void invoice
//	@Description	Voids an invoice in any non-PAID status
//	@Tags			invoices
//	@Produce		json
//	@Param			invoiceID	path		string	true	"Invoice ID"
//	@Success		200			{object}	services.InvoiceResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Router			/invoices/{invoiceID}/void [post]
func (h *VoidInvoiceHandler) Execute(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "invoiceID")

	cmd, err := appsvcs.NewVoidInvoiceCommand(invoiceID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	invoice, err := h.svc.Invoice.Void(r.Context(), cmd)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, invoice)
}
