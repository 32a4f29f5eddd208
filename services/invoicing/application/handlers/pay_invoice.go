package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/invoicing/pkg/errhttp"
	"github.com/ghuser/invoicing/pkg/httpx"
	appsvcs "github.com/ghuser/invoicing/services/invoicing/application/services"
)

// PayInvoiceHandler handles POST /invoices/{invoiceID}/pay requests.
type PayInvoiceHandler struct {
	svc *appsvcs.Services
}

// NewPayInvoiceHandler returns a PayInvoiceHandler backed by the given services.
func NewPayInvoiceHandler(svc *appsvcs.Services) *PayInvoiceHandler {
	return &PayInvoiceHandler{svc: svc}
}

// Execute marks an issued or overdue invoice as paid.
//
//	@Summary		Pay invoice
//	@Description	Marks an ISSUED or OVERDUE invoice as PAID
//	@Tags			invoices
//	@Produce		json
//	@Param			invoiceID	path		string	true	"Invoice ID"
//	@Success		200			{object}	services.InvoiceResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Router			/invoices/{invoiceID}/pay [post]
func (h *PayInvoiceHandler) Execute(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "invoiceID")

	cmd, err := appsvcs.NewPayInvoiceCommand(invoiceID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	invoice, err := h.svc.Invoice.Pay(r.Context(), cmd)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, invoice)
}
