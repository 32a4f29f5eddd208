package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/invoicing/pkg/errhttp"
	"github.com/ghuser/invoicing/pkg/httpx"
	appsvcs "github.com/ghuser/invoicing/services/invoicing/application/services"
)

// IssueInvoiceRequest is the optional request body for the issue endpoint.
// When omitted, the invoice is issued as of the current time.
type IssueInvoiceRequest struct {
	IssueAt time.Time `json:"issue_at" example:"2024-01-15T10:30:00Z"`
} // @name IssueInvoiceRequest

// IssueInvoiceHandler handles POST /invoices/{invoiceID}/issue requests.
type IssueInvoiceHandler struct {
	svc *appsvcs.Services
}

// NewIssueInvoiceHandler returns an IssueInvoiceHandler backed by the given services.
func NewIssueInvoiceHandler(svc *appsvcs.Services) *IssueInvoiceHandler {
	return &IssueInvoiceHandler{svc: svc}
}

// Execute transitions a draft invoice to ISSUED and stamps its due date.
//
//	@Summary		Issue invoice
//	@Description	Issues a draft invoice; the due date is set 30 days after the issue date
//	@Tags			invoices
//	@Accept			json
//	@Produce		json
//	@Param			invoiceID	path		string				true	"Invoice ID"
//	@Param			request		body		IssueInvoiceRequest	false	"Optional issue date override"
//	@Success		200			{object}	services.InvoiceResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Router			/invoices/{invoiceID}/issue [post]
func (h *IssueInvoiceHandler) Execute(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "invoiceID")

	// The body is optional; an absent or empty body means "issue now".
	var req IssueInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	cmd, err := appsvcs.NewIssueInvoiceCommand(invoiceID, req.IssueAt)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	invoice, err := h.svc.Invoice.Issue(r.Context(), cmd)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, invoice)
}
