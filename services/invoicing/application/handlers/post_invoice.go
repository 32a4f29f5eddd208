// Package handlers exposes the invoicing HTTP endpoints. Each handler decodes
// and validates its request, delegates to the application services, and maps
// domain errors to HTTP status codes via errhttp.
package handlers

import (
	"net/http"

	"github.com/ghuser/invoicing/pkg/errhttp"
	"github.com/ghuser/invoicing/pkg/httpx"
	pkgvalidator "github.com/ghuser/invoicing/pkg/validator"
	appsvcs "github.com/ghuser/invoicing/services/invoicing/application/services"
)

// CreateInvoiceItemRequest is one line of a CreateInvoiceRequest.
type CreateInvoiceItemRequest struct {
	ID              string `json:"id" validate:"required,min=1,max=255" example:"line-1"`
	Description     string `json:"description" validate:"required,min=1,max=1024" example:"Consulting hours"`
	Quantity        int    `json:"quantity" validate:"required,gte=1" example:"10"`
	UnitPriceAmount int64  `json:"unit_price_amount" validate:"required,gte=1" example:"15000"`
} // @name CreateInvoiceItemRequest

// CreateInvoiceRequest is the request body for POST /invoices.
type CreateInvoiceRequest struct {
	ID       string                     `json:"id" validate:"required,min=1,max=255" example:"INV-2024-001"`
	Currency string                     `json:"currency" validate:"required,len=3" example:"USD"`
	Items    []CreateInvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
} // @name CreateInvoiceRequest

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"invoice not found"`
} // @name ErrorResponse

// PostInvoiceHandler handles POST /invoices requests.
type PostInvoiceHandler struct {
	svc *appsvcs.Services
}

// NewPostInvoiceHandler returns a PostInvoiceHandler backed by the given services.
func NewPostInvoiceHandler(svc *appsvcs.Services) *PostInvoiceHandler {
	return &PostInvoiceHandler{svc: svc}
}

// Execute creates a new draft invoice.
//
//	@Summary		Create invoice
//	@Description	Creates a new invoice in DRAFT status with at least one line item
//	@Tags			invoices
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateInvoiceRequest	true	"Invoice creation request"
//	@Success		201		{object}	services.InvoiceResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/invoices [post]
func (h *PostInvoiceHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateInvoiceRequest](w, r)
	if !ok {
		return
	}

	items := make([]appsvcs.CreateInvoiceItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, appsvcs.CreateInvoiceItem{
			ID:              item.ID,
			Description:     item.Description,
			Quantity:        item.Quantity,
			UnitPriceAmount: item.UnitPriceAmount,
		})
	}

	cmd, err := appsvcs.NewCreateInvoiceCommand(req.ID, req.Currency, items)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	invoice, err := h.svc.Invoice.Create(r.Context(), cmd)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, invoice)
}
