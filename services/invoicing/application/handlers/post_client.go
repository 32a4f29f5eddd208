package handlers

import (
	"net/http"

	"github.com/ghuser/invoicing/pkg/errhttp"
	"github.com/ghuser/invoicing/pkg/httpx"
	pkgvalidator "github.com/ghuser/invoicing/pkg/validator"
	appsvcs "github.com/ghuser/invoicing/services/invoicing/application/services"
)

// CreateClientRequest is the request body for POST /clients.
type CreateClientRequest struct {
	ID      string `json:"id" validate:"required,min=1,max=255" example:"CLI-001"`
	Name    string `json:"name" validate:"required,min=1,max=255" example:"Acme Corp"`
	Email   string `json:"email" validate:"required,email" example:"billing@acme.example"`
	Phone   string `json:"phone" validate:"omitempty,max=64" example:"+1-555-0100"`
	Address string `json:"address" validate:"omitempty,max=1024" example:"1 Main St, Springfield"`
	TaxID   string `json:"tax_id" validate:"omitempty,max=64" example:"US123456789"`
} // @name CreateClientRequest

// PostClientHandler handles POST /clients requests.
type PostClientHandler struct {
	svc *appsvcs.Services
}

// NewPostClientHandler returns a PostClientHandler backed by the given services.
func NewPostClientHandler(svc *appsvcs.Services) *PostClientHandler {
	return &PostClientHandler{svc: svc}
}

// Execute registers a new active client.
//
//	@Summary		Create client
//	@Description	Registers a new client in ACTIVE status
//	@Tags			clients
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateClientRequest	true	"Client creation request"
//	@Success		201		{object}	services.ClientResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/clients [post]
func (h *PostClientHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateClientRequest](w, r)
	if !ok {
		return
	}

	cmd, err := appsvcs.NewCreateClientCommand(req.ID, req.Name, req.Email)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	cmd.Phone = req.Phone
	cmd.Address = req.Address
	cmd.TaxID = req.TaxID

	client, err := h.svc.Client.Create(r.Context(), cmd)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, client)
}
