package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/invoicing/pkg/errhttp"
	"github.com/ghuser/invoicing/pkg/httpx"
	pkgvalidator "github.com/ghuser/invoicing/pkg/validator"
	appsvcs "github.com/ghuser/invoicing/services/invoicing/application/services"
)

// UpdateClientRequest is the request body for PUT /clients/{clientID}.
type UpdateClientRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255" example:"Acme Corp"`
	Email   string `json:"email" validate:"required,email" example:"billing@acme.example"`
	Phone   string `json:"phone" validate:"omitempty,max=64" example:"+1-555-0100"`
	Address string `json:"address" validate:"omitempty,max=1024" example:"1 Main St, Springfield"`
	TaxID   string `json:"tax_id" validate:"omitempty,max=64" example:"US123456789"`
} // @name UpdateClientRequest

// PutClientHandler handles PUT /clients/{clientID} requests.
type PutClientHandler struct {
	svc *appsvcs.Services
}

// NewPutClientHandler returns a PutClientHandler backed by the given services.
func NewPutClientHandler(svc *appsvcs.Services) *PutClientHandler {
	return &PutClientHandler{svc: svc}
}

// Execute replaces a client's name, email, and contact details.
//
//	@Summary		Update client
//	@Description	Updates a client's contact details; archived clients are rejected
//	@Tags			clients
//	@Accept			json
//	@Produce		json
//	@Param			clientID	path		string				true	"Client ID"
//	@Param			request		body		UpdateClientRequest	true	"Client update request"
//	@Success		200			{object}	services.ClientResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Router			/clients/{clientID} [put]
func (h *PutClientHandler) Execute(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")

	req, ok := pkgvalidator.ValidateRequest[UpdateClientRequest](w, r)
	if !ok {
		return
	}

	cmd, err := appsvcs.NewUpdateClientCommand(clientID, req.Name, req.Email)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	cmd.Phone = req.Phone
	cmd.Address = req.Address
	cmd.TaxID = req.TaxID

	client, err := h.svc.Client.Update(r.Context(), cmd)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, client)
}
