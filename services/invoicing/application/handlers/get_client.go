package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/invoicing/pkg/errhttp"
	"github.com/ghuser/invoicing/pkg/httpx"
	appsvcs "github.com/ghuser/invoicing/services/invoicing/application/services"
)

// GetClientHandler handles GET /clients/{clientID} requests.
type GetClientHandler struct {
	svc *appsvcs.Services
}

// NewGetClientHandler returns a GetClientHandler backed by the given services.
func NewGetClientHandler(svc *appsvcs.Services) *GetClientHandler {
	return &GetClientHandler{svc: svc}
}

// Execute retrieves a single client projection.
//
//	@Summary		Get client
//	@Description	Returns the client with contact details and status
//	@Tags			clients
//	@Produce		json
//	@Param			clientID	path		string	true	"Client ID"
//	@Success		200			{object}	services.ClientResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/clients/{clientID} [get]
func (h *GetClientHandler) Execute(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")

	client, err := h.svc.Client.GetByID(r.Context(), clientID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, client)
}
