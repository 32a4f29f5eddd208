package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/invoicing/pkg/errhttp"
	"github.com/ghuser/invoicing/pkg/httpx"
	appsvcs "github.com/ghuser/invoicing/services/invoicing/application/services"
)

// DeactivateClientHandler handles POST /clients/{clientID}/deactivate requests.
type DeactivateClientHandler struct {
	svc *appsvcs.Services
}

// NewDeactivateClientHandler returns a DeactivateClientHandler backed by the given services.
func NewDeactivateClientHandler(svc *appsvcs.Services) *DeactivateClientHandler {
	return &DeactivateClientHandler{svc: svc}
}

// Execute suspends an active client.
//
//	@Summary		Deactivate client
//	@Description	Suspends an ACTIVE client
//	@Tags			clients
//	@Produce		json
//	@Param			clientID	path		string	true	"Client ID"
//	@Success		200			{object}	services.ClientResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Router			/clients/{clientID}/deactivate [post]
func (h *DeactivateClientHandler) Execute(w http.ResponseWriter, r *http.Request) {
	client, err := h.svc.Client.Deactivate(r.Context(), chi.URLParam(r, "clientID"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, client)
}

// ActivateClientHandler handles POST /clients/{clientID}/activate requests.
type ActivateClientHandler struct {
	svc *appsvcs.Services
}

// NewActivateClientHandler returns an ActivateClientHandler backed by the given services.
func NewActivateClientHandler(svc *appsvcs.Services) *ActivateClientHandler {
	return &ActivateClientHandler{svc: svc}
}

// Execute returns an inactive client to active.
//
//	@Summary		Activate client
//	@Description	Returns an INACTIVE client to ACTIVE
//	@Tags			clients
//	@Produce		json
//	@Param			clientID	path		string	true	"Client ID"
//	@Success		200			{object}	services.ClientResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Router			/clients/{clientID}/activate [post]
func (h *ActivateClientHandler) Execute(w http.ResponseWriter, r *http.Request) {
	client, err := h.svc.Client.Activate(r.Context(), chi.URLParam(r, "clientID"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, client)
}
