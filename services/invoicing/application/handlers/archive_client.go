package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/invoicing/pkg/errhttp"
	"github.com/ghuser/invoicing/pkg/httpx"
	appsvcs "github.com/ghuser/invoicing/services/invoicing/application/services"
)

// ArchiveClientHandler handles DELETE /clients/{clientID} requests.
type ArchiveClientHandler struct {
	svc *appsvcs.Services
}

// NewArchiveClientHandler returns an ArchiveClientHandler backed by the given services.
func NewArchiveClientHandler(svc *appsvcs.Services) *ArchiveClientHandler {
	return &ArchiveClientHandler{svc: svc}
}

// Execute archives a client. Archiving is a soft delete; the record is kept
// for invoice history.
//
//	@Summary		Archive client
//	@Description	Archives a client; further updates are rejected
//	@Tags			clients
//	@Produce		json
//	@Param			clientID	path		string	true	"Client ID"
//	@Success		200			{object}	services.ClientResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/clients/{clientID} [delete]
func (h *ArchiveClientHandler) Execute(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")

	cmd, err := appsvcs.NewArchiveClientCommand(clientID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	client, err := h.svc.Client.Archive(r.Context(), cmd)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, client)
}
