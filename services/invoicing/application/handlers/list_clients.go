package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/invoicing/pkg/errhttp"
	"github.com/ghuser/invoicing/pkg/httpx"
	appsvcs "github.com/ghuser/invoicing/services/invoicing/application/services"
	"github.com/ghuser/invoicing/services/invoicing/domain/repositories"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// ListClientsResponse is the paginated response for GET /clients.
type ListClientsResponse struct {
	Clients []appsvcs.ClientResponse `json:"clients"`
	Total   int                      `json:"total" example:"42"`
	Limit   int                      `json:"limit" example:"50"`
	Offset  int                      `json:"offset" example:"0"`
} // @name ListClientsResponse

// ListClientsHandler handles GET /clients requests.
type ListClientsHandler struct {
	svc *appsvcs.Services
}

// NewListClientsHandler returns a ListClientsHandler backed by the given services.
func NewListClientsHandler(svc *appsvcs.Services) *ListClientsHandler {
	return &ListClientsHandler{svc: svc}
}

// Execute returns a page of clients ordered by name.
//
//	@Summary		List clients
//	@Description	Returns a page of clients plus the total count
//	@Tags			clients
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (default 50, max 200)"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{object}	ListClientsResponse
//	@Router			/clients [get]
func (h *ListClientsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	opts := repositories.QueryOpts{Limit: defaultPageLimit}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			opts.Limit = min(n, maxPageLimit)
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	clients, total, err := h.svc.Client.List(r.Context(), opts)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if clients == nil {
		clients = []appsvcs.ClientResponse{}
	}
	httpx.JSON(w, http.StatusOK, ListClientsResponse{
		Clients: clients,
		Total:   total,
		Limit:   opts.Limit,
		Offset:  opts.Offset,
	})
}
