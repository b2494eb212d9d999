package http

import (
	"net/http"

	"github.com/MKhiriev/go-doc-vault/internal/utils"
)

// health reports service status and vector index coverage. Unauthenticated.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.DocumentService.Health(r.Context()), http.StatusOK)
}
