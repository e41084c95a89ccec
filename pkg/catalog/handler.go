package catalog

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/threestrands/threestrands/internal/rest"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetCatalog serves the combined catalog payload.
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	payload, err := h.service.GetCatalog(r.Context())
	if err != nil {
		log.Errorf("Square catalog fetch failed: %v", err)
		rest.WriteJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to fetch catalog",
			"message": err.Error(),
		})
		return
	}
	rest.WriteJSON(w, http.StatusOK, payload)
}

// GetItem serves a single catalog item fetched directly from upstream.
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]

	item, err := h.service.GetItem(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			rest.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "Item not found"})
			return
		}
		log.Errorf("Square item fetch failed for %s: %v", itemID, err)
		rest.WriteJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to fetch item",
			"message": err.Error(),
		})
		return
	}
	rest.WriteJSON(w, http.StatusOK, item)
}
