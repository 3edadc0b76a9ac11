package http

import (
	"net/http"

	"courtmaster-backend/internal/catalog"
)

// CatalogHandler serves the static venue configuration to the presentation
// layer.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

func (h *CatalogHandler) ListCourts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Courts())
}

func (h *CatalogHandler) ListCoaches(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Coaches())
}

func (h *CatalogHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Inventory())
}

func (h *CatalogHandler) ListRules(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Rules())
}
