// Package api serves the read-only JSON views of the catalog. The wire
// shapes (capitalized top-level key, lowercase fields, single-element array
// for item detail) are a compatibility contract and must not change.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/mhudec/catalog/internal/model"
	"github.com/mhudec/catalog/internal/store"
)

// Handler holds dependencies for the JSON endpoints.
type Handler struct {
	Store *store.Store
}

// Register adds the JSON routes to the mux. They share the /catalog/ path
// space with the page routes, distinguished by the JSON/ suffix.
func Register(mux *http.ServeMux, st *store.Store) {
	h := &Handler{Store: st}
	mux.HandleFunc("GET /catalog/JSON/{$}", h.Categories)
	mux.HandleFunc("GET /catalog/{categoryID}/items/JSON/{$}", h.Items)
	mux.HandleFunc("GET /catalog/{categoryID}/items/{itemID}/JSON/{$}", h.Item)
}

// Categories handles GET /catalog/JSON/.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Store.ListCategories(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}
	if categories == nil {
		categories = []model.Category{}
	}
	jsonResponse(w, http.StatusOK, map[string]any{"Categories": categories})
}

// Items handles GET /catalog/{categoryID}/items/JSON/. An unknown category
// yields an empty list, not a 404.
func (h *Handler) Items(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(r.PathValue("categoryID"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	items, err := h.Store.ListItems(r.Context(), categoryID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, map[string]any{"Items": items})
}

// Item handles GET /catalog/{categoryID}/items/{itemID}/JSON/. The item is
// looked up by id alone; the category segment is not cross-checked.
func (h *Handler) Item(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.ParseInt(r.PathValue("itemID"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := h.Store.GetItem(r.Context(), itemID)
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}

	// Single-element array, not a bare object.
	jsonResponse(w, http.StatusOK, map[string]any{"Item": []*model.Item{item}})
}
