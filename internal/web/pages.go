package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mhudec/catalog/internal/model"
	"github.com/mhudec/catalog/internal/store"
)

// categoryListing pairs a category with its item count for the index page.
type categoryListing struct {
	model.Category
	ItemCount int64
}

// CategoriesPage handles GET / and GET /catalog/.
func (s *Server) CategoriesPage(w http.ResponseWriter, r *http.Request) {
	categories, err := s.Store.ListCategories(r.Context())
	if err != nil {
		slog.Error("failed to list categories", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	listings := make([]categoryListing, 0, len(categories))
	for _, c := range categories {
		n, err := s.Store.CountItems(r.Context(), c.ID)
		if err != nil {
			slog.Error("failed to count items", "category", c.ID, "error", err)
		}
		listings = append(listings, categoryListing{Category: c, ItemCount: n})
	}

	s.Templates.Render(w, "catalog.html", &struct {
		PageData
		Categories []categoryListing
	}{
		PageData:   PageData{Title: "Catalog"},
		Categories: listings,
	})
}

// ItemsPage handles GET /catalog/{categoryID}/ and its /items/ alias.
func (s *Server) ItemsPage(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(r.PathValue("categoryID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid category id", http.StatusBadRequest)
		return
	}

	category, err := s.Store.GetCategory(r.Context(), categoryID)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "category not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to get category", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	items, err := s.Store.ListItems(r.Context(), categoryID)
	if err != nil {
		slog.Error("failed to list items", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.Templates.Render(w, "items.html", &struct {
		PageData
		Category *model.Category
		Items    []model.Item
	}{
		PageData: PageData{Title: category.Name},
		Category: category,
		Items:    items,
	})
}

// ItemPage handles GET /catalog/{categoryID}/items/{itemID}/. The item is
// fetched by id alone, matching the JSON detail route.
func (s *Server) ItemPage(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.ParseInt(r.PathValue("itemID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	item, err := s.Store.GetItem(r.Context(), itemID)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to get item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.Templates.Render(w, "item.html", &struct {
		PageData
		Item *model.Item
	}{
		PageData: PageData{Title: item.Name},
		Item:     item,
	})
}
