package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mhudec/catalog/internal/model"
	"github.com/mhudec/catalog/internal/store"
)

// Create and edit/delete deliberately diverge on a missing or rejected
// credential: create flatly denies with 401, while edit/delete send the
// visitor to the login page to re-authenticate. Only the recorded owner of
// an item may edit or delete it.

// ItemNewPage handles GET /catalog/{categoryID}/item/new/.
func (s *Server) ItemNewPage(w http.ResponseWriter, r *http.Request) {
	category, _, ok := s.itemNewGate(w, r)
	if !ok {
		return
	}

	s.Templates.Render(w, "item_new.html", &struct {
		PageData
		Category *model.Category
	}{
		PageData: PageData{Title: "New Item"},
		Category: category,
	})
}

// ItemNewSubmit handles POST /catalog/{categoryID}/item/new/.
func (s *Server) ItemNewSubmit(w http.ResponseWriter, r *http.Request) {
	category, subject, ok := s.itemNewGate(w, r)
	if !ok {
		return
	}

	name := r.FormValue("name")
	description := r.FormValue("description")

	item, err := s.Store.CreateItem(r.Context(), name, description, category.ID, subject)
	if errors.Is(err, store.ErrValidation) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "category not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to create item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	slog.Info("item created", "owner", subject, "item", item.Name, "category", category.Name)
	http.Redirect(w, r, fmt.Sprintf("/catalog/%d/items/", category.ID), http.StatusSeeOther)
}

// itemNewGate loads the parent category and runs the create-route
// authorization: any missing or rejected credential is a 401.
func (s *Server) itemNewGate(w http.ResponseWriter, r *http.Request) (*model.Category, string, bool) {
	categoryID, err := strconv.ParseInt(r.PathValue("categoryID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid category id", http.StatusBadRequest)
		return nil, "", false
	}

	category, err := s.Store.GetCategory(r.Context(), categoryID)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "category not found", http.StatusNotFound)
		return nil, "", false
	}
	if err != nil {
		slog.Error("failed to get category", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil, "", false
	}

	state, subject := s.authorize(r)
	switch state {
	case authValid:
		return category, subject, true
	case authUnavailable:
		http.Error(w, "identity service unavailable", http.StatusBadGateway)
	default:
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}
	return nil, "", false
}

// ItemEditPage handles GET /catalog/{categoryID}/items/{itemID}/edit/.
func (s *Server) ItemEditPage(w http.ResponseWriter, r *http.Request) {
	item, ok := s.itemOwnerGate(w, r)
	if !ok {
		return
	}

	s.Templates.Render(w, "item_edit.html", &struct {
		PageData
		Item *model.Item
	}{
		PageData: PageData{Title: "Edit " + item.Name},
		Item:     item,
	})
}

// ItemEditSubmit handles POST /catalog/{categoryID}/items/{itemID}/edit/.
// Only non-empty submitted fields overwrite stored values.
func (s *Server) ItemEditSubmit(w http.ResponseWriter, r *http.Request) {
	item, ok := s.itemOwnerGate(w, r)
	if !ok {
		return
	}

	updated, err := s.Store.UpdateItem(r.Context(), item.ID, r.FormValue("name"), r.FormValue("description"))
	if errors.Is(err, store.ErrValidation) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to update item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	slog.Info("item updated", "owner", updated.OwnerID, "item", updated.Name)
	http.Redirect(w, r, fmt.Sprintf("/catalog/%d/items/", updated.CategoryID), http.StatusSeeOther)
}

// ItemDeletePage handles GET /catalog/{categoryID}/items/{itemID}/delete/.
func (s *Server) ItemDeletePage(w http.ResponseWriter, r *http.Request) {
	item, ok := s.itemOwnerGate(w, r)
	if !ok {
		return
	}

	s.Templates.Render(w, "item_delete.html", &struct {
		PageData
		Item *model.Item
	}{
		PageData: PageData{Title: "Delete " + item.Name},
		Item:     item,
	})
}

// ItemDeleteSubmit handles POST /catalog/{categoryID}/items/{itemID}/delete/.
// The redirect target uses the category id from the URL, as the original
// route did.
func (s *Server) ItemDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	item, ok := s.itemOwnerGate(w, r)
	if !ok {
		return
	}

	err := s.Store.DeleteItem(r.Context(), item.ID)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to delete item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	slog.Info("item deleted", "owner", item.OwnerID, "item", item.Name)
	http.Redirect(w, r, "/catalog/"+r.PathValue("categoryID")+"/items/", http.StatusSeeOther)
}

// itemOwnerGate loads the target item and runs the edit/delete
// authorization: a missing or rejected credential redirects to the login
// page, a foreign owner gets 401.
func (s *Server) itemOwnerGate(w http.ResponseWriter, r *http.Request) (*model.Item, bool) {
	if _, err := strconv.ParseInt(r.PathValue("categoryID"), 10, 64); err != nil {
		http.Error(w, "invalid category id", http.StatusBadRequest)
		return nil, false
	}
	itemID, err := strconv.ParseInt(r.PathValue("itemID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return nil, false
	}

	item, err := s.Store.GetItem(r.Context(), itemID)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "item not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		slog.Error("failed to get item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil, false
	}

	state, subject := s.authorize(r)
	switch state {
	case authNoToken, authRejected:
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return nil, false
	case authUnavailable:
		http.Error(w, "identity service unavailable", http.StatusBadGateway)
		return nil, false
	}

	if subject != item.OwnerID {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return nil, false
	}
	return item, true
}
