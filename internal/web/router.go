package web

import (
	"net/http"

	"github.com/mhudec/catalog/internal/auth"
	"github.com/mhudec/catalog/internal/store"
	webembed "github.com/mhudec/catalog/web"
)

// NewRouter creates the page router with all routes registered. The returned
// mux is also where the JSON routes get registered by the api package.
func NewRouter(st *store.Store, verifier auth.Verifier) (*http.ServeMux, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		Store:     st,
		Verifier:  verifier,
		Templates: templates,
	}

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// Public read routes.
	mux.HandleFunc("GET /{$}", s.CategoriesPage)
	mux.HandleFunc("GET /catalog/{$}", s.CategoriesPage)
	mux.HandleFunc("GET /catalog/{categoryID}/{$}", s.ItemsPage)
	mux.HandleFunc("GET /catalog/{categoryID}/items/{$}", s.ItemsPage)
	mux.HandleFunc("GET /catalog/{categoryID}/items/{itemID}/{$}", s.ItemPage)

	// Mutating routes; the authorization decision is identical for GET and
	// POST of a given route.
	mux.HandleFunc("GET /catalog/{categoryID}/item/new/{$}", s.ItemNewPage)
	mux.HandleFunc("POST /catalog/{categoryID}/item/new/{$}", s.ItemNewSubmit)
	mux.HandleFunc("GET /catalog/{categoryID}/items/{itemID}/edit/{$}", s.ItemEditPage)
	mux.HandleFunc("POST /catalog/{categoryID}/items/{itemID}/edit/{$}", s.ItemEditSubmit)
	mux.HandleFunc("GET /catalog/{categoryID}/items/{itemID}/delete/{$}", s.ItemDeletePage)
	mux.HandleFunc("POST /catalog/{categoryID}/items/{itemID}/delete/{$}", s.ItemDeleteSubmit)

	// Login and signout.
	mux.HandleFunc("GET /login", s.LoginPage)
	mux.HandleFunc("POST /login", s.LoginSubmit)
	mux.HandleFunc("GET /logout", s.SignoutPage)

	return mux, nil
}
