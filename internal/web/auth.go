package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// LoginPage handles GET /login.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "login.html", &PageData{Title: "Login"})
}

// loginCallback is the credential payload posted by the sign-in page.
type loginCallback struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Token string `json:"id_token"`
}

// LoginSubmit handles POST /login. The payload is logged and acknowledged
// with an empty 200; it establishes no server-side session. Authorization
// everywhere else derives from the cookie-borne token alone.
func (s *Server) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	var cb loginCallback
	if err := json.NewDecoder(r.Body).Decode(&cb); err != nil {
		http.Error(w, "invalid login payload", http.StatusBadRequest)
		return
	}

	slog.Info("login callback", "id", cb.ID, "email", cb.Email, "token_present", cb.Token != "")
	w.WriteHeader(http.StatusOK)
}

// SignoutPage handles GET /logout. The page clears the token cookie
// client-side; nothing is invalidated server-side.
func (s *Server) SignoutPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "signout.html", &PageData{Title: "Signed out"})
}
