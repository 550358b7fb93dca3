package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mhudec/catalog/internal/auth"
)

// tokenCookie carries the bearer credential. The token lives client-side;
// there is no server-side session.
const tokenCookie = "id_token"

// authState classifies a request's credential.
type authState int

const (
	// authNoToken: no credential supplied.
	authNoToken authState = iota
	// authRejected: credential supplied but refused by the issuer.
	authRejected
	// authUnavailable: the issuer could not be reached. Must surface as an
	// upstream failure, never as unauthorized.
	authUnavailable
	// authValid: the issuer vouched for the subject.
	authValid
)

// authorize resolves the request's credential against the identity oracle.
// The subject is only meaningful when the state is authValid.
func (s *Server) authorize(r *http.Request) (authState, string) {
	cookie, err := r.Cookie(tokenCookie)
	if err != nil || cookie.Value == "" {
		return authNoToken, ""
	}

	subject, err := s.Verifier.Verify(r.Context(), cookie.Value)
	if errors.Is(err, auth.ErrTokenRejected) {
		return authRejected, ""
	}
	if err != nil {
		slog.Error("identity oracle unavailable", "error", err)
		return authUnavailable, ""
	}
	return authValid, subject
}
