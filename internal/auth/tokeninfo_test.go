package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestTokenInfoVerifyValid(t *testing.T) {
	issuer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id_token") != "good" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sub": "alice", "email": "alice@example.com"}`))
	}))
	t.Cleanup(issuer.Close)

	v := NewTokenInfoVerifier(issuer.URL, 2*time.Second)
	subject, err := v.Verify(context.Background(), "good")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if subject != "alice" {
		t.Errorf("expected subject 'alice', got %q", subject)
	}
}

func TestTokenInfoVerifyRejected(t *testing.T) {
	issuer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	t.Cleanup(issuer.Close)

	v := NewTokenInfoVerifier(issuer.URL, 2*time.Second)
	_, err := v.Verify(context.Background(), "bad")
	if !errors.Is(err, ErrTokenRejected) {
		t.Errorf("expected ErrTokenRejected, got %v", err)
	}
}

func TestTokenInfoVerifyUnreachable(t *testing.T) {
	issuer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	issuer.Close()

	v := NewTokenInfoVerifier(issuer.URL, time.Second)
	_, err := v.Verify(context.Background(), "any")
	if err == nil {
		t.Fatal("expected error for unreachable issuer")
	}
	// Transport failures must not look like rejections.
	if errors.Is(err, ErrTokenRejected) {
		t.Errorf("transport failure reported as rejection: %v", err)
	}
}
