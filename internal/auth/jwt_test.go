package auth

import (
	"context"
	"errors"
	"testing"
)

func TestMintAndVerifyToken(t *testing.T) {
	secret := "test-secret-key"

	token, err := MintToken(secret, "alice")
	if err != nil {
		t.Fatalf("MintToken: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	v := &JWTVerifier{Secret: secret}
	subject, err := v.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if subject != "alice" {
		t.Errorf("expected subject 'alice', got %q", subject)
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, _ := MintToken("secret1", "alice")

	v := &JWTVerifier{Secret: "secret2"}
	_, err := v.Verify(context.Background(), token)
	if !errors.Is(err, ErrTokenRejected) {
		t.Errorf("expected ErrTokenRejected for wrong secret, got %v", err)
	}
}

func TestVerifyTokenGarbage(t *testing.T) {
	v := &JWTVerifier{Secret: "secret"}
	_, err := v.Verify(context.Background(), "not-a-token")
	if !errors.Is(err, ErrTokenRejected) {
		t.Errorf("expected ErrTokenRejected for garbage token, got %v", err)
	}
}

func TestStaticVerifier(t *testing.T) {
	v := StaticVerifier{"tok": "alice"}

	subject, err := v.Verify(context.Background(), "tok")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if subject != "alice" {
		t.Errorf("expected subject 'alice', got %q", subject)
	}

	if _, err := v.Verify(context.Background(), "other"); !errors.Is(err, ErrTokenRejected) {
		t.Errorf("expected ErrTokenRejected for unknown token, got %v", err)
	}
}
