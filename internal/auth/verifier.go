// Package auth resolves bearer credentials to identity subjects.
package auth

import (
	"context"
	"errors"
)

// ErrTokenRejected means the issuer saw the credential and refused it. Any
// other non-nil error from Verify is an upstream failure and must not be
// treated as a rejection.
var ErrTokenRejected = errors.New("token rejected")

// Verifier validates a bearer credential and returns the subject behind it.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// StaticVerifier maps tokens to subjects. Any token not in the map is
// rejected. Used in tests and local development.
type StaticVerifier map[string]string

func (v StaticVerifier) Verify(_ context.Context, token string) (string, error) {
	subject, ok := v[token]
	if !ok {
		return "", ErrTokenRejected
	}
	return subject, nil
}
