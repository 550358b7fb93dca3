package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry is the default token lifetime for locally minted tokens.
const TokenExpiry = 7 * 24 * time.Hour

// JWTVerifier validates locally issued HS256 tokens. The subject claim is
// the identity subject recorded on created items.
type JWTVerifier struct {
	Secret string
}

func (v *JWTVerifier) Verify(_ context.Context, tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(v.Secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenRejected, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrTokenRejected)
	}
	return claims.Subject, nil
}

// MintToken creates a signed HS256 token for a subject with a unique JTI.
func MintToken(secret, subject string) (string, error) {
	jti, err := generateJTI()
	if err != nil {
		return "", fmt.Errorf("generating JTI: %w", err)
	}

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ID:        jti,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExpiry)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// generateJTI creates a random token ID.
func generateJTI() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
