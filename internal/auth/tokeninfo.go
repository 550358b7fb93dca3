package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultTokenInfoURL is Google's id_token validation endpoint.
const DefaultTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// TokenInfoVerifier validates tokens against a Google-style tokeninfo
// endpoint. A non-200 answer is a rejection; a transport failure is returned
// as-is so callers can surface it as an upstream error instead of a 401.
type TokenInfoVerifier struct {
	URL     string
	Client  *http.Client
	Timeout time.Duration
}

// NewTokenInfoVerifier creates a verifier with a bounded per-call timeout.
func NewTokenInfoVerifier(endpoint string, timeout time.Duration) *TokenInfoVerifier {
	return &TokenInfoVerifier{
		URL:     endpoint,
		Client:  &http.Client{Timeout: timeout},
		Timeout: timeout,
	}
}

func (v *TokenInfoVerifier) Verify(ctx context.Context, token string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, v.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		v.URL+"?id_token="+url.QueryEscape(token), nil)
	if err != nil {
		return "", fmt.Errorf("building tokeninfo request: %w", err)
	}

	resp, err := v.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("querying token issuer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: issuer returned %d", ErrTokenRejected, resp.StatusCode)
	}

	var info struct {
		Sub string `json:"sub"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", fmt.Errorf("decoding tokeninfo response: %w", err)
	}
	if info.Sub == "" {
		return "", fmt.Errorf("tokeninfo response missing subject")
	}
	return info.Sub, nil
}
