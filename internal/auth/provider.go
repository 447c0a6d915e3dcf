package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"leadintake/internal/config"
	"leadintake/internal/model"
)

// ProviderClient validates session tokens against the external auth
// provider's session endpoint.
type ProviderClient struct {
	baseURL string
	client  *http.Client
}

// NewProviderClient constructs a TokenReader backed by the configured provider.
func NewProviderClient(cfg config.AuthConfig) (*ProviderClient, error) {
	if cfg.ProviderURL == "" {
		return nil, fmt.Errorf("auth provider URL is required")
	}
	return &ProviderClient{
		baseURL: strings.TrimSuffix(cfg.ProviderURL, "/"),
		client:  &http.Client{Timeout: 5 * time.Second},
	}, nil
}

var _ TokenReader = (*ProviderClient)(nil)

// ReadToken asks the provider for the claims behind raw. A 401/403 answer
// maps to ErrInvalidToken; any other non-200 answer is a transport error.
func (p *ProviderClient) ReadToken(ctx context.Context, raw string) (*model.Token, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/session", nil)
	if err != nil {
		return nil, fmt.Errorf("build session request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+raw)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call auth provider: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrInvalidToken
	default:
		return nil, fmt.Errorf("auth provider returned status %d", resp.StatusCode)
	}

	var token model.Token
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("decode session response: %w", err)
	}
	return &token, nil
}
