package upstream

import (
	"context"
	"net/http"

	"github.com/userportal/gateway/internal/core/domain"
	"github.com/userportal/gateway/internal/core/ports"
)

// Login authenticates against POST /v1/login. The upstream has answered with
// both `token` and `access_token` as the token key; either is accepted.
func (c *Client) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	var raw map[string]any
	err := c.do(ctx, "login", http.MethodPost, "/v1/login", "", map[string]string{
		"username": username,
		"password": password,
	}, &raw)
	if err != nil {
		return nil, err
	}

	token := firstString(raw, "token", "access_token")
	if token == "" {
		return nil, &APIError{Message: "login response missing token", Status: http.StatusBadGateway}
	}

	user, _ := raw["user"].(map[string]any)
	return &ports.LoginResult{Token: token, User: user, Raw: raw}, nil
}

// CreateAccount registers a new account against POST /v1/users. It does not
// log the account in; the caller decides whether to chain a login.
func (c *Client) CreateAccount(ctx context.Context, req domain.AccountCreationRequest) (map[string]any, error) {
	var raw map[string]any
	if err := c.do(ctx, "create_account", http.MethodPost, "/v1/users", "", req, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
