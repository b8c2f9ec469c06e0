package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/userportal/gateway/internal/core/domain"
)

// ListUsers fetches all accounts via GET /v1/users (admin only upstream).
// Three historical response shapes are accepted: {"utilisateurs": [...]},
// {"users": [...]}, and a bare array.
func (c *Client) ListUsers(ctx context.Context, token string) ([]*domain.UserProfile, error) {
	var raw json.RawMessage
	if err := c.do(ctx, "list_users", http.MethodGet, "/v1/users", token, nil, &raw); err != nil {
		return nil, err
	}
	return decodeUserList(raw)
}

// DeleteUser removes an account via DELETE /v1/users/{id}.
func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.do(ctx, "delete_user", http.MethodDelete, "/v1/users/"+id, token, nil, nil)
}

func decodeUserList(raw json.RawMessage) ([]*domain.UserProfile, error) {
	var items []map[string]any

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		list, ok := envelope["utilisateurs"]
		if !ok {
			list, ok = envelope["users"]
		}
		if !ok {
			return []*domain.UserProfile{}, nil
		}
		if err := json.Unmarshal(list, &items); err != nil {
			return nil, &APIError{Message: "invalid upstream response", Cause: err}
		}
	} else if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &APIError{Message: "invalid upstream response", Cause: err}
	}

	users := make([]*domain.UserProfile, 0, len(items))
	for _, item := range items {
		users = append(users, domain.ProfileFromAPI(item))
	}
	return users, nil
}
