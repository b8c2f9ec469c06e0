package ports

import (
	"context"

	"github.com/userportal/gateway/internal/core/domain"
)

// LoginResult is the decoded upstream authentication response.
type LoginResult struct {
	// Token is the opaque bearer token, taken from either the `token` or the
	// `access_token` response key.
	Token string
	// User is the raw user object as the upstream sent it.
	User map[string]any
	// Raw is the full response body, handed back to callers unchanged.
	Raw map[string]any
}

// AuthAPI is the slice of the upstream client the session service consumes.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	CreateAccount(ctx context.Context, req domain.AccountCreationRequest) (map[string]any, error)
}

// UserAPI exposes the upstream admin user-management endpoints.
type UserAPI interface {
	ListUsers(ctx context.Context, token string) ([]*domain.UserProfile, error)
	DeleteUser(ctx context.Context, token, id string) error
}

// PostAPI exposes the upstream posts endpoints.
type PostAPI interface {
	ListPosts(ctx context.Context, token string) ([]domain.Post, error)
	CreatePost(ctx context.Context, token, title, content string) (*domain.Post, error)
}
