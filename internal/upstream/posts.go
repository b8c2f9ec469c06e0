package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/userportal/gateway/internal/core/domain"
)

// ListPosts fetches the posts board via GET /v1/posts. A non-array response
// yields an empty list rather than an error.
func (c *Client) ListPosts(ctx context.Context, token string) ([]domain.Post, error) {
	var raw json.RawMessage
	if err := c.do(ctx, "list_posts", http.MethodGet, "/v1/posts", token, nil, &raw); err != nil {
		return nil, err
	}

	var posts []domain.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return []domain.Post{}, nil
	}
	return posts, nil
}

// CreatePost publishes a post via POST /v1/posts.
func (c *Client) CreatePost(ctx context.Context, token, title, content string) (*domain.Post, error) {
	var post domain.Post
	err := c.do(ctx, "create_post", http.MethodPost, "/v1/posts", token, map[string]string{
		"title":   title,
		"content": content,
	}, &post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}
