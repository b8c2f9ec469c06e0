package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userportal/gateway/internal/api/middleware"
	"github.com/userportal/gateway/internal/core/ports"
)

// PostHandler serves the posts board endpoints.
type PostHandler struct {
	posts ports.PostAPI
}

func NewPostHandler(posts ports.PostAPI) *PostHandler {
	return &PostHandler{posts: posts}
}

// List returns all posts.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Success      200  {object}  postListResponse
// @Router       /v1/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	token := middleware.CurrentSession(c).Token()
	posts, err := h.posts.ListPosts(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, postListResponse{Posts: posts})
}

// Create publishes a post.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      createPostRequest  true  "Post contents"
// @Success      201   {object}  domain.Post
// @Failure      400   {object}  errorResponse
// @Router       /v1/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	token := middleware.CurrentSession(c).Token()
	post, err := h.posts.CreatePost(c.Request().Context(), token, req.Title, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}
