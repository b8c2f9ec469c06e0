package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userportal/gateway/internal/api/middleware"
	"github.com/userportal/gateway/internal/core/ports"
)

// UserHandler serves the admin dashboard's user management endpoints by
// proxying the upstream user API with the session's token.
type UserHandler struct {
	users ports.UserAPI
}

func NewUserHandler(users ports.UserAPI) *UserHandler {
	return &UserHandler{users: users}
}

// List returns all accounts.
//
// @Summary      List users (admin)
// @Tags         users
// @Produce      json
// @Success      200  {object}  userListResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	token := middleware.CurrentSession(c).Token()
	users, err := h.users.ListUsers(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userListResponse{Users: users})
}

// Delete removes an account.
//
// @Summary      Delete a user (admin)
// @Tags         users
// @Param        id   path  string  true  "User id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	token := middleware.CurrentSession(c).Token()
	if err := h.users.DeleteUser(c.Request().Context(), token, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
