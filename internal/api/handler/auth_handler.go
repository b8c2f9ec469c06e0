package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/userportal/gateway/internal/api/middleware"
	"github.com/userportal/gateway/internal/core/domain"
	"github.com/userportal/gateway/internal/core/validation"
)

// AuthHandler serves the authentication endpoints backing the login and
// registration forms.
type AuthHandler struct {
	now func() time.Time
}

// NewAuthHandler builds an AuthHandler. now is the clock used by the age
// gate; nil means time.Now.
func NewAuthHandler(now func() time.Time) *AuthHandler {
	if now == nil {
		now = time.Now
	}
	return &AuthHandler{now: now}
}

// Login authenticates against the upstream and establishes the session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	svc := middleware.CurrentSession(c)
	if _, err := svc.Login(c.Request().Context(), domain.Credentials{Email: req.Email, Password: req.Password}); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{User: svc.State().Profile})
}

// Register creates a new account upstream. The full field set is re-validated
// here; field errors are returned together, in declared field order.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  registerFailureResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	input := req.toDomain()
	if fe := validation.ValidateRegistration(input, h.now()); !fe.Valid() {
		return c.JSON(http.StatusBadRequest, registerFailureResponse{
			Error:  "validation failed",
			Fields: fe.Ordered(),
		})
	}

	svc := middleware.CurrentSession(c)
	res, err := svc.Register(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, res)
}

// ValidateField checks a single registration field as it is being edited, so
// the form can surface feedback before submit. Cross-field checks (password
// confirmation) only run on Register.
//
// @Summary      Validate a single registration field
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      validateFieldRequest  true  "Field and value"
// @Success      200   {object}  validateFieldResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/validate [post]
func (h *AuthHandler) ValidateField(c echo.Context) error {
	var req validateFieldRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	msg := validation.ValidateField(req.Field, req.Value, h.now())
	return c.JSON(http.StatusOK, validateFieldResponse{Valid: msg == "", Message: msg})
}

// Logout clears the session. Safe to call when already anonymous.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	middleware.CurrentSession(c).Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// Session reports the current session state for the client shell.
//
// @Summary      Current session state
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	state := middleware.CurrentSession(c).State()
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: state.Authenticated,
		Admin:         state.Admin,
		User:          state.Profile,
	})
}
