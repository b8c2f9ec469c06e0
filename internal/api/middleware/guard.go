package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Paths the guard redirects to. LoginPath receives anonymous visitors;
// DashboardPath receives authenticated non-admins hitting admin routes.
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

const waitingBody = `<!doctype html><title>Loading</title><p>Loading…</p>`

// Guard gates protected routes on the resolved session state. It is a pure
// function of that state, re-evaluated on every request:
//
//   - session still restoring: answer a neutral waiting page and block the
//     handler;
//   - anonymous: redirect to the login entry point;
//   - authenticated but not admin on an admin route: redirect to the default
//     authenticated landing page;
//   - otherwise: pass through unchanged.
func Guard(requireAdmin bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			svc := CurrentSession(c)
			if svc == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "no session resolved")
			}

			state := svc.State()
			switch {
			case state.Loading:
				c.Response().Header().Set("Retry-After", "1")
				return c.HTML(http.StatusServiceUnavailable, waitingBody)
			case !state.Authenticated:
				return c.Redirect(http.StatusFound, LoginPath)
			case requireAdmin && !state.Admin:
				return c.Redirect(http.StatusFound, DashboardPath)
			default:
				return next(c)
			}
		}
	}
}
