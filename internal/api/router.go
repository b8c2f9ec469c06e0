package api

import (
	"context"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/userportal/gateway/internal/api/handler"
	"github.com/userportal/gateway/internal/api/middleware"
	"github.com/userportal/gateway/internal/core/ports"
	"github.com/userportal/gateway/internal/core/service"
	"github.com/userportal/gateway/internal/upstream"
)

// Store combines the session-store port with the health probe surface the
// router needs from it.
type Store interface {
	ports.SessionStore
	handler.Pinger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cookieSecret string, store Store, client *upstream.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(middleware.Session(cookieSecret, store, client, log))

	// Any 401 from any upstream call clears the caller's session, exactly as
	// an explicit logout would. Redirecting afterwards is the client's job.
	client.OnUnauthorized = func(ctx context.Context) {
		if svc := service.FromContext(ctx); svc != nil {
			svc.Invalidate(ctx)
		}
	}

	authHandler := handler.NewAuthHandler(nil)
	userHandler := handler.NewUserHandler(client)
	postHandler := handler.NewPostHandler(client)

	guard := middleware.Guard(false)
	adminGuard := middleware.Guard(true)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/validate", authHandler.ValidateField)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/session", authHandler.Session)

	// --- Protected routes ---
	e.GET("/v1/posts", postHandler.List, guard)
	e.POST("/v1/posts", postHandler.Create, guard)
	e.GET("/v1/users", userHandler.List, adminGuard)
	e.DELETE("/v1/users/:id", userHandler.Delete, adminGuard)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(store, client)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
