package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userportal/gateway/internal/core/ports"
	"github.com/userportal/gateway/internal/core/service"
	"github.com/userportal/gateway/internal/infrastructure/sessionstore"
)

const (
	// CookieName carries the signed session reference. The cookie holds only
	// a session id; the token and profile stay server-side in the store.
	CookieName = "portal_session"

	contextKeySession = "session"
)

// Session resolves the caller's session on every request: verify the signed
// session cookie (minting a fresh one on first visit), restore the session
// state from its namespaced slice of the store, and expose the session
// service on both the echo context and the request context. The latter is
// what the upstream client's 401 hook reads.
func Session(secret string, store ports.SessionStore, auth ports.AuthAPI, log zerolog.Logger) echo.MiddlewareFunc {
	key := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := sessionID(c, key)
			if sid == "" {
				sid = newSessionID()
				signed, err := mintCookie(key, sid)
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "could not establish session")
				}
				c.SetCookie(&http.Cookie{
					Name:     CookieName,
					Value:    signed,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			svc := service.NewSessionService(sessionstore.Namespaced(store, sid), auth, log)
			svc.Restore(c.Request().Context())

			c.Set(contextKeySession, svc)
			req := c.Request()
			c.SetRequest(req.WithContext(service.WithSession(req.Context(), svc)))

			return next(c)
		}
	}
}

// CurrentSession returns the session service resolved for this request, nil
// when the Session middleware did not run.
func CurrentSession(c echo.Context) *service.SessionService {
	svc, _ := c.Get(contextKeySession).(*service.SessionService)
	return svc
}

// sessionID extracts and verifies the session id from the request cookie.
// Any parse or signature failure yields "", which makes the caller mint a
// fresh session rather than reject the request.
func sessionID(c echo.Context, key []byte) string {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return key, nil
	})
	if err != nil || !tkn.Valid {
		return ""
	}

	sid, _ := claims["sid"].(string)
	return sid
}

func mintCookie(key []byte, sid string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sid": sid})
	return t.SignedString(key)
}

func newSessionID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
