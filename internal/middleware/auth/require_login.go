package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Deondre2002/Market/internal/logging"
	"github.com/Deondre2002/Market/internal/token"
)

const (
	userIDKey   = "userID"
	usernameKey = "username"
)

// Gate guards routes behind a valid bearer token. Every rejection is
// the same generic 401; the exact failure kind goes to the log only.
type Gate struct {
	Tokens *token.Issuer
}

func (g *Gate) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		l := logging.FromContext(c.Request().Context()).With("mw", "auth")

		header := c.Request().Header.Get(echo.HeaderAuthorization)
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			l.Warn("token_rejected", "reason", "missing bearer token")
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}

		claims, err := g.Tokens.Validate(raw)
		if err != nil {
			l.Warn("token_rejected", "reason", err.Error())
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}

		id, err := claims.UserID()
		if err != nil {
			l.Warn("token_rejected", "reason", err.Error())
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}

		c.Set(userIDKey, id)
		c.Set(usernameKey, claims.Username)
		return next(c)
	}
}

// CallerID returns the authenticated user id set by RequireLogin.
func CallerID(c echo.Context) uint {
	if id, ok := c.Get(userIDKey).(uint); ok {
		return id
	}
	return 0
}

func CallerUsername(c echo.Context) string {
	if name, ok := c.Get(usernameKey).(string); ok {
		return name
	}
	return ""
}
