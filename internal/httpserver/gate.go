package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Deondre2002/Market/internal/middleware/auth"
	"github.com/Deondre2002/Market/internal/repo"
)

func paramID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}

// ownedResource loads a caller-scoped resource: 404 when it does not
// exist, 403 when it belongs to someone else. Existence is checked
// before ownership so a non-owner cannot probe which ids exist beyond
// their own.
func ownedResource[T any](c echo.Context, notFoundMsg string, load func(context.Context) (*T, error), ownerID func(*T) uint) (*T, error) {
	res, err := load(c.Request().Context())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, notFoundMsg)
		}
		return nil, err
	}
	if ownerID(res) != auth.CallerID(c) {
		return nil, echo.NewHTTPError(http.StatusForbidden, "Forbidden")
	}
	return res, nil
}
