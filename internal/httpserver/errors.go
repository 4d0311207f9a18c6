package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Deondre2002/Market/internal/logging"
)

// HTTPErrorHandler renders every error as {"error": "..."}. Anything
// a handler did not classify becomes a generic 500 with the detail
// kept in the log.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		logging.FromContext(c.Request().Context()).Error("unhandled error", "error", err)
		he = echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}

	msg, ok := he.Message.(string)
	if !ok {
		msg = http.StatusText(he.Code)
	}
	if he.Code >= http.StatusInternalServerError {
		msg = "Internal server error"
	}

	if err := c.JSON(he.Code, echo.Map{"error": msg}); err != nil {
		c.Logger().Error(err)
	}
}
