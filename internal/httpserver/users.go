package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Deondre2002/Market/internal/logging"
	"github.com/Deondre2002/Market/internal/models"
	"github.com/Deondre2002/Market/internal/mykafka"
	"github.com/Deondre2002/Market/internal/repo"
	"github.com/Deondre2002/Market/internal/service"
	"github.com/Deondre2002/Market/internal/transport"
)

type UserHTTP struct {
	Svc    *service.AuthService
	Events *mykafka.Producer
}

func (h *UserHTTP) publish(c echo.Context, user *models.User, eventType string) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	event := map[string]interface{}{
		"type":     eventType,
		"userID":   user.ID,
		"username": user.Username,
	}
	if err := h.Events.PublishEvent(ctx, "user_events", fmt.Sprint(user.ID), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *UserHTTP) Register(c echo.Context) error {
	var req transport.CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing username or password")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing username or password")
	}

	tok, user, err := h.Svc.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return echo.NewHTTPError(http.StatusConflict, "Username already taken")
		}
		return err
	}

	h.publish(c, user, "user_registered")

	return c.JSON(http.StatusCreated, transport.TokenResponse{Token: tok})
}

func (h *UserHTTP) Login(c echo.Context) error {
	var req transport.CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing username or password")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing username or password")
	}

	tok, user, err := h.Svc.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid credentials")
		}
		return err
	}

	h.publish(c, user, "user_logged_in")

	return c.JSON(http.StatusOK, transport.TokenResponse{Token: tok})
}

func (h *UserHTTP) GetUser(c echo.Context) error {
	user, err := h.Svc.GetUser(c.Request().Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"user": user})
}
