package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Deondre2002/Market/internal/logging"
	"github.com/Deondre2002/Market/internal/middleware/auth"
	"github.com/Deondre2002/Market/internal/models"
	"github.com/Deondre2002/Market/internal/mykafka"
	"github.com/Deondre2002/Market/internal/repo"
	"github.com/Deondre2002/Market/internal/search"
	"github.com/Deondre2002/Market/internal/service"
	"github.com/Deondre2002/Market/internal/transport"
	"github.com/Deondre2002/Market/internal/util"
)

type ProductHTTP struct {
	Svc    *service.CatalogService
	Search *search.Service
	Events *mykafka.Producer
}

func (h *ProductHTTP) publish(c echo.Context, prod *models.Product, eventType string) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	event := map[string]interface{}{
		"type":      eventType,
		"productID": prod.ID,
		"name":      prod.Name,
	}
	if err := h.Events.PublishEvent(ctx, "product_events", fmt.Sprint(prod.ID), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *ProductHTTP) index(c echo.Context, prod *models.Product) {
	if h.Search == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Search.IndexProduct(ctx, prod); err != nil {
		logging.FromContext(c.Request().Context()).Error("es index error", "error", err)
	}
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	products, err := h.Svc.GetProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.Svc.GetProduct(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Product not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid body")
	}

	prod, err := h.Svc.CreateProduct(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	h.publish(c, prod, "product_created")
	h.index(c, prod)

	return c.JSON(http.StatusCreated, prod)
}

func (h *ProductHTTP) PatchProduct(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req transport.PatchProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid body")
	}

	prod, err := h.Svc.PatchProduct(c.Request().Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, repo.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Product not found")
		}
		return err
	}

	if !req.Empty() {
		h.publish(c, prod, "product_updated")
		h.index(c, prod)
	}

	return c.JSON(http.StatusOK, prod)
}

// OrdersForProduct lists the caller's orders containing the product.
func (h *ProductHTTP) OrdersForProduct(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	orders, err := h.Svc.OrdersForProduct(c.Request().Context(), id, auth.CallerID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *ProductHTTP) SearchProducts(c echo.Context) error {
	if h.Search == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Search is not configured")
	}

	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing search query")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	from, size := util.Calculate(page, size)

	total, products, err := h.Search.Search(c.Request().Context(), q, from, size)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"total": total, "products": products})
}
