package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Deondre2002/Market/internal/logging"
	"github.com/Deondre2002/Market/internal/middleware/auth"
	"github.com/Deondre2002/Market/internal/models"
	"github.com/Deondre2002/Market/internal/mykafka"
	"github.com/Deondre2002/Market/internal/repo"
	"github.com/Deondre2002/Market/internal/service"
	"github.com/Deondre2002/Market/internal/transport"
)

type OrderHTTP struct {
	Orders  *service.OrderService
	Catalog *service.CatalogService
	Events  *mykafka.Producer
}

func (h *OrderHTTP) publish(c echo.Context, orderID uint, event map[string]interface{}) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Events.PublishEvent(ctx, "order_events", fmt.Sprint(orderID), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

// ownedOrder is the {load, 404, 403} pipeline shared by every
// order-scoped route.
func (h *OrderHTTP) ownedOrder(c echo.Context) (*models.Order, error) {
	id, err := paramID(c, "id")
	if err != nil {
		return nil, err
	}
	return ownedResource(c, "Order not found",
		func(ctx context.Context) (*models.Order, error) { return h.Orders.GetOrder(ctx, id) },
		func(o *models.Order) uint { return o.UserID },
	)
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid body")
	}

	order, err := h.Orders.CreateOrder(c.Request().Context(), req, auth.CallerID(c))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "Missing date")
		}
		return err
	}

	h.publish(c, order.ID, map[string]interface{}{
		"type":    "order_created",
		"orderID": order.ID,
		"userID":  order.UserID,
	})

	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	orders, err := h.Orders.ListForUser(c.Request().Context(), auth.CallerID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	order, err := h.ownedOrder(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) AddProduct(c echo.Context) error {
	order, err := h.ownedOrder(c)
	if err != nil {
		return err
	}

	var req transport.AddOrderProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid body")
	}
	if req.ProductID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing productId")
	}
	if req.Quantity <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Quantity must be a positive integer")
	}

	ctx := c.Request().Context()
	if _, err := h.Catalog.GetProduct(ctx, req.ProductID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Product not found")
		}
		return err
	}

	item, err := h.Orders.AddProduct(ctx, order.ID, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}

	h.publish(c, order.ID, map[string]interface{}{
		"type":      "order_product_added",
		"orderID":   order.ID,
		"productID": req.ProductID,
		"quantity":  req.Quantity,
	})

	return c.JSON(http.StatusCreated, item)
}

func (h *OrderHTTP) ListProducts(c echo.Context) error {
	order, err := h.ownedOrder(c)
	if err != nil {
		return err
	}

	products, err := h.Orders.ListProducts(c.Request().Context(), order.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}
