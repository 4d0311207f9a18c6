package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Deondre2002/Market/internal/middleware/auth"
)

type Deps struct {
	UserHandler    *UserHTTP
	ProductHandler *ProductHTTP
	OrderHandler   *OrderHTTP
	Gate           *auth.Gate
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = HTTPErrorHandler

	e.GET("/api/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	users := e.Group("/users")
	users.POST("/register", d.UserHandler.Register)
	users.POST("/login", d.UserHandler.Login)
	users.GET("/:username", d.UserHandler.GetUser)

	products := e.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/search", d.ProductHandler.SearchProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.POST("", d.ProductHandler.CreateProduct)
	products.PATCH("/:id", d.ProductHandler.PatchProduct)
	products.GET("/:id/orders", d.ProductHandler.OrdersForProduct, d.Gate.RequireLogin)

	orders := e.Group("/orders", d.Gate.RequireLogin)
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("", d.OrderHandler.ListOrders)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.POST("/:id/products", d.OrderHandler.AddProduct)
	orders.GET("/:id/products", d.OrderHandler.ListProducts)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "Route not found")
	})
}
