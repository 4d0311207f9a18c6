package service

import (
	"context"
	"fmt"

	"github.com/Deondre2002/Market/internal/models"
	"github.com/Deondre2002/Market/internal/repo"
	"github.com/Deondre2002/Market/internal/transport"
)

type OrderService struct {
	Repo *repo.GormRepo
}

// CreateOrder records an order for ownerID. The owner always comes
// from the authenticated caller, never from the request body. A
// missing note defaults to "".
func (s *OrderService) CreateOrder(ctx context.Context, req transport.CreateOrderRequest, ownerID uint) (*models.Order, error) {
	if req.Date == "" {
		return nil, fmt.Errorf("%w: date required", ErrValidation)
	}

	order := &models.Order{
		Date:   req.Date,
		Note:   req.Note,
		UserID: ownerID,
	}
	return s.Repo.CreateOrder(ctx, order)
}

func (s *OrderService) ListForUser(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.Repo.ListOrders(ctx, userID)
}

// GetOrder fetches by id without any ownership check; the handler
// layer compares the owner against the caller.
func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	return s.Repo.GetOrder(ctx, id)
}

// AddProduct inserts one line item. Existence and ownership of the
// order, and existence of the product, are gated by the caller.
func (s *OrderService) AddProduct(ctx context.Context, orderID, productID uint, quantity int) (*models.OrderProduct, error) {
	item := &models.OrderProduct{
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  uint(quantity),
	}
	return s.Repo.AddOrderProduct(ctx, item)
}

func (s *OrderService) ListProducts(ctx context.Context, orderID uint) ([]models.Product, error) {
	return s.Repo.OrderProducts(ctx, orderID)
}
