package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Deondre2002/Market/internal/models"
)

func TestAddOrderProduct_DuplicatesAccumulate(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	order, err := r.CreateOrder(ctx, &models.Order{Date: "2024-01-01", UserID: 1})
	require.NoError(t, err)
	prod, err := r.CreateProduct(ctx, &models.Product{Name: "widget", Price: 9.99})
	require.NoError(t, err)

	first, err := r.AddOrderProduct(ctx, &models.OrderProduct{OrderID: order.ID, ProductID: prod.ID, Quantity: 1})
	require.NoError(t, err)
	second, err := r.AddOrderProduct(ctx, &models.OrderProduct{OrderID: order.ID, ProductID: prod.ID, Quantity: 3})
	require.NoError(t, err)

	require.NotEqual(t, first.ID, second.ID)

	// Each line item shows up independently in the join.
	products, err := r.OrderProducts(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, prod.ID, products[0].ID)
	require.Equal(t, prod.ID, products[1].ID)
}

func TestListOrders_ScopedToUser(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.CreateOrder(ctx, &models.Order{Date: "2024-01-01", UserID: 1})
	require.NoError(t, err)
	_, err = r.CreateOrder(ctx, &models.Order{Date: "2024-01-02", UserID: 1})
	require.NoError(t, err)
	_, err = r.CreateOrder(ctx, &models.Order{Date: "2024-01-03", UserID: 2})
	require.NoError(t, err)

	orders, err := r.ListOrders(ctx, 1)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, o := range orders {
		require.EqualValues(t, 1, o.UserID)
	}
}

func TestOrdersForProduct_ScopedToUser(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	prod, err := r.CreateProduct(ctx, &models.Product{Name: "widget", Price: 1})
	require.NoError(t, err)

	mine, err := r.CreateOrder(ctx, &models.Order{Date: "2024-01-01", UserID: 1})
	require.NoError(t, err)
	theirs, err := r.CreateOrder(ctx, &models.Order{Date: "2024-01-02", UserID: 2})
	require.NoError(t, err)

	_, err = r.AddOrderProduct(ctx, &models.OrderProduct{OrderID: mine.ID, ProductID: prod.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = r.AddOrderProduct(ctx, &models.OrderProduct{OrderID: theirs.ID, ProductID: prod.ID, Quantity: 1})
	require.NoError(t, err)

	orders, err := r.OrdersForProduct(ctx, prod.ID, 1)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, mine.ID, orders[0].ID)
}

func TestGetOrder_NotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.GetOrder(context.Background(), 99)
	require.ErrorIs(t, err, ErrNotFound)
}
