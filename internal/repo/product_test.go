package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Deondre2002/Market/internal/models"
	"github.com/Deondre2002/Market/internal/transport"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestPatchProduct_TypedSetters(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	prod, err := r.CreateProduct(ctx, &models.Product{Name: "widget", Price: 10, Description: "old"})
	require.NoError(t, err)

	updated, err := r.PatchProduct(ctx, prod.ID, transport.PatchProductRequest{
		Price:       floatPtr(12.5),
		Description: strPtr("new"),
	})
	require.NoError(t, err)

	require.Equal(t, "widget", updated.Name)
	require.Equal(t, 12.5, updated.Price)
	require.Equal(t, "new", updated.Description)
}

func TestPatchProduct_EmptyPatchIsNoOp(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	prod, err := r.CreateProduct(ctx, &models.Product{Name: "widget", Price: 10, Description: "old"})
	require.NoError(t, err)

	got, err := r.PatchProduct(ctx, prod.ID, transport.PatchProductRequest{})
	require.NoError(t, err)
	require.Equal(t, *prod, *got)

	stored, err := r.GetProduct(ctx, prod.ID)
	require.NoError(t, err)
	require.Equal(t, *prod, *stored)
}

func TestPatchProduct_NotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.PatchProduct(context.Background(), 99, transport.PatchProductRequest{Name: strPtr("x")})
	require.ErrorIs(t, err, ErrNotFound)
}
