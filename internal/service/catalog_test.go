package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Deondre2002/Market/internal/transport"
)

func TestCreateProduct_Validation(t *testing.T) {
	svc := &CatalogService{Repo: newTestRepo(t)}
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, transport.CreateProductRequest{Price: 1})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateProduct(ctx, transport.CreateProductRequest{Name: "widget", Price: -1})
	require.ErrorIs(t, err, ErrValidation)

	prod, err := svc.CreateProduct(ctx, transport.CreateProductRequest{Name: "widget", Price: 1, Description: "d"})
	require.NoError(t, err)
	require.NotZero(t, prod.ID)
}

func TestPatchProduct_Validation(t *testing.T) {
	svc := &CatalogService{Repo: newTestRepo(t)}
	ctx := context.Background()

	prod, err := svc.CreateProduct(ctx, transport.CreateProductRequest{Name: "widget", Price: 1})
	require.NoError(t, err)

	bad := -1.0
	_, err = svc.PatchProduct(ctx, prod.ID, transport.PatchProductRequest{Price: &bad})
	require.ErrorIs(t, err, ErrValidation)

	empty := ""
	_, err = svc.PatchProduct(ctx, prod.ID, transport.PatchProductRequest{Name: &empty})
	require.ErrorIs(t, err, ErrValidation)
}
