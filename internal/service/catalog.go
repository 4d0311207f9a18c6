package service

import (
	"context"
	"fmt"

	"github.com/Deondre2002/Market/internal/models"
	"github.com/Deondre2002/Market/internal/repo"
	"github.com/Deondre2002/Market/internal/transport"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}

	prod := &models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
	}
	return s.Repo.CreateProduct(ctx, prod)
}

func (s *CatalogService) PatchProduct(ctx context.Context, id uint, req transport.PatchProductRequest) (*models.Product, error) {
	if req.Price != nil && *req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if req.Name != nil && *req.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}

	return s.Repo.PatchProduct(ctx, id, req)
}

func (s *CatalogService) OrdersForProduct(ctx context.Context, productID, userID uint) ([]models.Order, error) {
	return s.Repo.OrdersForProduct(ctx, productID, userID)
}
