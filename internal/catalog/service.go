package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/gamepoint-mx/storefront/internal/models"
	"github.com/gamepoint-mx/storefront/internal/transport"
)

var (
	ErrValidation = errors.New("validation") // 400
	ErrNotFound   = errors.New("not found")  // 404
)

type Service struct {
	Repo *GormRepo
}

func (s *Service) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx)
}

func (s *Service) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}
	if req.Platform == "" {
		return nil, fmt.Errorf("%w: platform required", ErrValidation)
	}
	if req.Duration == "" {
		return nil, fmt.Errorf("%w: duration required", ErrValidation)
	}
	if req.Price == nil {
		return nil, fmt.Errorf("%w: price required", ErrValidation)
	}
	if req.Stock == nil {
		return nil, fmt.Errorf("%w: stock required", ErrValidation)
	}
	if req.ImageURL == "" {
		return nil, fmt.Errorf("%w: image_url required", ErrValidation)
	}

	prod := models.Product{
		Name:     req.Name,
		Platform: req.Platform,
		Duration: req.Duration,
		Price:    *req.Price,
		Stock:    *req.Stock,
		ImageURL: req.ImageURL,
	}
	// price_before is kept only when it actually marks a discount.
	if req.PriceBefore != nil && *req.PriceBefore > 0 {
		prod.PriceBefore = req.PriceBefore
	}

	return s.Repo.CreateProduct(ctx, &prod)
}

// PatchProduct merges only the fields present in the request; every
// absent field keeps its stored value.
func (s *Service) PatchProduct(ctx context.Context, req transport.PatchProductRequest, id int) (*models.Product, error) {
	prod, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		prod.Name = *req.Name
	}
	if req.Platform != nil {
		prod.Platform = *req.Platform
	}
	if req.Duration != nil {
		prod.Duration = *req.Duration
	}
	if req.Price != nil {
		prod.Price = *req.Price
	}
	if req.PriceBefore != nil {
		if *req.PriceBefore > 0 {
			prod.PriceBefore = req.PriceBefore
		} else {
			prod.PriceBefore = nil
		}
	}
	if req.Stock != nil {
		prod.Stock = *req.Stock
	}
	if req.ImageURL != nil {
		prod.ImageURL = *req.ImageURL
	}

	if err := s.Repo.SaveProduct(ctx, prod); err != nil {
		return nil, err
	}

	return prod, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int) error {
	return s.Repo.DeleteProduct(ctx, id)
}
