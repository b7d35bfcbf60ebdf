package service

import (
	"context"
	"errors"

	"github.com/rocpay1889/baba-shoping/internal/domain"
	"github.com/rocpay1889/baba-shoping/internal/repository"
)

// ProductService чтение каталога комбо-наборов
type ProductService struct {
	repo repository.CatalogRepository
}

func NewProductService(repo repository.CatalogRepository) *ProductService {
	return &ProductService{repo: repo}
}

var ErrInvalidInput = errors.New("invalid input")

func (s *ProductService) GetByID(ctx context.Context, id int64) (*domain.ProductBundle, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context, f repository.ProductFilter) ([]domain.ProductBundle, error) {
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return nil, ErrInvalidInput
	}
	return s.repo.List(ctx, f)
}
