package service

import (
	"context"
	"slices"
	"sync"

	"github.com/rocpay1889/baba-shoping/internal/domain"
	"github.com/rocpay1889/baba-shoping/internal/repository"
)

// CartService корзина на один слот: новый выбор заменяет старый
type CartService struct {
	mu      sync.RWMutex
	item    *domain.CartItem
	catalog repository.CatalogRepository
}

func NewCartService(catalog repository.CatalogRepository) *CartService {
	return &CartService{catalog: catalog}
}

// SetSelection всегда успешен
func (s *CartService) SetSelection(item domain.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.item = &item
}

func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.item = nil
}

// Current возвращает копию содержимого или nil, если корзина пуста
func (s *CartService) Current() *domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.item == nil {
		return nil
	}
	cp := *s.item
	return &cp
}

func (s *CartService) IsEmpty() bool { return s.Current() == nil }

// AddBundle находит набор в каталоге и кладёт его в корзину с размерами
func (s *CartService) AddBundle(ctx context.Context, bundleID int64, size domain.SizeSelection) (*domain.CartItem, error) {
	if bundleID <= 0 {
		return nil, ErrInvalidInput
	}
	size, err := normalizeSize(size)
	if err != nil {
		return nil, err
	}
	b, err := s.catalog.GetByID(ctx, bundleID)
	if err != nil {
		return nil, err
	}
	item := domain.CartItem{Bundle: *b, Size: size}
	s.SetSelection(item)
	return &item, nil
}

func normalizeSize(size domain.SizeSelection) (domain.SizeSelection, error) {
	if size.Dress == "" {
		size.Dress = domain.DefaultDressSize
	}
	if size.Shoes == "" {
		size.Shoes = domain.DefaultShoeSize
	}
	if !slices.Contains(domain.DressSizes, size.Dress) || !slices.Contains(domain.ShoeSizes, size.Shoes) {
		return size, &ValidationError{Field: "selected_size", Message: "unsupported size"}
	}
	return size, nil
}
