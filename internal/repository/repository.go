package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rocpay1889/baba-shoping/internal/domain"
)

// ErrNotFound возвращается, когда сущность не найдена
var ErrNotFound = errors.New("not found")

// Ключи сессионного хранилища
const (
	KeyUser      = "baba_user"
	KeyOrder     = "baba_order"
	KeyLastOrder = "baba_order_last"
	KeyPayment   = "baba_payment"
)

// KeyValueStore порт хранилища сессии: одно значение на логический ключ
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// TxManager абстракция транзакции: для in-memory глобальная блокировка записи, для sqlite BEGIN/COMMIT.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ProductFilter параметры фильтрации каталога
type ProductFilter struct {
	NameSubstring string
	Tag           string
	MinPrice      *int64
	MaxPrice      *int64
}

// CatalogRepository только чтение статического каталога
type CatalogRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ProductBundle, error)
	List(ctx context.Context, f ProductFilter) ([]domain.ProductBundle, error)
}

// GetJSON читает ключ и декодирует JSON в out
func GetJSON(ctx context.Context, kv KeyValueStore, key string, out any) error {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// PutJSON кодирует v и записывает под ключ
func PutJSON(ctx context.Context, kv KeyValueStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return kv.Set(ctx, key, raw)
}

func (f ProductFilter) match(p domain.ProductBundle) bool {
	if !containsIgnoreCase(p.Name, f.NameSubstring) {
		return false
	}
	if f.Tag != "" && !strings.EqualFold(p.Tag, f.Tag) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

// helper: case-insensitive contains
func containsIgnoreCase(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
