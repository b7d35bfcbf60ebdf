package repository

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/rocpay1889/baba-shoping/internal/domain"
)

//go:embed data/catalog.yaml
var defaultCatalog []byte

// MemoryCatalog неизменяемый каталог комбо-наборов
type MemoryCatalog struct {
	byID  map[int64]domain.ProductBundle
	order []int64
}

var _ CatalogRepository = (*MemoryCatalog)(nil)

type catalogFile struct {
	Bundles []domain.ProductBundle `yaml:"bundles"`
}

// DefaultCatalog встроенный каталог магазина
func DefaultCatalog() (*MemoryCatalog, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalog читает каталог из YAML-файла
func LoadCatalog(path string) (*MemoryCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*MemoryCatalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	c := &MemoryCatalog{byID: make(map[int64]domain.ProductBundle, len(f.Bundles))}
	for _, b := range f.Bundles {
		if b.ID <= 0 || b.Name == "" || b.Price < 0 {
			return nil, fmt.Errorf("catalog: invalid bundle %d %q", b.ID, b.Name)
		}
		if _, dup := c.byID[b.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate bundle id %d", b.ID)
		}
		c.byID[b.ID] = b
		c.order = append(c.order, b.ID)
	}
	sort.Slice(c.order, func(i, j int) bool { return c.order[i] < c.order[j] })
	return c, nil
}

func (c *MemoryCatalog) GetByID(_ context.Context, id int64) (*domain.ProductBundle, error) {
	b, ok := c.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := cloneBundle(b)
	return &cp, nil
}

func (c *MemoryCatalog) List(_ context.Context, f ProductFilter) ([]domain.ProductBundle, error) {
	out := make([]domain.ProductBundle, 0, len(c.order))
	for _, id := range c.order {
		b := c.byID[id]
		if !f.match(b) {
			continue
		}
		out = append(out, cloneBundle(b))
	}
	return out, nil
}

// cloneBundle detaches slices so callers cannot mutate the catalog
func cloneBundle(b domain.ProductBundle) domain.ProductBundle {
	b.Items = slices.Clone(b.Items)
	b.DressImages = slices.Clone(b.DressImages)
	return b
}
