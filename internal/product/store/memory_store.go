package store

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
)

// InMemoryStore implements ProductLister over a fixed slice of products.
type InMemoryStore struct {
	mu       sync.RWMutex
	products []Product
}

// NewInMemoryStore creates a store holding the given products in order.
func NewInMemoryStore(products ...Product) *InMemoryStore {
	return &InMemoryStore{
		products: append([]Product(nil), products...),
	}
}

// SampleProducts returns the catalogue the service starts with when no database is configured.
func SampleProducts() []Product {
	return []Product{
		{Name: "Sausage Roll", PriceInPounds: decimal.RequireFromString("1.00")},
		{Name: "Vegan Sausage Roll", PriceInPounds: decimal.RequireFromString("1.10")},
		{Name: "Steak Bake", PriceInPounds: decimal.RequireFromString("1.20")},
		{Name: "Yum Yum", PriceInPounds: decimal.RequireFromString("0.70")},
		{Name: "Pink Jammie", PriceInPounds: decimal.RequireFromString("0.50")},
	}
}

// List returns a copy of the requested page.
func (s *InMemoryStore) List(ctx context.Context, pageStart, pageSize int32) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := int(pageStart)
	if start < 0 || start >= len(s.products) {
		return []Product{}, nil
	}
	end := len(s.products)
	if pageSize >= 0 && int(pageSize) < end-start {
		end = start + int(pageSize)
	}
	page := make([]Product, end-start)
	copy(page, s.products[start:end])
	return page, nil
}
