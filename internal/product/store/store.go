// Package store provides the data access contract for listing products and its implementations.
package store

import (
	"context"

	"github.com/shopspring/decimal"
)

// Product is a named item priced in pounds sterling.
// Values are never mutated once returned by a ProductLister.
type Product struct {
	Name          string
	PriceInPounds decimal.Decimal
}

// ProductLister returns one page of products.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductLister interface {
	// List returns at most pageSize products starting at offset pageStart, in a stable order.
	// Returns an empty slice when pageStart is past the end of the catalogue.
	List(ctx context.Context, pageStart, pageSize int32) ([]Product, error)
}
