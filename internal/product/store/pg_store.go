package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const listProducts = `SELECT name, price_in_pounds::text
FROM products
ORDER BY id
LIMIT $1 OFFSET $2`

// PgStore implements ProductLister using PostgreSQL as the data store.
type PgStore struct {
	db *pgxpool.Pool
}

// NewPgStore creates a new instance of ProductLister using a PostgreSQL connection pool.
func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{db: dbp}
}

// List retrieves one page of products ordered by id.
func (p *PgStore) List(ctx context.Context, pageStart, pageSize int32) ([]Product, error) {
	rows, err := p.db.Query(ctx, listProducts, pageSize, pageStart)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	products, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}
	if products == nil {
		products = []Product{}
	}
	return products, nil
}

// scanProduct reads the numeric price as text so no precision is lost on the way to decimal.Decimal.
func scanProduct(row pgx.CollectableRow) (Product, error) {
	var (
		name  string
		price string
	)
	if err := row.Scan(&name, &price); err != nil {
		return Product{}, err
	}
	amount, err := decimal.NewFromString(price)
	if err != nil {
		return Product{}, fmt.Errorf("invalid price %q for product %q: %w", price, name, err)
	}
	return Product{Name: name, PriceInPounds: amount}, nil
}
