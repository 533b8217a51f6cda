// Package service provides the product listing business logic.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/abgdnv/products/internal/product/currency"
	perrors "github.com/abgdnv/products/internal/product/errors"
	"github.com/abgdnv/products/internal/product/store"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	DefaultPageStart int32 = 0
	DefaultPageSize  int32 = 5
	DefaultCurrency        = string(currency.GBP)
)

// ProductService defines the product listing operation.
type ProductService interface {
	// List returns one page of products priced in the requested currency.
	// Returns ErrInvalidParameters, ErrInvalidCurrency or an error wrapping ErrProviderFailure.
	List(ctx context.Context, req PageRequest) ([]ProductDto, error)
}

// PageRequest is the untrusted listing input taken from the query string.
type PageRequest struct {
	PageStart int32 `validate:"gte=0"`
	PageSize  int32 `validate:"gt=0"`
	Currency  string
}

// NewPageRequest returns a PageRequest filled with the listing defaults.
func NewPageRequest() PageRequest {
	return PageRequest{
		PageStart: DefaultPageStart,
		PageSize:  DefaultPageSize,
		Currency:  DefaultCurrency,
	}
}

// ProductDto represents a listed product.
// PriceInPounds keeps its historical name and carries euros when EUR was requested.
type ProductDto struct {
	Name          string
	PriceInPounds decimal.Decimal
}

// MarshalJSON writes the price as a JSON number with at least two fraction digits.
func (p ProductDto) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name          string      `json:"name"`
		PriceInPounds json.Number `json:"priceInPounds"`
	}{
		Name:          p.Name,
		PriceInPounds: json.Number(formatPrice(p.PriceInPounds)),
	})
}

func formatPrice(d decimal.Decimal) string {
	return d.StringFixed(max(2, -d.Exponent()))
}

// service implements ProductService on top of a ProductLister.
type service struct {
	lister    store.ProductLister
	converter *currency.Converter
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewService creates a new instance of ProductService with the provided lister.
func NewService(lister store.ProductLister, logger *slog.Logger) ProductService {
	return &service{
		lister:    lister,
		converter: currency.NewConverter(),
		validate:  validator.New(),
		logger:    logger.With("component", "service"),
	}
}

// List validates req, fetches the page and converts prices to euros when asked to.
func (s *service) List(ctx context.Context, req PageRequest) ([]ProductDto, error) {
	if err := s.validate.Struct(req); err != nil {
		s.logger.WarnContext(ctx, "Invalid pagination parameters", "pageStart", req.PageStart, "pageSize", req.PageSize)
		return nil, fmt.Errorf("%w: pageStart=%d pageSize=%d", perrors.ErrInvalidParameters, req.PageStart, req.PageSize)
	}
	cur, err := currency.Parse(req.Currency)
	if err != nil {
		s.logger.WarnContext(ctx, "Unsupported currency requested",
			"pageStart", req.PageStart, "pageSize", req.PageSize, "currency", req.Currency)
		return nil, err
	}

	products, err := s.lister.List(ctx, req.PageStart, req.PageSize)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to retrieve products", "pageStart", req.PageStart, "pageSize", req.PageSize, "error", err)
		return nil, fmt.Errorf("%w: %w", perrors.ErrProviderFailure, err)
	}

	if cur == currency.EUR {
		products = s.converter.ConvertAll(products)
		s.logger.InfoContext(ctx, "Converted product prices", "currency", cur, "count", len(products))
	}
	return toDtos(products), nil
}

// toDtos converts store products to ProductDtos, never returning nil.
func toDtos(products []store.Product) []ProductDto {
	dtos := make([]ProductDto, len(products))
	for i, p := range products {
		dtos[i] = ProductDto{Name: p.Name, PriceInPounds: p.PriceInPounds}
	}
	return dtos
}
