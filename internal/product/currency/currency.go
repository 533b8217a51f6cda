// Package currency converts product prices between the supported currencies.
package currency

import (
	"fmt"
	"strings"

	perrors "github.com/abgdnv/products/internal/product/errors"
	"github.com/abgdnv/products/internal/product/store"
	"github.com/shopspring/decimal"
)

// Currency is an ISO 4217 code accepted by the product listing.
type Currency string

const (
	GBP Currency = "GBP"
	EUR Currency = "EUR"
)

// PoundsToEuroRate is the fixed GBP to EUR exchange rate.
var PoundsToEuroRate = decimal.RequireFromString("1.11")

// Parse upper-cases code and returns the matching Currency.
// Surrounding whitespace is not trimmed, so " eur" is rejected.
func Parse(code string) (Currency, error) {
	switch c := Currency(strings.ToUpper(code)); c {
	case GBP, EUR:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", perrors.ErrInvalidCurrency, code)
	}
}

// Converter turns pound prices into euro prices at a fixed rate.
type Converter struct {
	rate decimal.Decimal
}

// NewConverter creates a Converter using PoundsToEuroRate.
func NewConverter() *Converter {
	return &Converter{rate: PoundsToEuroRate}
}

// Convert returns a copy of p with its price multiplied by the rate and rounded half away from zero to 2 places.
func (c *Converter) Convert(p store.Product) store.Product {
	return store.Product{
		Name:          p.Name,
		PriceInPounds: p.PriceInPounds.Mul(c.rate).Round(2),
	}
}

// ConvertAll converts every product, keeping order and length.
func (c *Converter) ConvertAll(products []store.Product) []store.Product {
	converted := make([]store.Product, len(products))
	for i, p := range products {
		converted[i] = c.Convert(p)
	}
	return converted
}
