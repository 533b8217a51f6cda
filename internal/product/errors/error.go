// Package errors provides the error values returned by the product listing.
package errors

import "errors"

var (
	// ErrInvalidParameters is returned when pageStart is negative or pageSize is not positive.
	ErrInvalidParameters = errors.New("invalid request parameters")
	// ErrInvalidCurrency is returned when the requested currency is neither GBP nor EUR.
	ErrInvalidCurrency = errors.New("invalid currency")
	// ErrProviderFailure wraps any failure reported by the product lister.
	ErrProviderFailure = errors.New("product provider failure")
)
