package store

import (
	"context"
	"errors"
	"log/slog"

	"github.com/abgdnv/products/pkg/config"
	"github.com/sony/gobreaker/v2"
)

// BreakerLister wraps a ProductLister in a circuit breaker.
// While the breaker is open List fails fast with gobreaker.ErrOpenState without calling the wrapped lister.
type BreakerLister struct {
	next ProductLister
	cb   *gobreaker.CircuitBreaker[[]Product]
}

// NewBreakerLister creates a circuit breaker around next configured by cfg.
func NewBreakerLister(next ProductLister, cfg config.CircuitBreakerConfig, logger *slog.Logger) *BreakerLister {
	logger = logger.With("component", "breaker")
	st := gobreaker.Settings{
		Name:        "product-lister",
		MaxRequests: cfg.HalfOpenRequests,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > cfg.ConsecutiveFailures ||
				(counts.TotalSuccesses+counts.TotalFailures > cfg.ConsecutiveFailures &&
					float64(counts.TotalFailures)/float64(counts.TotalSuccesses+counts.TotalFailures)*100 > float64(cfg.ErrorRatePercent))
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
		IsSuccessful: func(err error) bool {
			// a caller giving up is not a store failure
			return err == nil || errors.Is(err, context.Canceled)
		},
	}
	return &BreakerLister{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[[]Product](st),
	}
}

// List calls the wrapped lister through the circuit breaker.
func (b *BreakerLister) List(ctx context.Context, pageStart, pageSize int32) ([]Product, error) {
	return b.cb.Execute(func() ([]Product, error) {
		return b.next.List(ctx, pageStart, pageSize)
	})
}
