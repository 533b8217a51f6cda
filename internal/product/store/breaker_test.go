package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/abgdnv/products/pkg/config"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockLister struct {
	mock.Mock
}

func (m *mockLister) List(ctx context.Context, pageStart, pageSize int32) ([]Product, error) {
	args := m.Called(ctx, pageStart, pageSize)
	products, _ := args.Get(0).([]Product)
	return products, args.Error(1)
}

func breakerConfig() config.CircuitBreakerConfig {
	return config.CircuitBreakerConfig{
		Enabled:             true,
		ConsecutiveFailures: 2,
		ErrorRatePercent:    50,
		OpenTimeout:         time.Minute,
		HalfOpenRequests:    1,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Test_BreakerLister_PassesThrough(t *testing.T) {
	// given
	next := new(mockLister)
	expected := SampleProducts()[:2]
	next.On("List", mock.Anything, int32(0), int32(2)).Return(expected, nil).Once()
	b := NewBreakerLister(next, breakerConfig(), discardLogger())

	// when
	page, err := b.List(context.Background(), 0, 2)

	// then
	require.NoError(t, err)
	assert.Equal(t, expected, page)
	next.AssertExpectations(t)
}

func Test_BreakerLister_OpensAfterConsecutiveFailures(t *testing.T) {
	// given
	next := new(mockLister)
	dbErr := errors.New("connection refused")
	next.On("List", mock.Anything, int32(0), int32(5)).Return(nil, dbErr).Times(3)
	b := NewBreakerLister(next, breakerConfig(), discardLogger())

	// when
	for i := 0; i < 3; i++ {
		_, err := b.List(context.Background(), 0, 5)
		require.ErrorIs(t, err, dbErr)
	}
	_, err := b.List(context.Background(), 0, 5)

	// then
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	next.AssertNumberOfCalls(t, "List", 3)
}

func Test_BreakerLister_CanceledCallsDoNotTrip(t *testing.T) {
	// given
	next := new(mockLister)
	next.On("List", mock.Anything, int32(0), int32(5)).Return(nil, context.Canceled).Times(4)
	b := NewBreakerLister(next, breakerConfig(), discardLogger())

	// when
	var err error
	for i := 0; i < 4; i++ {
		_, err = b.List(context.Background(), 0, 5)
	}

	// then
	assert.ErrorIs(t, err, context.Canceled)
	next.AssertNumberOfCalls(t, "List", 4)
}
