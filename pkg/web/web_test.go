package web

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abgdnv/products/pkg/logger"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func Test_QueryInt32(t *testing.T) {
	testCases := []struct {
		name        string
		query       string
		expected    int32
		expectError bool
	}{
		{name: "absent uses default", query: "", expected: 5},
		{name: "empty uses default", query: "?size=", expected: 5},
		{name: "positive", query: "?size=12", expected: 12},
		{name: "negative", query: "?size=-3", expected: -3},
		{name: "not a number", query: "?size=abc", expectError: true},
		{name: "fraction", query: "?size=1.5", expectError: true},
		{name: "overflows int32", query: "?size=2147483648", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			req := httptest.NewRequest(http.MethodGet, "/product"+tc.query, nil)
			// when
			value, err := QueryInt32(req, "size", 5)
			// then
			if tc.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, value)
		})
	}
}

func Test_QueryString(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/product?currency=eur&empty=", nil)

	assert.Equal(t, "eur", QueryString(req, "currency", "GBP"))
	assert.Equal(t, "GBP", QueryString(req, "empty", "GBP"))
	assert.Equal(t, "GBP", QueryString(req, "absent", "GBP"))
}

func Test_RespondText(t *testing.T) {
	rr := httptest.NewRecorder()

	RespondText(rr, http.StatusBadRequest, "Invalid request parameters.")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "Invalid request parameters.", rr.Body.String())
}

func Test_RespondJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/product", nil)

	RespondJSON(rr, req, discardLogger, http.StatusOK, []map[string]string{{"name": "Steak Bake"}})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{"name":"Steak Bake"}]`, rr.Body.String())
}

func Test_RespondJSON_EncodingFailureLogsRequestID(t *testing.T) {
	// given
	var buf bytes.Buffer
	log := slog.New(logger.NewContextHandler(slog.NewJSONHandler(&buf, nil)))
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/product", nil)
	req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-7"))

	// when
	RespondJSON(rr, req, log, http.StatusOK, map[string]any{"price": make(chan int)})

	// then
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"request_id":"req-7"`)
}

func Test_RequestIDInjector(t *testing.T) {
	var seen string
	handler := RequestIDInjector(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = middleware.GetReqID(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rr.Header().Get(RequestIDHeader))
	})

	t.Run("propagated from client", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "client-id")
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-id", seen)
		assert.Equal(t, "client-id", rr.Header().Get(RequestIDHeader))
	})
}

func Test_Recoverer(t *testing.T) {
	handler := Recoverer(discardLogger)(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), rr.Body.String())
}
