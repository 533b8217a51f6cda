// Package rest provides the HTTP handlers for the product listing.
package rest

import (
	"errors"
	"log/slog"
	"net/http"

	perrors "github.com/abgdnv/products/internal/product/errors"
	"github.com/abgdnv/products/internal/product/service"
	"github.com/abgdnv/products/pkg/web"
	"github.com/go-chi/chi/v5"
)

const (
	MsgInvalidParameters = "Invalid request parameters."
	MsgInvalidCurrency   = "Invalid currency. Supported currencies: GBP, EUR"
	MsgProviderFailure   = "An error occurred while retrieving products."
)

// Handler serves the product listing over HTTP.
type Handler struct {
	service service.ProductService
	logger  *slog.Logger
}

// NewHandler creates a new Handler with the provided service.
func NewHandler(service service.ProductService, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the product listing.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/product", h.List)
	r.Get("/healthz", h.HealthCheck)
}

// List handles GET /product?pageStart=&pageSize=&currency=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parsePageRequest(w, r)
	if !ok {
		return
	}
	h.logger.DebugContext(r.Context(), "Received request to list products",
		"pageStart", req.PageStart, "pageSize", req.PageSize, "currency", req.Currency)

	products, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, perrors.ErrInvalidParameters):
			web.RespondText(w, http.StatusBadRequest, MsgInvalidParameters)
		case errors.Is(err, perrors.ErrInvalidCurrency):
			web.RespondText(w, http.StatusBadRequest, MsgInvalidCurrency)
		default:
			web.RespondText(w, http.StatusInternalServerError, MsgProviderFailure)
		}
		return
	}
	if products == nil {
		products = []service.ProductDto{}
	}
	web.RespondJSON(w, r, h.logger, http.StatusOK, products)
}

// parsePageRequest reads the query string over the defaults.
// A value that is not a 32-bit integer is answered with 400 like any other invalid pagination.
func (h *Handler) parsePageRequest(w http.ResponseWriter, r *http.Request) (service.PageRequest, bool) {
	req := service.NewPageRequest()
	var err error
	if req.PageStart, err = web.QueryInt32(r, "pageStart", req.PageStart); err != nil {
		h.logger.WarnContext(r.Context(), "Malformed pageStart", "pageStart", r.URL.Query().Get("pageStart"), "error", err)
		web.RespondText(w, http.StatusBadRequest, MsgInvalidParameters)
		return req, false
	}
	if req.PageSize, err = web.QueryInt32(r, "pageSize", req.PageSize); err != nil {
		h.logger.WarnContext(r.Context(), "Malformed pageSize", "pageSize", r.URL.Query().Get("pageSize"), "error", err)
		web.RespondText(w, http.StatusBadRequest, MsgInvalidParameters)
		return req, false
	}
	req.Currency = web.QueryString(r, "currency", req.Currency)
	return req, true
}

// HealthCheck answers the liveness probe.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
