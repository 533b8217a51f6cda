// Package app wires the product listing components into servers.
package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/abgdnv/products/internal/config"
	"github.com/abgdnv/products/internal/product/service"
	"github.com/abgdnv/products/internal/product/store"
	"github.com/abgdnv/products/internal/product/transport/rest"
	"github.com/abgdnv/products/pkg/server"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
)

const serviceName = "product"

// Dependencies holds what the transports need to serve requests.
type Dependencies struct {
	ProductService service.ProductService
	Logger         *slog.Logger
}

// NewProductLister builds the lister selected by cfg.Store.Kind, wrapped in a circuit breaker when enabled.
// dbPool is only used by the postgres store and may be nil otherwise.
func NewProductLister(cfg *config.Config, dbPool *pgxpool.Pool, logger *slog.Logger) (store.ProductLister, error) {
	var lister store.ProductLister
	switch cfg.Store.Kind {
	case config.StorePostgres:
		if dbPool == nil {
			return nil, fmt.Errorf("postgres store selected but no database pool was provided")
		}
		lister = store.NewPgStore(dbPool)
	case config.StoreMemory:
		lister = store.NewInMemoryStore(store.SampleProducts()...)
	default:
		return nil, fmt.Errorf("unknown store kind %q", cfg.Store.Kind)
	}
	if cfg.Resilience.CircuitBreaker.Enabled {
		lister = store.NewBreakerLister(lister, cfg.Resilience.CircuitBreaker, logger)
	}
	return lister, nil
}

// SetupDependencies creates the service graph on top of the configured lister.
func SetupDependencies(cfg *config.Config, dbPool *pgxpool.Pool, logger *slog.Logger) (*Dependencies, error) {
	lister, err := NewProductLister(cfg, dbPool, logger)
	if err != nil {
		return nil, err
	}
	return &Dependencies{
		ProductService: service.NewService(lister, logger),
		Logger:         logger,
	}, nil
}

// SetupHttpHandler builds the router with middleware and the product routes.
// Used by E2E tests to run the application inside an httptest.Server.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	rest.NewHandler(deps.ProductService, deps.Logger).RegisterRoutes(mux)
	return mux
}

// SetupHttpServer creates and configures the public HTTP server.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	return server.NewHTTPServer(server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}, serviceName, SetupHttpHandler(deps))
}

// SetupGrpcServer creates the gRPC server exposing the standard health service.
// The returned health.Server starts out SERVING; callers flip it on shutdown.
func SetupGrpcServer(cfg *config.Config) (*grpc.Server, *health.Server) {
	healthServer := health.NewServer()
	grpcServer := server.NewGRPCServer(cfg.GRPC.ReflectionEnabled, server.HealthRegistration(healthServer))
	return grpcServer, healthServer
}
