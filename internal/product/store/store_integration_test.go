package store

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const skipIntegrationTests = "PRODUCT_SKIP_INTEGRATION_TESTS"

// PgStoreSuite runs PgStore against a real PostgreSQL with the service migrations applied.
type PgStoreSuite struct {
	suite.Suite
	pgContainer *postgres.PostgresContainer
	dbPool      *pgxpool.Pool
	store       *PgStore
	logger      *slog.Logger
	ctx         context.Context
}

// SetupSuite starts a PostgreSQL container and migrates it, seed included.
func (s *PgStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	var err error
	s.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s.pgContainer, err = postgres.Run(s.ctx,
		"postgres:17.5-alpine",
		postgres.WithDatabase("products"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Minute),
		),
	)
	require.NoError(s.T(), err, "Failed to run PostgreSQL container")

	connStr, err := s.pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "Failed to get connection string from container")

	s.dbPool, err = pgxpool.New(s.ctx, connStr)
	require.NoError(s.T(), err, "Failed to create pgxpool")

	for i := 0; i < 10; i++ {
		s.logger.Info("Pinging PostgreSQL database", "attempt", i+1)
		err = s.dbPool.Ping(s.ctx)
		if err == nil {
			break
		}
		time.Sleep(time.Second * 2)
	}
	require.NoError(s.T(), err, "Failed to connect to PostgreSQL after retries")

	wd, _ := os.Getwd()
	sourceURL := "file://" + filepath.Join(wd, "..", "migrations")
	m, err := migrate.New(sourceURL, connStr)
	require.NoError(s.T(), err, "Failed to create migrate instance")
	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		_, _ = m.Close()
		require.NoError(s.T(), err, "Failed to apply migrations")
	}
	_, _ = m.Close()

	s.store = NewPgStore(s.dbPool)
}

// TearDownSuite closes the pool and terminates the container.
func (s *PgStoreSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(s.ctx); err != nil {
			s.logger.Warn("failed to terminate PostgreSQL container", "error", err)
		}
	}
}

func TestPgStoreIntegration(t *testing.T) {
	if os.Getenv(skipIntegrationTests) == "1" {
		t.Skip("Skipping integration tests based on " + skipIntegrationTests + " env var")
	}
	suite.Run(t, new(PgStoreSuite))
}

func (s *PgStoreSuite) TestList_SeededCatalogue() {
	page, err := s.store.List(s.ctx, 0, 5)

	s.Require().NoError(err)
	s.Require().Equal(priceList(SampleProducts()), priceList(page))
}

func (s *PgStoreSuite) TestList_Paging() {
	page, err := s.store.List(s.ctx, 1, 2)

	s.Require().NoError(err)
	s.Require().Equal(priceList(SampleProducts()[1:3]), priceList(page))
}

func (s *PgStoreSuite) TestList_PastTheEnd() {
	page, err := s.store.List(s.ctx, 100, 5)

	s.Require().NoError(err)
	s.Require().NotNil(page)
	s.Require().Empty(page)
}

func (s *PgStoreSuite) TestList_ClosedContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.store.List(ctx, 0, 5)

	s.Require().Error(err)
}

// priceList renders products as "name=price" pairs so decimals compare by value.
func priceList(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name + "=" + p.PriceInPounds.StringFixed(2)
	}
	return out
}
