// Package config holds the product service configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/abgdnv/products/pkg/config"
	"github.com/abgdnv/products/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// StoreConfig selects the product lister backend.
type StoreConfig struct {
	Kind string `koanf:"kind"`
}

func (c *StoreConfig) Validate() error {
	switch c.Kind {
	case StoreMemory, StorePostgres:
		return nil
	default:
		return fmt.Errorf("unknown store kind %q, expected %q or %q", c.Kind, StoreMemory, StorePostgres)
	}
}

type Config struct {
	HTTPServer config.HTTPConfig       `koanf:"server"`
	GRPC       config.GrpcServerConfig `koanf:"grpc"`
	Store      StoreConfig             `koanf:"store"`
	Database   config.DatabaseConfig   `koanf:"database"`
	Resilience config.ResilienceConfig `koanf:"resilience"`
	Telemetry  config.TelemetryConfig  `koanf:"telemetry"`
	Log        config.LogConfig        `koanf:"log"`
	PProf      config.PProfConfig      `koanf:"pprof"`
	Shutdown   config.ShutdownConfig   `koanf:"shutdown"`
}

func (c *Config) String() string {
	var b strings.Builder

	b.WriteString(c.HTTPServer.String())
	b.WriteString(c.GRPC.String())
	b.WriteString("\n--- Store ---\n")
	b.WriteString(fmt.Sprintf("  kind: %s\n", c.Store.Kind))
	if c.Store.Kind == StorePostgres {
		b.WriteString(c.Database.String())
	}
	b.WriteString(c.Resilience.String())
	b.WriteString(c.Telemetry.String())
	b.WriteString(c.Log.String())
	b.WriteString(c.PProf.String())
	b.WriteString(c.Shutdown.String())

	return b.String()
}

// Validate checks if the configuration values are valid.
// The database section is only required when the postgres store is selected.
func (c *Config) Validate() error {
	if err := c.HTTPServer.Validate(); err != nil {
		return err
	}
	if err := c.GRPC.Validate(); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	if c.Store.Kind == StorePostgres {
		if err := c.Database.Validate(); err != nil {
			return err
		}
	}
	if err := c.Resilience.Validate(); err != nil {
		return err
	}
	if err := c.Telemetry.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.PProf.Validate(); err != nil {
		return err
	}
	if err := c.Shutdown.Validate(); err != nil {
		return err
	}
	return nil
}
