package config

import (
	"fmt"
	"net"
)

// PProfConfig exposes net/http/pprof on its own listener, never on the public API port.
type PProfConfig struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

func (c *PProfConfig) String() string {
	if !c.Enabled {
		return "\n--- PProf ---\n  enabled: false\n"
	}
	return fmt.Sprintf("\n--- PProf ---\n  enabled: true\n  address: %s\n", c.Addr)
}

// Validate requires a host:port address once pprof is switched on.
func (c *PProfConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Addr == "" {
		return fmt.Errorf("pprof is enabled but address is not configured")
	}
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("pprof is enabled with an invalid address %q: %w", c.Addr, err)
	}
	return nil
}
