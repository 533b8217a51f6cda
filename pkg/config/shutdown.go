package config

import (
	"fmt"
	"time"
)

// ShutdownConfig holds the drain deadline. It is applied separately to the HTTP,
// gRPC and pprof servers and to the tracer flush, so total exit time can exceed it.
type ShutdownConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

func (c *ShutdownConfig) String() string {
	return fmt.Sprintf("\n--- Shutdown ---\n  timeout: %s\n", c.Timeout)
}

func (c *ShutdownConfig) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("shutdown timeout is not configured")
	}
	return nil
}
