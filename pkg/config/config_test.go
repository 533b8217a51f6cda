package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_PProfConfig_Validate(t *testing.T) {
	testCases := []struct {
		name        string
		cfg         PProfConfig
		errContains string
	}{
		{name: "disabled without address", cfg: PProfConfig{}},
		{name: "disabled with garbage address", cfg: PProfConfig{Addr: "nope"}},
		{name: "enabled on localhost", cfg: PProfConfig{Enabled: true, Addr: "localhost:6060"}},
		{name: "enabled on all interfaces", cfg: PProfConfig{Enabled: true, Addr: ":6060"}},
		{name: "enabled without address", cfg: PProfConfig{Enabled: true}, errContains: "address is not configured"},
		{name: "enabled without port", cfg: PProfConfig{Enabled: true, Addr: "localhost"}, errContains: "invalid address"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()

			if tc.errContains == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func Test_PProfConfig_String(t *testing.T) {
	disabled := PProfConfig{Addr: "localhost:6060"}
	enabled := PProfConfig{Enabled: true, Addr: "localhost:6060"}

	assert.NotContains(t, disabled.String(), "localhost:6060")
	assert.Contains(t, enabled.String(), "address: localhost:6060")
}

func Test_ShutdownConfig(t *testing.T) {
	cfg := ShutdownConfig{Timeout: 10 * time.Second}

	require.NoError(t, cfg.Validate())
	assert.Contains(t, cfg.String(), "timeout: 10s")
	assert.Error(t, (&ShutdownConfig{}).Validate())
	assert.Error(t, (&ShutdownConfig{Timeout: -time.Second}).Validate())
}
