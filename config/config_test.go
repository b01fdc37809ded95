package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "sim", cfg.HeadingSource)
	require.Equal(t, "sim", cfg.PedometerSource)
	require.Equal(t, 200*time.Millisecond, cfg.HeadingInterval)
	require.Empty(t, cfg.InfluxURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("HEADING_SOURCE", "qmc5883")
	t.Setenv("HEADING_INTERVAL", "50ms")
	t.Setenv("I2C_BUS", "1")
	t.Setenv("PEDOMETER_SOURCE", "off")

	cfg := Load()

	require.Equal(t, ":9090", cfg.Addr)
	require.Equal(t, "qmc5883", cfg.HeadingSource)
	require.Equal(t, 50*time.Millisecond, cfg.HeadingInterval)
	require.Equal(t, 1, cfg.I2CBus)
	require.Equal(t, "off", cfg.PedometerSource)
}
