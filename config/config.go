// Package config centralises configuration parsing for the dashboard.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config captures runtime configuration values.
type Config struct {
	Addr            string
	StaticDir       string
	HeadingSource   string        // "sim" or "qmc5883"
	HeadingInterval time.Duration // delivery interval for both heading sources
	I2CBus          int
	PedometerSource string // "sim" or "off"
	InfluxURL       string // empty disables the InfluxDB sink
	InfluxToken     string
	InfluxOrg       string
	InfluxBucket    string
}

// Load reads environment variables into Config, applying defaults for local dev.
func Load() Config {
	return Config{
		Addr:            getEnv("ADDR", ":8080"),
		StaticDir:       getEnv("STATIC_DIR", "./static"),
		HeadingSource:   getEnv("HEADING_SOURCE", "sim"),
		HeadingInterval: getDurationEnv("HEADING_INTERVAL", 200*time.Millisecond),
		I2CBus:          getIntEnv("I2C_BUS", 0),
		PedometerSource: getEnv("PEDOMETER_SOURCE", "sim"),
		InfluxURL:       getEnv("INFLUX_URL", ""),
		InfluxToken:     getEnv("INFLUX_TOKEN", ""),
		InfluxOrg:       getEnv("INFLUX_ORG", ""),
		InfluxBucket:    getEnv("INFLUX_BUCKET", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
