// Package testkit provides Postgres test infrastructure for integration tests using testcontainers.
package testkit

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds environment-driven configuration for integration test infrastructure.
type Config struct {
	PGImage        string
	PGDSN          string        // If set, skip the Postgres container.
	StartupTimeout time.Duration // Max time to wait for the container to become ready.
	KeepContainers bool          // If true, do not terminate the container on shutdown.
}

// LoadConfig reads test infrastructure settings from TEST_* environment variables.
// TEST_STARTUP_TIMEOUT uses Go duration syntax (e.g. 90s).
func LoadConfig() Config {
	v := viper.New()
	v.SetEnvPrefix("TEST")
	v.AutomaticEnv()
	v.SetDefault("pg_image", "postgres:18.1-alpine")
	v.SetDefault("pg_dsn", "")
	v.SetDefault("startup_timeout", 90*time.Second)
	v.SetDefault("keep_containers", false)
	_ = v.BindEnv("keep_containers", "KEEP_CONTAINERS")

	timeout := v.GetDuration("startup_timeout")
	if timeout <= 0 {
		timeout = 90 * time.Second
	}

	return Config{
		PGImage:        v.GetString("pg_image"),
		PGDSN:          v.GetString("pg_dsn"),
		StartupTimeout: timeout,
		KeepContainers: v.GetBool("keep_containers"),
	}
}
