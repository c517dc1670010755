package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func TestLoad_AccessKeyFromEnv(t *testing.T) {
	t.Setenv(AccessKeyEnv, "env-key")
	t.Setenv("XRATE_SERVER_PORT", "9090")

	cfg, err := load(newTestViper())
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Fixer.AccessKey)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "http://data.fixer.io/api", cfg.Fixer.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Fixer.TimeoutDuration())
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "postgres://postgres:postgres@db:5432/xratedb?sslmode=disable", cfg.Database.DSN)
}

func TestLoad_PrefixedAccessKey(t *testing.T) {
	t.Setenv(AccessKeyEnv, "")
	t.Setenv("XRATE_FIXER_ACCESS_KEY", "prefixed-key")

	cfg, err := load(newTestViper())
	require.NoError(t, err)
	assert.Equal(t, "prefixed-key", cfg.Fixer.AccessKey)
}

func TestLoad_MissingAccessKey(t *testing.T) {
	t.Setenv(AccessKeyEnv, "")
	t.Setenv("XRATE_FIXER_ACCESS_KEY", "")

	cfg, err := load(newTestViper())
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingAccessKey)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server: ServerConfig{Port: 8080},
			Fixer:  FixerConfig{AccessKey: "k", Timeout: 5},
		}
	}

	t.Run("valid", func(t *testing.T) {
		cfg := valid()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("collects every problem", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Port = 0
		cfg.Fixer.AccessKey = ""
		cfg.Fixer.Timeout = -1

		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingAccessKey)
		assert.Contains(t, err.Error(), "server.port")
		assert.Contains(t, err.Error(), "fixer.timeout_sec")
	})

	t.Run("database checked only when enabled", func(t *testing.T) {
		cfg := valid()
		assert.NoError(t, cfg.Validate())

		cfg.Database.Enabled = true
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.host")
		assert.Contains(t, err.Error(), "database.name")
	})
}
