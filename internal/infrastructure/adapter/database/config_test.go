package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Host:            "localhost",
		Port:            5432,
		Username:        "postgres",
		Password:        "postgres",
		Database:        "fintrack_test",
		SSLMode:         "disable",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("should accept a complete configuration", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("should reject a missing host", func(t *testing.T) {
		cfg := validConfig()
		cfg.Host = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("should reject an out-of-range port", func(t *testing.T) {
		cfg := validConfig()
		cfg.Port = 0
		assert.Error(t, cfg.Validate())

		cfg.Port = 70000
		assert.Error(t, cfg.Validate())
	})

	t.Run("should reject a missing database name", func(t *testing.T) {
		cfg := validConfig()
		cfg.Database = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("should reject an unknown SSL mode", func(t *testing.T) {
		cfg := validConfig()
		cfg.SSLMode = "maybe"
		assert.Error(t, cfg.Validate())
	})
}

func TestConfigDSN(t *testing.T) {
	t.Run("should render the postgres connection string", func(t *testing.T) {
		dsn := validConfig().DSN()

		assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=fintrack_test sslmode=disable", dsn)
	})
}
