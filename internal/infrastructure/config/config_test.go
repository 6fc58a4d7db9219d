package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"METRIBOOKS_APP_NAME":                os.Getenv("METRIBOOKS_APP_NAME"),
		"METRIBOOKS_APP_ENV":                 os.Getenv("METRIBOOKS_APP_ENV"),
		"METRIBOOKS_APP_PORT":                os.Getenv("METRIBOOKS_APP_PORT"),
		"METRIBOOKS_DATABASE_HOST":           os.Getenv("METRIBOOKS_DATABASE_HOST"),
		"METRIBOOKS_DATABASE_PORT":           os.Getenv("METRIBOOKS_DATABASE_PORT"),
		"METRIBOOKS_DATABASE_USER":           os.Getenv("METRIBOOKS_DATABASE_USER"),
		"METRIBOOKS_DATABASE_PASSWORD":       os.Getenv("METRIBOOKS_DATABASE_PASSWORD"),
		"METRIBOOKS_DATABASE_DBNAME":         os.Getenv("METRIBOOKS_DATABASE_DBNAME"),
		"METRIBOOKS_DATABASE_SSLMODE":        os.Getenv("METRIBOOKS_DATABASE_SSLMODE"),
		"METRIBOOKS_DATABASE_MAX_OPEN_CONNS": os.Getenv("METRIBOOKS_DATABASE_MAX_OPEN_CONNS"),
		"METRIBOOKS_DATABASE_MAX_IDLE_CONNS": os.Getenv("METRIBOOKS_DATABASE_MAX_IDLE_CONNS"),
		"METRIBOOKS_JWT_SECRET":              os.Getenv("METRIBOOKS_JWT_SECRET"),
		"METRIBOOKS_AUTH_MAX_LOGIN_ATTEMPTS": os.Getenv("METRIBOOKS_AUTH_MAX_LOGIN_ATTEMPTS"),
		"METRIBOOKS_REPORT_CACHE_TTL":        os.Getenv("METRIBOOKS_REPORT_CACHE_TTL"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "metribooks-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "metribooks", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, 5, cfg.Auth.MaxLoginAttempts)
		assert.Equal(t, 15*time.Minute, cfg.Auth.LockDuration)
		assert.Equal(t, 10*time.Minute, cfg.Report.CacheTTL)
	})

	t.Run("loads values from environment variables with METRIBOOKS prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("METRIBOOKS_APP_NAME", "test-app")
		os.Setenv("METRIBOOKS_APP_ENV", "testing")
		os.Setenv("METRIBOOKS_APP_PORT", "9000")
		os.Setenv("METRIBOOKS_DATABASE_HOST", "testdb.local")
		os.Setenv("METRIBOOKS_DATABASE_PORT", "5433")
		os.Setenv("METRIBOOKS_DATABASE_USER", "testuser")
		os.Setenv("METRIBOOKS_DATABASE_PASSWORD", "testpass")
		os.Setenv("METRIBOOKS_DATABASE_DBNAME", "testdb")
		os.Setenv("METRIBOOKS_DATABASE_SSLMODE", "require")
		os.Setenv("METRIBOOKS_AUTH_MAX_LOGIN_ATTEMPTS", "3")
		os.Setenv("METRIBOOKS_REPORT_CACHE_TTL", "5m")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "testdb", cfg.Database.DBName)
		assert.Equal(t, "require", cfg.Database.SSLMode)
		assert.Equal(t, 3, cfg.Auth.MaxLoginAttempts)
		assert.Equal(t, 5*time.Minute, cfg.Report.CacheTTL)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv()
		os.Setenv("METRIBOOKS_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("METRIBOOKS_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("production requires a strong JWT secret", func(t *testing.T) {
		clearEnv()
		os.Setenv("METRIBOOKS_APP_ENV", "production")
		os.Setenv("METRIBOOKS_DATABASE_PASSWORD", "secret")
		os.Setenv("METRIBOOKS_DATABASE_SSLMODE", "require")
		os.Setenv("METRIBOOKS_JWT_SECRET", "short")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.example.com",
		Port:     5432,
		User:     "metri",
		Password: "p@ss/word",
		DBName:   "metribooks",
		SSLMode:  "require",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.example.com:5432")
	assert.Contains(t, dsn, "sslmode=require")
	// Special characters in the password must be escaped
	assert.NotContains(t, dsn, "p@ss/word")
}

func TestRedisConfig_Addr(t *testing.T) {
	cfg := RedisConfig{Host: "cache.local", Port: 6380}
	assert.Equal(t, "cache.local:6380", cfg.Addr())
}
