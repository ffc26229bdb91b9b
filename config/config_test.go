package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Store.Backend)
	assert.Equal(t, "TZS", cfg.Currency)

	// Fraud ceilings
	assert.Equal(t, int64(5_000_000), cfg.Fraud.MaxSingleAmount)
	assert.Equal(t, 30*time.Second, cfg.Fraud.RapidFireWindow)
	assert.Equal(t, 3, cfg.Fraud.RapidFireCount)
	assert.Equal(t, 100, cfg.Fraud.PatternWindowSize)
	assert.Equal(t, int64(100_000), cfg.Fraud.RoundUnit)

	// Escrow
	assert.Equal(t, 6, cfg.Escrow.CodeLength)
	assert.Equal(t, 24*time.Hour, cfg.Escrow.RequestExpiry)
	assert.Equal(t, 3, cfg.Escrow.MaxCASRetries)

	// Rate limits
	assert.Equal(t, 5, cfg.RateLimit.PerMinute)
	assert.Equal(t, 30, cfg.RateLimit.PerHour)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("AGP_SERVER_PORT", "9090")
	t.Setenv("AGP_FRAUD_MAX_SINGLE_AMOUNT", "250000")
	t.Setenv("AGP_STORE_BACKEND", "redis")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, int64(250_000), cfg.Fraud.MaxSingleAmount)
	assert.Equal(t, "redis", cfg.Store.Backend)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 7070
escrow:
  code_length: 8
  request_expiry: 12h
currency: UGX
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 8, cfg.Escrow.CodeLength)
	assert.Equal(t, 12*time.Hour, cfg.Escrow.RequestExpiry)
	assert.Equal(t, "UGX", cfg.Currency)
	// Untouched values keep defaults.
	assert.Equal(t, int64(5_000_000), cfg.Fraud.MaxSingleAmount)
}

func TestDSN_Format(t *testing.T) {
	d := DatabaseConfig{
		Host: "localhost", Port: 5432,
		User: "u", Password: "p", DBName: "agentpay", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@localhost:5432/agentpay?sslmode=disable", d.DSN())
}

func TestRedisAddr(t *testing.T) {
	r := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", r.Addr())
}
