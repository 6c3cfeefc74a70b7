package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(overrides map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newTestViper(nil))
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.SeedData)
	assert.Equal(t, 5*time.Second, cfg.ExchangeAPITimeout)
	assert.Equal(t, 10*time.Second, cfg.WorldBankAPITimeout)
	assert.Equal(t, 10*time.Minute, cfg.FXCacheTTL)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "60-M", cfg.ExternalRateLimit)
}

func TestFromViper_Overrides(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]any{
		"DB_DRIVER":            "SQLite",
		"SQLITE_PATH":          "/tmp/bonds.db",
		"FX_CACHE_TTL":         "90s",
		"EXCHANGE_API_URL":     "http://fx.local/",
		"CORS_ALLOWED_ORIGINS": "http://a.local, http://b.local ,",
	}))
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/bonds.db", cfg.SQLitePath)
	assert.Equal(t, 90*time.Second, cfg.FXCacheTTL)
	assert.Equal(t, "http://fx.local", cfg.ExchangeAPIURL)
	assert.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.CORSAllowedOrigins)
}

func TestFromViper_InvalidDurationFallsBack(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]any{"FX_CACHE_TTL": "soon"}))
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, cfg.FXCacheTTL)
}

func TestFromViper_UnknownDriver(t *testing.T) {
	_, err := fromViper(newTestViper(map[string]any{"DB_DRIVER": "mysql"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported DB_DRIVER")
}
