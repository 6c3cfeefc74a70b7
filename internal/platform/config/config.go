package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported values of DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds application configuration.
type Config struct {
	DBDriver      string
	DatabaseURL   string
	SQLitePath    string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	SeedData      bool
	LogLevel      string

	// Currency exchange source
	ExchangeAPIURL     string
	ExchangeAPIKey     string
	ExchangeAPITimeout time.Duration

	// World Bank indicators source
	WorldBankAPIURL     string
	WorldBankAPITimeout time.Duration

	// FX rate cache; Redis is used when RedisURL is set
	FXCacheTTL time.Duration
	RedisURL   string

	CORSAllowedOrigins []string
	ExternalRateLimit  string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("SQLITE_PATH", "bondcatalog.db")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("SEED_DATA", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("EXCHANGE_API_URL", "https://api.exchangerate.host")
	v.SetDefault("EXCHANGE_API_KEY", "")
	v.SetDefault("EXCHANGE_API_TIMEOUT", "5s")
	v.SetDefault("WORLDBANK_API_URL", "https://api.worldbank.org")
	v.SetDefault("WORLDBANK_API_TIMEOUT", "10s")
	v.SetDefault("FX_CACHE_TTL", "10m")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("EXTERNAL_RATE_LIMIT", "60-M")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DBDriver:          strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		DatabaseURL:       v.GetString("PGSQL_URL"),
		SQLitePath:        v.GetString("SQLITE_PATH"),
		Port:              v.GetString("PORT"),
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:     v.GetBool("ENABLE_DB_CHECK"),
		SeedData:          v.GetBool("SEED_DATA"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		ExchangeAPIURL:    strings.TrimRight(v.GetString("EXCHANGE_API_URL"), "/"),
		ExchangeAPIKey:    v.GetString("EXCHANGE_API_KEY"),
		WorldBankAPIURL:   strings.TrimRight(v.GetString("WORLDBANK_API_URL"), "/"),
		RedisURL:          v.GetString("REDIS_URL"),
		ExternalRateLimit: v.GetString("EXTERNAL_RATE_LIMIT"),
	}

	switch cfg.DBDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: PGSQL_URL environment variable not set.")
		}
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("SQLITE_PATH must be set when DB_DRIVER is %q", DriverSQLite)
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want %q or %q)", cfg.DBDriver, DriverPostgres, DriverSQLite)
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.ExchangeAPIKey == "" {
		log.Println("Warning: EXCHANGE_API_KEY not set. FX lookups will likely be rejected upstream.")
	}

	cfg.ExchangeAPITimeout = durationOrDefault(v, "EXCHANGE_API_TIMEOUT", 5*time.Second)
	cfg.WorldBankAPITimeout = durationOrDefault(v, "WORLDBANK_API_TIMEOUT", 10*time.Second)
	cfg.FXCacheTTL = durationOrDefault(v, "FX_CACHE_TTL", 10*time.Minute)

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}
