package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Store     StoreConfig     `mapstructure:"store"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Log       LogConfig       `mapstructure:"log"`
	Currency  string          `mapstructure:"currency"`
	Fraud     FraudConfig     `mapstructure:"fraud"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Escrow    EscrowConfig    `mapstructure:"escrow"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// StoreConfig selects the document store backend and, for redis/postgres,
// whether guard state (rate counters, fraud patterns) is shared through redis.
type StoreConfig struct {
	Backend     string `mapstructure:"backend"`      // memory, redis, postgres
	SharedGuard bool   `mapstructure:"shared_guard"` // redis-backed limiter/pattern state
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// FraudConfig holds the velocity and amount ceilings, evaluated in the
// guard's fixed priority order. Amounts are in the smallest currency unit.
type FraudConfig struct {
	MaxSingleAmount        int64         `mapstructure:"max_single_amount"`
	RapidFireWindow        time.Duration `mapstructure:"rapid_fire_window"`
	RapidFireCount         int           `mapstructure:"rapid_fire_count"`
	HourlyTxLimit          int           `mapstructure:"hourly_tx_limit"`
	HourlyAmountLimit      int64         `mapstructure:"hourly_amount_limit"`
	DailyTxLimit           int           `mapstructure:"daily_tx_limit"`
	DailyAmountLimit       int64         `mapstructure:"daily_amount_limit"`
	HourlyDistinctParties  int           `mapstructure:"hourly_distinct_parties"`
	HourlySameParty        int           `mapstructure:"hourly_same_party"`
	NewAccountAge          time.Duration `mapstructure:"new_account_age"`
	NewAccountMaxSingle    int64         `mapstructure:"new_account_max_single"`
	NewAccountDailyAmount  int64         `mapstructure:"new_account_daily_amount"`
	RoundUnit              int64         `mapstructure:"round_unit"`
	PatternWindowSize      int           `mapstructure:"pattern_window_size"`
	LargeTransactionFactor float64       `mapstructure:"large_transaction_factor"`
}

// RateLimitConfig holds the per-actor request frequency ceilings.
type RateLimitConfig struct {
	PerMinute int `mapstructure:"per_minute"`
	PerHour   int `mapstructure:"per_hour"`
}

// EscrowConfig tunes the settlement state machine.
type EscrowConfig struct {
	CodeLength     int           `mapstructure:"code_length"`
	CodeSecret     string        `mapstructure:"code_secret"` // HMAC key for code digests
	RequestExpiry  time.Duration `mapstructure:"request_expiry"`
	MaxCASRetries  int           `mapstructure:"max_cas_retries"`
	MaxCodeRetries int           `mapstructure:"max_code_retries"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: AGP_.
// Nested keys use underscore: AGP_DATABASE_HOST, AGP_FRAUD_MAX_SINGLE_AMOUNT, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("store.backend", "memory")
	v.SetDefault("store.shared_guard", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "agentpay")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "agentpay")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("currency", "TZS")
	v.SetDefault("fraud.max_single_amount", 5_000_000)
	v.SetDefault("fraud.rapid_fire_window", "30s")
	v.SetDefault("fraud.rapid_fire_count", 3)
	v.SetDefault("fraud.hourly_tx_limit", 10)
	v.SetDefault("fraud.hourly_amount_limit", 10_000_000)
	v.SetDefault("fraud.daily_tx_limit", 50)
	v.SetDefault("fraud.daily_amount_limit", 50_000_000)
	v.SetDefault("fraud.hourly_distinct_parties", 5)
	v.SetDefault("fraud.hourly_same_party", 3)
	v.SetDefault("fraud.new_account_age", "24h")
	v.SetDefault("fraud.new_account_max_single", 1_000_000)
	v.SetDefault("fraud.new_account_daily_amount", 2_000_000)
	v.SetDefault("fraud.round_unit", 100_000)
	v.SetDefault("fraud.pattern_window_size", 100)
	v.SetDefault("fraud.large_transaction_factor", 0.5)
	v.SetDefault("ratelimit.per_minute", 5)
	v.SetDefault("ratelimit.per_hour", 30)
	v.SetDefault("escrow.code_length", 6)
	v.SetDefault("escrow.code_secret", "")
	v.SetDefault("escrow.request_expiry", "24h")
	v.SetDefault("escrow.max_cas_retries", 3)
	v.SetDefault("escrow.max_code_retries", 10)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: AGP_DATABASE_HOST -> database.host
	v.SetEnvPrefix("AGP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
