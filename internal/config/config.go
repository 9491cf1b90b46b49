package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config holds all storefront configuration.
type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Checkout CheckoutConfig `yaml:"checkout"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// StorageConfig selects where the cart snapshot lives.
type StorageConfig struct {
	Backend     string         `yaml:"backend"` // memory, sqlite, redis, postgres
	SnapshotKey string         `yaml:"snapshot_key"`
	SQLitePath  string         `yaml:"sqlite_path"`
	Redis       RedisConfig    `yaml:"redis"`
	Postgres    PostgresConfig `yaml:"postgres"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	TTL      string `yaml:"ttl"` // empty keeps snapshots forever
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// CheckoutConfig externalizes pricing data. Money values are strings so they
// parse as exact decimals.
type CheckoutConfig struct {
	Currency        string                 `yaml:"currency"`
	TaxRate         string                 `yaml:"tax_rate"`
	OrderIDPrefix   string                 `yaml:"order_id_prefix"`
	DefaultShipping string                 `yaml:"default_shipping"`
	ShippingOptions []ShippingOptionConfig `yaml:"shipping_options"`
	Promos          []PromoConfig          `yaml:"promos"`
	FallbackItems   []ItemConfig           `yaml:"fallback_items"`
}

type ShippingOptionConfig struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Cost  string `yaml:"cost"`
}

type PromoConfig struct {
	Code string `yaml:"code"`
	Kind string `yaml:"kind"` // percent, free_shipping
	Rate string `yaml:"rate"`
}

type ItemConfig struct {
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
	Img   string `yaml:"img"`
}

// Default returns the built-in configuration. Pricing tables are left empty
// so the checkout package falls back to its own defaults.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Backend:     BackendSQLite,
			SnapshotKey: "kotyCono_cart",
			SQLitePath:  "storefront.db",
			Redis: RedisConfig{
				Addr: "localhost:6379",
			},
		},
		Checkout: CheckoutConfig{
			Currency:        "USD",
			TaxRate:         "0.08",
			OrderIDPrefix:   "KC",
			DefaultShipping: "standard",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file is not an error; the defaults are used.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	overrides := []struct {
		name   string
		target *string
	}{
		{"STOREFRONT_STORAGE", &c.Storage.Backend},
		{"STOREFRONT_SNAPSHOT_KEY", &c.Storage.SnapshotKey},
		{"STOREFRONT_SQLITE_PATH", &c.Storage.SQLitePath},
		{"STOREFRONT_REDIS_ADDR", &c.Storage.Redis.Addr},
		{"STOREFRONT_REDIS_PASSWORD", &c.Storage.Redis.Password},
		{"STOREFRONT_REDIS_TTL", &c.Storage.Redis.TTL},
		{"STOREFRONT_POSTGRES_DSN", &c.Storage.Postgres.DSN},
		{"STOREFRONT_LOG_LEVEL", &c.Logging.Level},
		{"STOREFRONT_LOG_FORMAT", &c.Logging.Format},
	}

	for _, o := range overrides {
		if raw := strings.TrimSpace(os.Getenv(o.name)); raw != "" {
			*o.target = raw
		}
	}

	if raw := strings.TrimSpace(os.Getenv("STOREFRONT_REDIS_DB")); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("STOREFRONT_REDIS_DB: %w", err)
		}
		c.Storage.Redis.DB = db
	}

	return nil
}

// Validate checks the fields that would otherwise fail late.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory:
	case BackendSQLite:
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("storage.sqlite_path is required for the sqlite backend")
		}
	case BackendRedis:
		if c.Storage.Redis.Addr == "" {
			return fmt.Errorf("storage.redis.addr is required for the redis backend")
		}
	case BackendPostgres:
		if c.Storage.Postgres.DSN == "" {
			return fmt.Errorf("storage.postgres.dsn is required for the postgres backend")
		}
	default:
		return fmt.Errorf("storage.backend %q is not one of memory, sqlite, redis, postgres", c.Storage.Backend)
	}

	if c.Storage.SnapshotKey == "" {
		return fmt.Errorf("storage.snapshot_key is required")
	}

	if _, err := c.Storage.Redis.ttl(); err != nil {
		return err
	}

	if _, err := c.Checkout.CheckoutOptions(); err != nil {
		return err
	}

	if _, err := parseLevel(c.Logging.Level); err != nil {
		return err
	}

	if f := c.Logging.Format; f != "" && f != "json" && f != "console" {
		return fmt.Errorf("logging.format %q is not one of json, console", f)
	}

	return nil
}

func (r RedisConfig) ttl() (time.Duration, error) {
	if r.TTL == "" {
		return 0, nil
	}

	ttl, err := time.ParseDuration(r.TTL)
	if err != nil {
		return 0, fmt.Errorf("storage.redis.ttl: %w", err)
	}
	if ttl < 0 {
		return 0, fmt.Errorf("storage.redis.ttl must be >= 0")
	}

	return ttl, nil
}

func parseDecimal(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s: %w", field, err)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%s must be >= 0", field)
	}

	return d, nil
}
