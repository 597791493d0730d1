package config

import (
	"errors"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Postgres struct {
	Host     string
	Port     string
	DB       string
	User     string
	Password string
	SSLMode  string
	Schema   string

	// SeedCatalog writes the bundled catalog into Postgres on startup.
	SeedCatalog bool
}

type Kafka struct {
	Brokers     []string
	Topic       string
	Workers     int
	Partitions  int
	Replication int
}

type Breaker struct {
	Threshold   uint32
	OpenTimeout time.Duration
	MaxHalfOpen uint32
}

type Retry struct {
	Attempts     int
	Base         time.Duration
	Max          time.Duration
	JitterFactor float64
}

type Checkout struct {
	TaxRate  decimal.Decimal
	Delay    time.Duration
	IDPrefix string
}

type Admin struct {
	Email        string
	PasswordHash string
	TokenSecret  string
	TokenTTL     time.Duration
}

type Config struct {
	AppEnv      string
	HTTPAddr    string
	SessionCap  int
	CatalogFile string

	Pg       Postgres
	Kafka    Kafka
	Breaker  Breaker
	Retry    Retry
	Checkout Checkout
	Admin    Admin
}

// Load fatals on error for simplicity in main().
func Load() Config {
	cfg, err := load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	return cfg
}

func load() (Config, error) {
	_ = godotenv.Load("env/.env")

	cfg := Config{
		AppEnv:      envDefault("APP_ENV", "prod"),
		HTTPAddr:    envDefault("HTTP_ADDR", ":8081"),
		SessionCap:  envInt("SESSION_CAP", 10000),
		CatalogFile: strings.TrimSpace(os.Getenv("CATALOG_FILE")),

		Pg: Postgres{
			Host:     strings.TrimSpace(os.Getenv("PG_HOST")),
			Port:     envDefault("PG_PORT", "5432"),
			DB:       strings.TrimSpace(os.Getenv("PG_DB")),
			User:     strings.TrimSpace(os.Getenv("PG_USER")),
			Password: strings.TrimSpace(os.Getenv("PG_PASSWORD")),
			SSLMode:  envDefault("PG_SSLMODE", "disable"),
			Schema:   envDefault("DB_SCHEMA", "public"),

			SeedCatalog: envBool("PG_SEED_CATALOG", false),
		},

		Kafka: Kafka{
			Brokers:     splitCSV(strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))),
			Topic:       envDefault("KAFKA_TOPIC", "orders.placed"),
			Workers:     envInt("KAFKA_WORKERS", 4),
			Partitions:  envInt("KAFKA_PARTITIONS", 3),
			Replication: envInt("KAFKA_REPLICATION", 1),
		},

		Breaker: Breaker{
			Threshold:   envUint32("BREAKER_THRESHOLD", 5),
			OpenTimeout: envDurationMS("BREAKER_OPENTIMEOUT", 10*time.Second),
			MaxHalfOpen: envUint32("BREAKER_MAXHALFOPEN", 3),
		},

		Retry: Retry{
			Attempts:     envInt("RETRY_ATTEMPTS", 5),
			Base:         envDurationMS("RETRY_BASE", 100*time.Millisecond),
			Max:          envDurationMS("RETRY_MAX", 5*time.Second),
			JitterFactor: envFloat64("RETRY_JITTERFACTOR", 0.3),
		},

		Checkout: Checkout{
			TaxRate:  envDecimal("TAX_RATE", decimal.RequireFromString("0.05")),
			Delay:    envDurationMS("CHECKOUT_DELAY", 1500*time.Millisecond),
			IDPrefix: envDefault("ORDER_ID_PREFIX", "BB-"),
		},

		Admin: Admin{
			Email:        envDefault("ADMIN_EMAIL", "admin@bytebazaar.com"),
			PasswordHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
			TokenSecret:  strings.TrimSpace(os.Getenv("ADMIN_TOKEN_SECRET")),
			TokenTTL:     envDurationMS("ADMIN_TOKEN_TTL", time.Hour),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Checkout.TaxRate.IsNegative() {
		return errors.New("TAX_RATE must not be negative")
	}

	if c.PgEnabled() {
		var missing []string
		req := map[string]string{
			"PG_DB":       c.Pg.DB,
			"PG_USER":     c.Pg.User,
			"PG_PASSWORD": c.Pg.Password,
		}
		for k, v := range req {
			if v == "" {
				missing = append(missing, k)
			}
		}
		if len(missing) > 0 {
			return &missingEnvError{Keys: missing}
		}
	}

	if c.AdminEnabled() && c.Admin.TokenSecret == "" {
		return &missingEnvError{Keys: []string{"ADMIN_TOKEN_SECRET"}}
	}

	if c.SessionCap <= 0 {
		log.Printf("SESSION_CAP is %d, adjusting to 1", c.SessionCap)
		c.SessionCap = 1
	}
	if c.Checkout.Delay < 0 {
		log.Printf("CHECKOUT_DELAY is %v, adjusting to 0", c.Checkout.Delay)
		c.Checkout.Delay = 0
	}
	if c.Kafka.Workers <= 0 {
		log.Printf("KAFKA_WORKERS is %d, adjusting to 1", c.Kafka.Workers)
		c.Kafka.Workers = 1
	}
	if c.Retry.Attempts < 1 {
		log.Printf("RETRY_ATTEMPTS is %d, adjusting to 1", c.Retry.Attempts)
		c.Retry.Attempts = 1
	}
	if c.Retry.Base <= 0 {
		log.Printf("RETRY_BASE is %v, adjusting to 100ms", c.Retry.Base)
		c.Retry.Base = 100 * time.Millisecond
	}
	if c.Retry.Max < c.Retry.Base {
		log.Printf("RETRY_MAX (%v) < RETRY_BASE (%v), adjusting max to base", c.Retry.Max, c.Retry.Base)
		c.Retry.Max = c.Retry.Base
	}
	return nil
}

type missingEnvError struct{ Keys []string }

func (e *missingEnvError) Error() string {
	return "missing required envs: " + strings.Join(e.Keys, ", ")
}

func (c Config) Dev() bool { return c.AppEnv == "dev" }

// PgEnabled reports whether the catalog should be read from Postgres.
func (c Config) PgEnabled() bool { return c.Pg.Host != "" }

// KafkaEnabled reports whether placed orders are published to Kafka.
func (c Config) KafkaEnabled() bool { return len(c.Kafka.Brokers) > 0 }

// AdminEnabled reports whether the admin endpoints are served.
func (c Config) AdminEnabled() bool { return c.Admin.PasswordHash != "" }

// DSN builds a proper Postgres URL, safely escaping user/pass and query.
func (c Config) DSN() string {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.Pg.User, c.Pg.Password),
		Host:   net.JoinHostPort(c.Pg.Host, c.Pg.Port),
		Path:   "/" + c.Pg.DB,
	}
	q := url.Values{}
	if c.Pg.SSLMode != "" {
		q.Set("sslmode", c.Pg.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func envDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return n
}

func envBool(k string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %t: %v", k, v, def, err)
		return def
	}
	return b
}

func envUint32(k string, def uint32) uint32 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	u, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return uint32(u)
}

func envFloat64(k string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default %.3f: %v", k, v, def, err)
		return def
	}
	return f
}

func envDecimal(k string, def decimal.Decimal) decimal.Decimal {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %s: %v", k, v, def, err)
		return def
	}
	return d
}

// envDurationMS supports either plain integer milliseconds ("1500") or
// Go duration strings ("1.5s", "250ms", "2m").
func envDurationMS(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	if strings.IndexFunc(v, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
			return def
		}
		return d
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
