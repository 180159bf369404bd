// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultCallerTokenKey = "dev-secret-key-change-in-production"

// Config is the full process configuration.
type Config struct {
	Server   Server
	Ledger   Ledger
	Journal  Journal
	Redis    RedisConfig
	Sink     Sink
	Tracing  Tracing
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr               string        `env:"LEDGER_ADDR" envDefault:":8080"`
	CallerTokenKey     string        `env:"CALLER_TOKEN_KEY"`
	CallerTokenIssuer  string        `env:"CALLER_TOKEN_ISSUER" envDefault:"greatglobal"`
	OpsAdminToken      string        `env:"OPS_ADMIN_TOKEN"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	RateLimitRPS       float64       `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst     int           `env:"RATE_LIMIT_BURST" envDefault:"20"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Ledger holds domain tunables.
type Ledger struct {
	OwnerAccount       string        `env:"OWNER_ACCOUNT" envDefault:"0x0000000000000000000000000000000000000001"`
	MinRegistrationAge uint32        `env:"MIN_REGISTRATION_AGE" envDefault:"18"`
	BillingInterval    time.Duration `env:"BILLING_INTERVAL"`
	AutoPaySchedule    string        `env:"AUTOPAY_SCHEDULE" envDefault:"@hourly"`
	DatabaseURL        string        `env:"DATABASE_URL"`
}

// Journal selects the event journal backend.
type Journal struct {
	Driver     string        `env:"JOURNAL_DRIVER" envDefault:"memory"`
	SQLitePath string        `env:"JOURNAL_SQLITE_PATH" envDefault:"ledger-events.db"`
	Buffer     int           `env:"JOURNAL_BUFFER" envDefault:"1024"`
	RelayEvery time.Duration `env:"JOURNAL_RELAY_INTERVAL" envDefault:"2s"`
}

// RedisConfig configures the optional Redis session store.
type RedisConfig struct {
	URL          string        `env:"REDIS_URL"`
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
}

// Sink selects where journal events are relayed.
type Sink struct {
	Kind         string   `env:"EVENT_SINK" envDefault:"none"`
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"ledger-events"`
	AMQPURL      string   `env:"AMQP_URL"`
	AMQPExchange string   `env:"AMQP_EXCHANGE" envDefault:"ledger.events"`
}

// Tracing configures the OpenTelemetry exporter.
type Tracing struct {
	Enabled  bool   `env:"OTEL_ENABLED" envDefault:"false"`
	Endpoint string `env:"OTEL_ENDPOINT" envDefault:"localhost:4318"`
}

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Server.CallerTokenKey == "" {
		// Use a default for development - should be overridden in production
		cfg.Server.CallerTokenKey = defaultCallerTokenKey
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Journal.Driver {
	case "memory", "sqlite":
	case "postgres":
		if c.Ledger.DatabaseURL == "" {
			return errors.New("config: JOURNAL_DRIVER=postgres requires DATABASE_URL")
		}
	default:
		return fmt.Errorf("config: unknown JOURNAL_DRIVER %q", c.Journal.Driver)
	}

	switch strings.ToLower(c.Sink.Kind) {
	case "none", "":
	case "kafka":
		if len(c.Sink.KafkaBrokers) == 0 {
			return errors.New("config: EVENT_SINK=kafka requires KAFKA_BROKERS")
		}
	case "amqp":
		if c.Sink.AMQPURL == "" {
			return errors.New("config: EVENT_SINK=amqp requires AMQP_URL")
		}
	default:
		return fmt.Errorf("config: unknown EVENT_SINK %q", c.Sink.Kind)
	}

	if c.Ledger.BillingInterval < 0 {
		return errors.New("config: BILLING_INTERVAL must not be negative")
	}
	return nil
}
