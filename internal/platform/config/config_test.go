package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Server.Addr)
		assert.Equal(t, defaultCallerTokenKey, cfg.Server.CallerTokenKey)
		assert.Equal(t, uint32(18), cfg.Ledger.MinRegistrationAge)
		assert.Equal(t, "@hourly", cfg.Ledger.AutoPaySchedule)
		assert.Equal(t, "memory", cfg.Journal.Driver)
		assert.Equal(t, "none", cfg.Sink.Kind)
		assert.Zero(t, cfg.Ledger.BillingInterval)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("LEDGER_ADDR", ":9090")
		t.Setenv("BILLING_INTERVAL", "720h")
		t.Setenv("EVENT_SINK", "kafka")
		t.Setenv("KAFKA_BROKERS", "a:9092,b:9092")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://x.example,https://y.example")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.Server.Addr)
		assert.Equal(t, 720*time.Hour, cfg.Ledger.BillingInterval)
		assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Sink.KafkaBrokers)
		assert.Len(t, cfg.Server.CORSAllowedOrigins, 2)
	})

	t.Run("postgres journal requires database url", func(t *testing.T) {
		t.Setenv("JOURNAL_DRIVER", "postgres")
		_, err := FromEnv()
		require.Error(t, err)
	})

	t.Run("unknown sink rejected", func(t *testing.T) {
		t.Setenv("EVENT_SINK", "carrier-pigeon")
		_, err := FromEnv()
		require.Error(t, err)
	})
}
